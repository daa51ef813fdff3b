package main

import (
	"fmt"
	"os"

	"lastlight/internal/audio"
	"lastlight/internal/game"
)

func main() {
	g, err := game.New(audio.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
