package game

// Sound plays short effect cues. The core never blocks on it; slow or absent
// audio backends must drop cues rather than stall the tick.
type Sound interface {
	Play(event string)
	Close()
}

// NopSound discards every cue. Used in tests and when audio init fails.
type NopSound struct{}

func (NopSound) Play(string) {}
func (NopSound) Close()      {}
