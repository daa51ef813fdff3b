package game

import (
	"math"

	"lastlight/internal/system"
)

// Difficulty stops scaling past this level; runs continue endlessly at the
// final values.
const MaxScaleLevel = 8

// levelSize returns the square map dimension for a 1-indexed level.
func levelSize(level int) int {
	return lerpi(25, 60, scaleT(level))
}

// levelScale builds the per-level difficulty parameters.
func levelScale(level int) system.Scale {
	t := scaleT(level)
	return system.Scale{
		HPMult:    lerpf(1.0, 2.5, t),
		SpeedMult: lerpf(1.0, 1.4, t),
		SpawnRate: lerpf(0.4, 1.2, t),
		MaxAlive:  lerpi(10, 30, t),
		ParTime:   parTime(levelSize(level)),
	}
}

// parTime is the seconds allowed before the horde rush, derived from map
// size: a 25-tile map gives 25 s, a 60-tile map 54 s.
func parTime(size int) float64 {
	return math.Floor(25 + float64(size-25)*0.85)
}

func scaleT(level int) float64 {
	if level >= MaxScaleLevel {
		return 1
	}
	return float64(level-1) / float64(MaxScaleLevel-1)
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}

func lerpf(a, b, t float64) float64 {
	return a + t*(b-a)
}
