// Package fog tracks per-tile light memory and computes the creeping
// fog-of-war. Tiles remember when they were last lit forever; visibility
// decays linearly after the light leaves, and never-seen tiles stay opaque.
package fog

import (
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// Engine owns all light-source lifecycles for one level.
type Engine struct {
	maze *gamemap.Maze
	now  float64

	// lastLit is the game time each tile was last inside a light radius;
	// zero means never seen.
	lastLit   [][]float64
	permanent [][]bool

	// TorchMult scales the player torch radius; permanent upgrades raise it.
	TorchMult float64

	playerPos gamemap.Vec2
	lights    []PointLight
	flares    []*Flare
}

// NewEngine creates a fully dark engine for the given maze.
func NewEngine(m *gamemap.Maze) *Engine {
	lastLit := make([][]float64, m.Height)
	permanent := make([][]bool, m.Height)
	for y := range lastLit {
		lastLit[y] = make([]float64, m.Width)
		permanent[y] = make([]bool, m.Width)
	}
	return &Engine{
		maze:      m,
		lastLit:   lastLit,
		permanent: permanent,
		TorchMult: 1.0,
	}
}

// Now returns the engine's current game time in seconds.
func (e *Engine) Now() float64 { return e.now }

// EffectiveTorchRadius is the player torch radius after upgrades.
func (e *Engine) EffectiveTorchRadius() float64 {
	return config.TorchBaseRadius * e.TorchMult
}

// Update advances game time, flies flares, expires timed lights, and stamps
// every lit tile with the current time.
func (e *Engine) Update(dt float64, playerPos gamemap.Vec2) {
	e.now += dt
	e.playerPos = playerPos

	e.updateFlares(dt)

	// Drop expired timed lights (lures).
	kept := e.lights[:0]
	for _, l := range e.lights {
		if l.Expires > 0 && e.now >= l.Expires {
			continue
		}
		kept = append(kept, l)
	}
	e.lights = kept

	e.stamp(playerPos, e.EffectiveTorchRadius(), false)
	for _, l := range e.lights {
		e.stamp(l.Pos, l.Radius, l.Permanent)
	}
}

// stamp marks every tile whose center lies within radius of pos.
func (e *Engine) stamp(pos gamemap.Vec2, radius float64, permanent bool) {
	minX, minY := gamemap.WorldToTile(pos.Sub(gamemap.Vec2{X: radius, Y: radius}))
	maxX, maxY := gamemap.WorldToTile(pos.Add(gamemap.Vec2{X: radius, Y: radius}))
	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			if !e.maze.InBounds(tx, ty) {
				continue
			}
			if gamemap.TileCenter(tx, ty).Dist(pos) > radius {
				continue
			}
			e.lastLit[ty][tx] = e.now
			if permanent {
				e.permanent[ty][tx] = true
			}
		}
	}
}

// VisibilityAt returns the continuous visibility of tile (tx, ty) in [0, 1]:
// 0 for never-seen tiles, 1 for permanently lit tiles and tiles inside the
// torch radius, a linear fade over FogCreepDuration otherwise.
func (e *Engine) VisibilityAt(tx, ty int) float64 {
	if !e.maze.InBounds(tx, ty) {
		return 0
	}
	lit := e.lastLit[ty][tx]
	if lit == 0 {
		return 0
	}
	if e.permanent[ty][tx] {
		return 1
	}
	if gamemap.TileCenter(tx, ty).Dist(e.playerPos) <= e.EffectiveTorchRadius() {
		return 1
	}
	v := 1 - (e.now-lit)/config.FogCreepDuration
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IsTileLit reports full visibility; combat targeting and spawn rejection
// both gate on this.
func (e *Engine) IsTileLit(tx, ty int) bool {
	return e.VisibilityAt(tx, ty) >= 1
}

// IsTileVisible reports whether the tile reads as seen (visibility above the
// discovery threshold); used for exit discovery and the minimap.
func (e *Engine) IsTileVisible(tx, ty int) bool {
	return e.VisibilityAt(tx, ty) > config.VisibleThreshold
}

// Snapshot copies the visibility map for presentation (minimap rendering).
func (e *Engine) Snapshot() [][]float64 {
	out := make([][]float64, e.maze.Height)
	for y := range out {
		out[y] = make([]float64, e.maze.Width)
		for x := range out[y] {
			out[y][x] = e.VisibilityAt(x, y)
		}
	}
	return out
}
