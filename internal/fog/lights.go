package fog

import (
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// PointLight is a stationary light source. Lanterns and landed flares are
// permanent; lures expire and pull enemies toward themselves while they burn.
type PointLight struct {
	Pos       gamemap.Vec2
	Radius    float64
	Permanent bool
	Expires   float64 // game time; 0 = never
	Attracts  bool
}

// Flare is a thrown light in flight. It lands (becoming a permanent
// PointLight) on reaching its target or the map boundary; there are no other
// transitions.
type Flare struct {
	Pos    gamemap.Vec2
	Vel    gamemap.Vec2
	Target gamemap.Vec2
}

// AddLantern places a permanent point light.
func (e *Engine) AddLantern(pos gamemap.Vec2) {
	e.lights = append(e.lights, PointLight{
		Pos:       pos,
		Radius:    config.LanternRadius,
		Permanent: true,
	})
}

// DropLure places a timed, attracting light at pos. While it burns it
// overrides the player as the universal chase target.
func (e *Engine) DropLure(pos gamemap.Vec2) {
	e.lights = append(e.lights, PointLight{
		Pos:      pos,
		Radius:   config.LureRadius,
		Expires:  e.now + config.LureDuration,
		Attracts: true,
	})
}

// ThrowFlare launches a flare from the player toward the aimed point.
// The flight target overshoots the aim: max(400, 3×aim distance) along the
// aim direction.
func (e *Engine) ThrowFlare(from, aim gamemap.Vec2) {
	dir := aim.Sub(from).Normalized()
	if dir == (gamemap.Vec2{}) {
		dir = gamemap.Vec2{X: 1}
	}
	dist := 3 * aim.Sub(from).Len()
	if dist < config.FlareMinDistance {
		dist = config.FlareMinDistance
	}
	e.flares = append(e.flares, &Flare{
		Pos:    from,
		Vel:    dir.Scale(config.FlareSpeed),
		Target: from.Add(dir.Scale(dist)),
	})
}

// updateFlares advances flight and converts landed flares to permanent lights.
func (e *Engine) updateFlares(dt float64) {
	worldW := float64(e.maze.Width) * gamemap.TileSize
	worldH := float64(e.maze.Height) * gamemap.TileSize

	kept := e.flares[:0]
	for _, f := range e.flares {
		f.Pos = f.Pos.Add(f.Vel.Scale(dt))

		landed := f.Pos.Dist(f.Target) <= config.FlareSpeed*dt

		// A flare leaving the playable area is clamped to the boundary and
		// lands there.
		if f.Pos.X < 0 || f.Pos.X >= worldW || f.Pos.Y < 0 || f.Pos.Y >= worldH {
			landed = true
			if f.Pos.X < 0 {
				f.Pos.X = 0
			}
			if f.Pos.X >= worldW {
				f.Pos.X = worldW - 1
			}
			if f.Pos.Y < 0 {
				f.Pos.Y = 0
			}
			if f.Pos.Y >= worldH {
				f.Pos.Y = worldH - 1
			}
		}

		if landed {
			e.lights = append(e.lights, PointLight{
				Pos:       f.Pos,
				Radius:    config.FlareRadius,
				Permanent: true,
			})
			continue
		}
		kept = append(kept, f)
	}
	e.flares = kept
}

// AttractionPoint returns the position of an actively attracting light, if
// any. The enemy simulation chases it instead of the player while present.
func (e *Engine) AttractionPoint() (gamemap.Vec2, bool) {
	for _, l := range e.lights {
		if l.Attracts {
			return l.Pos, true
		}
	}
	return gamemap.Vec2{}, false
}

// Lights returns the current stationary light sources for presentation.
func (e *Engine) Lights() []PointLight { return e.lights }

// Flares returns the flares still in flight for presentation.
func (e *Engine) Flares() []*Flare { return e.flares }
