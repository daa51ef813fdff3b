package system

import (
	"math"

	"lastlight/internal/component"
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// updateEnemies ticks status timers and runs per-kind behavior.
func (w *World) updateEnemies(dt float64) {
	attraction, hasAttraction := w.Fog.AttractionPoint()

	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		tickDown(&e.FlashTime, dt)
		tickDown(&e.BladeHit, dt)
		if e.FrozenTime > 0 {
			tickDown(&e.FrozenTime, dt)
			continue
		}

		switch e.Kind {
		case component.KindChaser:
			w.updateChaser(e, dt, attraction, hasAttraction)
		case component.KindSpitter:
			w.updateSpitter(e, dt)
		case component.KindBroodmother:
			e.Brood.Cooldown -= dt
			if e.Brood.Cooldown <= 0 {
				e.Brood.Cooldown = config.BroodCooldown
				w.spawnBrood(e)
			}
		}
	}
}

// updateChaser steers toward the attraction point if one exists, else the
// player; while the player is invisible it wanders on a random heading.
func (w *World) updateChaser(e *component.Enemy, dt float64, attraction gamemap.Vec2, hasAttraction bool) {
	c := e.Chaser
	var dir gamemap.Vec2
	switch {
	case hasAttraction:
		dir = steerToward(e.Pos, attraction)
	case !w.Player.Invisible():
		dir = steerToward(e.Pos, w.Player.Pos)
	default:
		c.WanderTimer -= dt
		if c.WanderTimer <= 0 || c.LastDir == (gamemap.Vec2{}) {
			c.WanderTimer = config.ChaserWanderTurn
			angle := w.Rng.Float64() * 2 * math.Pi
			c.LastDir = gamemap.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		}
		dir = c.LastDir
	}
	c.LastDir = dir

	// Axis-separated wall sliding, same scheme as the player.
	step := dir.Scale(e.Speed * dt)
	next := e.Pos
	next.X += step.X
	if !w.canStand(next, e.Radius) {
		next.X = e.Pos.X
	}
	next.Y += step.Y
	if !w.canStand(next, e.Radius) {
		next.Y = e.Pos.Y
	}
	e.Pos = next

	// Continuous contact damage, scaled by dt rather than discrete hits.
	if e.Pos.Dist(w.Player.Pos) < e.Radius+w.Player.Radius+2 {
		w.damagePlayer(config.ChaserContactDPS * dt)
	}
}

// updateSpitter runs the cooldown → windup → fire sequence. The windup
// captures the player's position; the shot homes to that capture, not to the
// live player.
func (w *World) updateSpitter(e *component.Enemy, dt float64) {
	s := e.Spitter

	if s.Windup > 0 {
		s.Windup -= dt
		if s.Windup <= 0 {
			s.Windup = 0
			dir := steerToward(e.Pos, s.Target)
			w.Goo = append(w.Goo, component.GooProjectile{
				Pos:    e.Pos,
				Vel:    dir.Scale(config.GooSpeed),
				Target: s.Target,
			})
			w.emitSound("spit")
		}
		return
	}

	s.Cooldown -= dt
	if s.Cooldown > 0 {
		return
	}
	p := w.Player
	if p.Invisible() {
		return
	}
	if e.Pos.Dist(p.Pos) > config.SpitterRange {
		return
	}
	if !gamemap.LineOfSight(w.Maze, e.Pos, p.Pos) {
		return
	}
	s.Cooldown = config.SpitterCooldown
	s.Windup = config.SpitterWindup
	s.Target = p.Pos
}

// steerToward returns the unit direction from a to b, zero when nearly
// coincident to avoid dividing by a tiny distance.
func steerToward(a, b gamemap.Vec2) gamemap.Vec2 {
	d := b.Sub(a)
	if d.Len() < 1 {
		return gamemap.Vec2{}
	}
	return d.Normalized()
}

func tickDown(t *float64, dt float64) {
	if *t > 0 {
		*t -= dt
		if *t < 0 {
			*t = 0
		}
	}
}
