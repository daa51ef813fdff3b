package system

import (
	"math"

	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// BladePos returns the current world position of the orbiting blade.
func (w *World) BladePos() gamemap.Vec2 {
	p := w.Player
	return p.Pos.Add(gamemap.Vec2{
		X: math.Cos(p.BladeAngle) * config.BladeOrbit,
		Y: math.Sin(p.BladeAngle) * config.BladeOrbit,
	})
}

// updateBlade advances the passive rotating blade and damages enemies it
// touches. Each enemy carries its own hit cooldown so one revolution cannot
// hit the same target twice, while different enemies are hit independently.
func (w *World) updateBlade(dt float64) {
	p := w.Player
	if !p.HasBlade {
		return
	}
	p.BladeAngle += config.BladeAngular * dt
	if p.BladeAngle > 2*math.Pi {
		p.BladeAngle -= 2 * math.Pi
	}

	blade := w.BladePos()
	w.scratch = w.Grid.QueryRadius(w.scratch[:0], blade.X, blade.Y, config.BladeHitRadius+config.BroodmotherRadius)
	for _, idx := range w.scratch {
		e := w.Enemies[idx]
		if !e.Alive || e.BladeHit > 0 {
			continue
		}
		if e.Pos.Dist(blade) > config.BladeHitRadius+e.Radius {
			continue
		}
		e.BladeHit = config.BladeCooldown
		w.hitEnemy(e, config.BladeDamage*p.EffectiveDamageMult())
	}
}
