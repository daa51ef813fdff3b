package system

import (
	"lastlight/internal/component"
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// updateBullets advances player bullets and resolves their three removal
// paths: wall entry, enemy hit, lifetime expiry.
func (w *World) updateBullets(dt float64) {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.Lifetime -= dt
		if b.Lifetime <= 0 {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if !w.Maze.IsWalkableWorld(b.Pos) {
			continue
		}

		hit := false
		w.scratch = w.Grid.QueryRadius(w.scratch[:0], b.Pos.X, b.Pos.Y, config.BroodmotherRadius)
		for _, idx := range w.scratch {
			e := w.Enemies[idx]
			if !e.Alive || e.Pos.Dist(b.Pos) > e.Radius {
				continue
			}
			w.hitEnemy(e, b.Damage)
			hit = true
			break
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	w.Bullets = kept
}

// updateGoo advances spitter shots. A shot that touches the player roots
// them directly; one that reaches its capture point lands as a puddle, and
// one that flies into a wall lands on the last clear spot before it.
func (w *World) updateGoo(dt float64) {
	kept := w.Goo[:0]
	for _, g := range w.Goo {
		next := g.Pos.Add(g.Vel.Scale(dt))
		if w.Maze.IsWalkableWorld(next) {
			g.Pos = next
		} else {
			w.dropPuddle(g.Pos)
			continue
		}

		if g.Pos.Dist(w.Player.Pos) < w.Player.Radius+6 {
			w.Player.ApplyRoot(config.RootDirectHit)
			w.emitSound("rooted")
			continue
		}
		if g.Pos.Dist(g.Target) <= config.GooSpeed*dt {
			w.dropPuddle(g.Pos)
			continue
		}
		kept = append(kept, g)
	}
	w.Goo = kept
}

func (w *World) dropPuddle(pos gamemap.Vec2) {
	w.Puddles = append(w.Puddles, component.GooPuddle{
		Pos:       pos,
		Radius:    config.GooPuddleRadius,
		Remaining: config.GooPuddleDuration,
	})
}

// updatePuddles expires puddles and roots the player standing in one.
// Re-application takes the max of the timers, never the sum.
func (w *World) updatePuddles(dt float64) {
	kept := w.Puddles[:0]
	for _, pd := range w.Puddles {
		pd.Remaining -= dt
		if pd.Remaining <= 0 {
			continue
		}
		if pd.Pos.Dist(w.Player.Pos) < pd.Radius+w.Player.Radius {
			w.Player.ApplyRoot(config.RootPuddleTouch)
		}
		kept = append(kept, pd)
	}
	w.Puddles = kept
}
