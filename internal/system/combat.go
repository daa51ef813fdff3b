package system

import (
	"math"
	"sort"

	"lastlight/internal/component"
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// candidate is an enemy eligible for auto-targeting this tick.
type candidate struct {
	idx  int
	dist float64
}

// updateWeapons runs the multi-weapon auto-fire: collect qualifying targets
// nearest-first, then let owned weapons claim them in DPS priority order.
// At most one weapon fires per available target, so a lone enemy never eats
// every barrel at once.
func (w *World) updateWeapons(dt float64) {
	p := w.Player

	for k := range p.Cooldowns {
		if p.Cooldowns[k] > 0 {
			p.Cooldowns[k] -= dt
		}
	}
	if p.Invisible() {
		return
	}

	var owned []component.WeaponKind
	maxRange := 0.0
	for k := component.WeaponKind(0); k < component.NumWeapons; k++ {
		if !p.Owned[k] {
			continue
		}
		owned = append(owned, k)
		if r := component.Weapons[k].Range; r > maxRange {
			maxRange = r
		}
	}
	if len(owned) == 0 {
		return
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i] == p.Focus || owned[j] == p.Focus {
			return owned[i] == p.Focus
		}
		return component.Weapons[owned[i]].DPS() > component.Weapons[owned[j]].DPS()
	})

	candidates := w.collectTargets(maxRange)
	if len(candidates) == 0 {
		return
	}

	claimed := make(map[int]bool, len(candidates))
	fired := 0
	for _, k := range owned {
		if fired >= len(candidates) {
			break
		}
		if p.Cooldowns[k] > 0 {
			continue
		}
		stats := component.Weapons[k]
		for _, c := range candidates {
			if claimed[c.idx] || c.dist > stats.Range {
				continue
			}
			claimed[c.idx] = true
			w.fireAt(stats, w.Enemies[c.idx])
			p.Cooldowns[k] = 1 / (stats.FireRate * p.EffectiveFireRateMult())
			fired++
			break
		}
	}
}

// collectTargets returns alive enemies within maxRange that stand on a lit
// tile and have clear line of sight from the player, nearest first.
func (w *World) collectTargets(maxRange float64) []candidate {
	p := w.Player
	w.scratch = w.Grid.QueryRadius(w.scratch[:0], p.Pos.X, p.Pos.Y, maxRange)

	var out []candidate
	for _, idx := range w.scratch {
		e := w.Enemies[idx]
		if !e.Alive {
			continue
		}
		d := e.Pos.Dist(p.Pos)
		if d > maxRange {
			continue
		}
		tx, ty := gamemap.WorldToTile(e.Pos)
		if !w.Fog.IsTileLit(tx, ty) {
			continue
		}
		if !gamemap.LineOfSight(w.Maze, p.Pos, e.Pos) {
			continue
		}
		out = append(out, candidate{idx: idx, dist: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].dist < out[j].dist })
	return out
}

// fireAt spawns the weapon's bullets toward the enemy. Spread weapons fan
// their pellets at even offsets across the arc; damage picks up the current
// effective multiplier at this moment, not at impact.
func (w *World) fireAt(stats component.WeaponStats, e *component.Enemy) {
	p := w.Player
	base := math.Atan2(e.Pos.Y-p.Pos.Y, e.Pos.X-p.Pos.X)
	damage := stats.Damage * p.EffectiveDamageMult()

	pellets := stats.Pellets
	if pellets < 1 {
		pellets = 1
	}
	for i := 0; i < pellets; i++ {
		angle := base
		if pellets > 1 {
			angle += -stats.Spread/2 + stats.Spread*float64(i)/float64(pellets-1)
		}
		w.Bullets = append(w.Bullets, component.Bullet{
			Pos:      p.Pos,
			Vel:      gamemap.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(config.BulletSpeed),
			Damage:   damage,
			Lifetime: config.BulletLifetime,
		})
	}
	w.emitSound("shoot")
}
