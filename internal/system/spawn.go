package system

import (
	"math"

	"lastlight/internal/component"
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// effectiveSpawnRate is the per-second spawn rate including the horde boost.
func (w *World) effectiveSpawnRate() float64 {
	if w.Horde {
		return w.Scale.SpawnRate * config.HordeRateMultiplier
	}
	return w.Scale.SpawnRate
}

// effectiveCap is the max alive enemies, raised during the horde rush.
func (w *World) effectiveCap() int {
	if w.Horde {
		return int(float64(w.Scale.MaxAlive) * config.HordeCapMultiplier)
	}
	return w.Scale.MaxAlive
}

func (w *World) aliveCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// updateSpawning drives continuous spawning with a rate accumulator.
func (w *World) updateSpawning(dt float64) {
	w.spawnAcc += dt * w.effectiveSpawnRate()
	for w.spawnAcc >= 1 {
		w.spawnAcc--
		if w.aliveCount() >= w.effectiveCap() {
			continue
		}
		w.spawnOne()
	}
}

// spawnOne places a single enemy by rejection sampling: candidates on
// non-floor or lit tiles, or too close to the player, are rejected. An
// exhausted attempt budget skips the spawn silently; the accumulator will
// try again next time it fills.
func (w *World) spawnOne() {
	for i := 0; i < config.SpawnAttempts; i++ {
		pos, ok := w.spawnCandidate()
		if !ok {
			continue
		}
		tx, ty := gamemap.WorldToTile(pos)
		if !w.Maze.IsWalkable(tx, ty) {
			continue
		}
		if w.Lit(tx, ty) {
			continue
		}
		w.addEnemy(w.rollKind(), pos)
		return
	}
}

// spawnCandidate draws one candidate position. In horde mode candidates are
// biased angularly around the player in a fixed distance band so spawns
// surround them just outside torch range; otherwise they are uniform over
// the map with a minimum player distance.
func (w *World) spawnCandidate() (gamemap.Vec2, bool) {
	if w.Horde {
		angle := w.Rng.Float64() * 2 * math.Pi
		dist := config.HordeMinDistance + w.Rng.Float64()*(config.HordeMaxDistance-config.HordeMinDistance)
		return w.Player.Pos.Add(gamemap.Vec2{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist}), true
	}
	pos := gamemap.TileCenter(w.Rng.Intn(w.Maze.Width), w.Rng.Intn(w.Maze.Height))
	if pos.Dist(w.Player.Pos) < config.SpawnMinDistance {
		return gamemap.Vec2{}, false
	}
	return pos, true
}

// rollKind picks the enemy variant for a population spawn.
func (w *World) rollKind() component.EnemyKind {
	r := w.Rng.Float64()
	switch {
	case r < config.BroodChance:
		return component.KindBroodmother
	case r < config.BroodChance+config.SpitterChance:
		return component.KindSpitter
	default:
		return component.KindChaser
	}
}

// addEnemy creates and registers an enemy with level scaling applied.
func (w *World) addEnemy(kind component.EnemyKind, pos gamemap.Vec2) *component.Enemy {
	w.nextID++
	var e *component.Enemy
	switch kind {
	case component.KindSpitter:
		e = component.NewSpitter(w.nextID, pos, w.Scale.HPMult)
	case component.KindBroodmother:
		e = component.NewBroodmother(w.nextID, pos, w.Scale.HPMult)
	default:
		speedMult := w.Scale.SpeedMult
		if w.Horde {
			speedMult *= config.HordeSpeedMultiplier
		}
		e = component.NewChaser(w.nextID, pos, w.Scale.HPMult, speedMult)
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

// spawnBrood rings chasers around the broodmother at fixed angular
// offsets, skipping ring slots that land on non-floor tiles.
func (w *World) spawnBrood(mother *component.Enemy) {
	for i := 0; i < config.BroodCount; i++ {
		angle := 2 * math.Pi * float64(i) / config.BroodCount
		pos := mother.Pos.Add(gamemap.Vec2{
			X: math.Cos(angle) * config.BroodRingRadius,
			Y: math.Sin(angle) * config.BroodRingRadius,
		})
		tx, ty := gamemap.WorldToTile(pos)
		if !w.Maze.IsWalkable(tx, ty) {
			continue
		}
		w.addEnemy(component.KindChaser, pos)
		mother.Brood.Spawned++
	}
}

// updatePickupTimer places a power-up on the floor at a fixed cadence using
// the same rejection search as enemy spawns, minus the light check: a
// pickup glinting in the dark is worth walking toward.
func (w *World) updatePickupTimer(dt float64) {
	w.pickupTimer -= dt
	if w.pickupTimer > 0 {
		return
	}
	w.pickupTimer = config.PowerupInterval
	for i := 0; i < config.SpawnAttempts; i++ {
		pos := gamemap.TileCenter(w.Rng.Intn(w.Maze.Width), w.Rng.Intn(w.Maze.Height))
		if !w.Maze.IsWalkableWorld(pos) || pos.Dist(w.Player.Pos) < config.SpawnMinDistance {
			continue
		}
		kind := component.PickupKind(w.Rng.Intn(5))
		w.Pickups = append(w.Pickups, component.Pickup{Kind: kind, Pos: pos})
		return
	}
}

// collectPickups applies any power-up the player walks over.
func (w *World) collectPickups() {
	p := w.Player
	kept := w.Pickups[:0]
	for _, pu := range w.Pickups {
		if pu.Pos.Dist(p.Pos) > p.Radius+gamemap.TileSize/2 {
			kept = append(kept, pu)
			continue
		}
		switch pu.Kind {
		case component.PickupDamage:
			p.DamageBoostTime = config.PowerupDuration
		case component.PickupFireRate:
			p.FireBoostTime = config.PowerupDuration
		case component.PickupShield:
			p.ShieldTime = config.PowerupDuration
		case component.PickupInvis:
			p.InvisTime = config.PowerupDuration
		case component.PickupPoints:
			w.events.Points += config.PowerupPoints
		}
		w.emitSound("pickup")
	}
	w.Pickups = kept
}
