// Package system implements the per-tick simulation: spawning, enemy
// behavior, combat resolution, and the player's movement and abilities.
// The update order within a tick is fixed: timers → player → light → enemies
// → combat; the orchestrator checks win/lose after each tick.
package system

import (
	"math"
	"math/rand"

	"lastlight/internal/component"
	"lastlight/internal/config"
	"lastlight/internal/fog"
	"lastlight/internal/gamemap"
	"lastlight/internal/spatial"
)

// Input is the edge-triggered control state consumed once per tick.
// Move is a normalized direction; the one-shot flags are cleared by the
// caller after the tick.
type Input struct {
	Move          gamemap.Vec2
	PlaceLantern  bool
	ThrowFlare    bool
	FlareAim      gamemap.Vec2
	DropLure      bool
	StartTeleport bool
	Shockwave     bool
	CycleFocus    bool
}

// Scale carries the per-level difficulty parameters.
type Scale struct {
	HPMult    float64
	SpeedMult float64
	SpawnRate float64 // enemies per second
	MaxAlive  int
	ParTime   float64 // seconds until the horde rush triggers
}

// DamageNumber is a floating combat-feedback event for the presentation layer.
type DamageNumber struct {
	Pos    gamemap.Vec2
	Amount int
}

// Events accumulates presentation-facing output for one tick.
type Events struct {
	Damage []DamageNumber
	Sounds []string
	Points int
	Kills  int
}

// World is the live simulation state for one level. It is discarded
// wholesale on level transition; only the Player survives the handoff.
type World struct {
	Maze   *gamemap.Maze
	Fog    *fog.Engine
	Grid   *spatial.Grid
	Rng    *rand.Rand
	Player *component.Player

	Enemies []*component.Enemy
	Bullets []component.Bullet
	Goo     []component.GooProjectile
	Puddles []component.GooPuddle
	Pickups []component.Pickup

	Scale   Scale
	Elapsed float64
	Horde   bool

	// Lit is the spawn-rejection visibility oracle; defaults to the fog
	// engine, swappable in tests.
	Lit func(tx, ty int) bool

	// DamageTaken marks whether the player was hurt this level (no-damage bonus).
	DamageTaken bool

	spawnAcc    float64
	pickupTimer float64
	nextID      int
	events      Events
	scratch     []int // reused spatial query buffer
}

// NewWorld builds the simulation for one level. The player is repositioned
// to the start room; consumables and upgrades carry over untouched.
func NewWorld(m *gamemap.Maze, p *component.Player, scale Scale, rng *rand.Rand) *World {
	f := fog.NewEngine(m)
	f.TorchMult = p.TorchMult
	p.Pos = m.StartCenter()
	p.RootedTime = 0
	p.TeleportTimer = 0
	p.BladeAngle = 0
	w := &World{
		Maze:        m,
		Fog:         f,
		Grid:        spatial.NewGrid(float64(m.Width)*gamemap.TileSize, float64(m.Height)*gamemap.TileSize),
		Rng:         rng,
		Player:      p,
		Scale:       scale,
		pickupTimer: config.PowerupInterval,
	}
	w.Lit = f.IsTileLit
	return w
}

// Update advances the simulation by one fixed step.
func (w *World) Update(dt float64, in Input) {
	w.Elapsed += dt
	w.Player.TickTimers(dt)
	w.tickTeleport(dt)
	if !w.Horde && w.Elapsed > w.Scale.ParTime {
		w.TriggerHorde()
	}

	w.movePlayer(dt, in.Move)

	// removeDead compacted the enemy slice at the end of the previous tick,
	// so the grid must be rebuilt before anything queries it this tick. The
	// shockwave action is the first consumer.
	w.rebuildGrid()
	w.handleActions(in)
	w.collectPickups()

	// The fog engine must run before the enemy step so spawn rejection reads
	// visibility derived from the previous enemy state, not a mid-tick mix.
	w.Fog.TorchMult = w.Player.TorchMult
	w.Fog.Update(dt, w.Player.Pos)

	w.updateSpawning(dt)
	w.updateEnemies(dt)
	w.updatePickupTimer(dt)

	w.updateWeapons(dt)
	w.updateBullets(dt)
	w.updateBlade(dt)
	w.updateGoo(dt)
	w.updatePuddles(dt)

	w.removeDead()
}

// DrainEvents returns and clears the tick's presentation events.
func (w *World) DrainEvents() Events {
	ev := w.events
	w.events = Events{}
	return ev
}

// ExitReached reports the win condition: within one tile of the exit center
// after the spawn grace period.
func (w *World) ExitReached() bool {
	if w.Elapsed < config.SpawnGracePeriod {
		return false
	}
	return w.Player.Pos.Dist(w.Maze.ExitCenter()) < gamemap.TileSize
}

// PlayerDead reports the loss condition.
func (w *World) PlayerDead() bool { return w.Player.HP <= 0 }

// TriggerHorde switches the level into horde-rush mode. Idempotent within a
// level: the speed multiplier is applied to live chasers exactly once.
func (w *World) TriggerHorde() {
	if w.Horde {
		return
	}
	w.Horde = true
	for _, e := range w.Enemies {
		if e.Alive && e.Kind == component.KindChaser {
			e.Speed *= config.HordeSpeedMultiplier
		}
	}
	w.emitSound("horde")
}

// movePlayer applies the movement vector with axis-separated wall sliding.
func (w *World) movePlayer(dt float64, move gamemap.Vec2) {
	p := w.Player
	if p.RootedTime > 0 || p.TeleportTimer > 0 {
		return
	}
	dir := move.Normalized()
	step := dir.Scale(p.MoveSpeed() * dt)

	next := p.Pos
	next.X += step.X
	if !w.canStand(next, p.Radius) {
		next.X = p.Pos.X
	}
	next.Y += step.Y
	if !w.canStand(next, p.Radius) {
		next.Y = p.Pos.Y
	}
	p.Pos = next
}

// canStand reports whether a circle of radius r at p overlaps only floor.
func (w *World) canStand(p gamemap.Vec2, r float64) bool {
	for _, off := range []gamemap.Vec2{{X: -r, Y: -r}, {X: r, Y: -r}, {X: -r, Y: r}, {X: r, Y: r}} {
		if !w.Maze.IsWalkableWorld(p.Add(off)) {
			return false
		}
	}
	return true
}

// handleActions consumes the one-shot triggers. Zero-inventory actions are
// silent no-ops.
func (w *World) handleActions(in Input) {
	p := w.Player
	if in.PlaceLantern && p.Lanterns > 0 {
		p.Lanterns--
		w.Fog.AddLantern(p.Pos)
		w.emitSound("lantern")
	}
	if in.ThrowFlare && p.Flares > 0 {
		p.Flares--
		w.Fog.ThrowFlare(p.Pos, in.FlareAim)
		w.emitSound("flare")
	}
	if in.DropLure && p.Lures > 0 {
		p.Lures--
		w.Fog.DropLure(p.Pos)
		w.emitSound("lure")
	}
	if in.StartTeleport && p.Teleports > 0 && p.TeleportTimer == 0 {
		p.TeleportTimer = config.TeleportChannel
		w.emitSound("teleport_start")
	}
	if in.Shockwave && p.Shockwaves > 0 {
		p.Shockwaves--
		w.fireShockwave()
	}
	if in.CycleFocus {
		p.CycleFocus()
	}
}

// tickTeleport counts down the channel and relocates the player to the start
// room when it completes.
func (w *World) tickTeleport(dt float64) {
	p := w.Player
	if p.TeleportTimer <= 0 {
		return
	}
	p.TeleportTimer -= dt
	if p.TeleportTimer <= 0 {
		p.TeleportTimer = 0
		p.Teleports--
		p.Pos = w.Maze.StartCenter()
		w.emitSound("teleport")
	}
}

// fireShockwave damages, freezes, and knocks back every enemy in the blast.
func (w *World) fireShockwave() {
	p := w.Player
	w.scratch = w.Grid.QueryRadius(w.scratch[:0], p.Pos.X, p.Pos.Y, config.ShockwaveRadius+config.BroodmotherRadius)
	for _, idx := range w.scratch {
		e := w.Enemies[idx]
		if !e.Alive {
			continue
		}
		d := e.Pos.Dist(p.Pos)
		if d > config.ShockwaveRadius+e.Radius {
			continue
		}
		if e.FrozenTime < config.ShockwaveFreeze {
			e.FrozenTime = config.ShockwaveFreeze
		}
		if d >= 1 {
			pushed := e.Pos.Add(e.Pos.Sub(p.Pos).Scale(config.ShockwaveKnockback / d))
			if w.canStand(pushed, e.Radius) {
				e.Pos = pushed
			}
		}
		w.hitEnemy(e, config.ShockwaveDamage)
	}
	w.emitSound("shockwave")
}

// damagePlayer applies contact or hazard damage. A shield negates the HP
// loss but still flashes; any real damage cancels a teleport channel.
func (w *World) damagePlayer(amount float64) {
	p := w.Player
	p.HitFlash = 0.2
	if p.Shielded() {
		return
	}
	p.HP -= amount
	w.DamageTaken = true
	if p.TeleportTimer > 0 {
		p.TeleportTimer = 0
		w.emitSound("teleport_cancel")
	}
}

// hitEnemy applies damage, records the floating number, and scores kills.
func (w *World) hitEnemy(e *component.Enemy, dmg float64) {
	w.events.Damage = append(w.events.Damage, DamageNumber{Pos: e.Pos, Amount: int(math.Round(dmg))})
	if e.ApplyDamage(dmg) {
		w.events.Kills++
		w.events.Points += e.Points()
		w.emitSound("kill")
	}
}

// rebuildGrid reindexes enemies by slice position for this tick's queries.
func (w *World) rebuildGrid() {
	w.Grid.Clear()
	for i, e := range w.Enemies {
		if e.Alive {
			w.Grid.Insert(i, e.Pos.X, e.Pos.Y)
		}
	}
}

// removeDead compacts the enemy list after combat resolution.
func (w *World) removeDead() {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive {
			kept = append(kept, e)
		}
	}
	w.Enemies = kept
}

func (w *World) emitSound(name string) {
	w.events.Sounds = append(w.events.Sounds, name)
}
