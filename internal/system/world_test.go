package system

import (
	"math/rand"
	"testing"

	"lastlight/internal/component"
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// testMaze returns an all-floor maze with start and exit rooms in opposite
// corners.
func testMaze(w, h int) *gamemap.Maze {
	m := gamemap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
	m.Start = gamemap.Room{X1: 1, Y1: 1, X2: 5, Y2: 5}
	m.Exit = gamemap.Room{X1: w - 7, Y1: h - 7, X2: w - 2, Y2: h - 2}
	m.Rooms = []gamemap.Room{m.Start, m.Exit}
	return m
}

func testScale() Scale {
	return Scale{HPMult: 1, SpeedMult: 1, SpawnRate: 0.5, MaxAlive: 40, ParTime: 30}
}

func newTestWorld(seed int64) *World {
	m := testMaze(40, 40)
	return NewWorld(m, component.NewPlayer(), testScale(), rand.New(rand.NewSource(seed)))
}

func TestWinTriggerDistance(t *testing.T) {
	w := newTestWorld(1)
	w.Elapsed = config.SpawnGracePeriod + 1
	exit := w.Maze.ExitCenter()

	w.Player.Pos = exit.Add(gamemap.Vec2{X: 39})
	if !w.ExitReached() {
		t.Error("39 units from exit center should trigger the win")
	}

	w.Player.Pos = exit.Add(gamemap.Vec2{X: 41})
	if w.ExitReached() {
		t.Error("41 units from exit center should not trigger the win")
	}
}

func TestWinBlockedDuringGracePeriod(t *testing.T) {
	w := newTestWorld(1)
	w.Player.Pos = w.Maze.ExitCenter()
	w.Elapsed = config.SpawnGracePeriod / 2
	if w.ExitReached() {
		t.Error("win must not fire before the spawn grace period elapses")
	}
}

func TestHordeTriggerIsOneShot(t *testing.T) {
	w := newTestWorld(2)
	e := w.addEnemy(component.KindChaser, gamemap.TileCenter(20, 20))
	base := e.Speed

	w.TriggerHorde()
	if e.Speed != base*config.HordeSpeedMultiplier {
		t.Fatalf("speed after horde = %v, want %v", e.Speed, base*config.HordeSpeedMultiplier)
	}

	w.TriggerHorde()
	if e.Speed != base*config.HordeSpeedMultiplier {
		t.Fatalf("second trigger compounded speed to %v", e.Speed)
	}
	if got := w.effectiveSpawnRate(); got != w.Scale.SpawnRate*config.HordeRateMultiplier {
		t.Errorf("horde spawn rate = %v, want %v", got, w.Scale.SpawnRate*config.HordeRateMultiplier)
	}
}

func TestHordeTriggersFromParTime(t *testing.T) {
	w := newTestWorld(3)
	w.Elapsed = w.Scale.ParTime + 0.01
	w.Update(config.FixedDt, Input{})
	if !w.Horde {
		t.Error("elapsed time past par should trigger the horde rush")
	}
}

func TestContactDamageScalesWithDt(t *testing.T) {
	w := newTestWorld(4)
	w.Player.Pos = gamemap.TileCenter(20, 20)
	w.addEnemy(component.KindChaser, w.Player.Pos.Add(gamemap.Vec2{X: 5}))
	w.rebuildGrid()

	before := w.Player.HP
	w.updateEnemies(config.FixedDt)
	lost := before - w.Player.HP
	want := config.ChaserContactDPS * config.FixedDt
	if lost < want*0.5 || lost > want*1.5 {
		t.Errorf("contact damage per tick = %v, want about %v", lost, want)
	}
}

func TestShieldNegatesDamageButFlashes(t *testing.T) {
	w := newTestWorld(5)
	w.Player.ShieldTime = 5
	before := w.Player.HP
	w.damagePlayer(10)
	if w.Player.HP != before {
		t.Error("shield should fully negate damage")
	}
	if w.Player.HitFlash == 0 {
		t.Error("shielded hit should still flash")
	}
	if w.DamageTaken {
		t.Error("shielded hit should not void the no-damage bonus")
	}
}

func TestFrozenEnemySkipsBehavior(t *testing.T) {
	w := newTestWorld(6)
	w.Player.Pos = gamemap.TileCenter(20, 20)
	e := w.addEnemy(component.KindChaser, gamemap.TileCenter(25, 20))
	e.FrozenTime = 1
	w.rebuildGrid()

	pos := e.Pos
	w.updateEnemies(config.FixedDt)
	if e.Pos != pos {
		t.Error("frozen chaser must not move")
	}
}

func TestTeleportChannelAndCancel(t *testing.T) {
	w := newTestWorld(7)
	w.Player.Teleports = 1
	w.Player.Pos = gamemap.TileCenter(30, 30)

	w.handleActions(Input{StartTeleport: true})
	if w.Player.TeleportTimer != config.TeleportChannel {
		t.Fatalf("channel timer = %v, want %v", w.Player.TeleportTimer, config.TeleportChannel)
	}

	// Damage cancels the channel and keeps the charge.
	w.damagePlayer(1)
	if w.Player.TeleportTimer != 0 {
		t.Error("damage should cancel the teleport channel")
	}
	if w.Player.Teleports != 1 {
		t.Error("cancelled teleport should not consume a charge")
	}

	// A full, undisturbed channel relocates to the start room.
	w.handleActions(Input{StartTeleport: true})
	for i := 0; i < int(config.TeleportChannel/config.FixedDt)+2; i++ {
		w.tickTeleport(config.FixedDt)
	}
	if w.Player.Pos != w.Maze.StartCenter() {
		t.Errorf("player at %v after channel, want start center %v", w.Player.Pos, w.Maze.StartCenter())
	}
	if w.Player.Teleports != 0 {
		t.Error("completed teleport should consume the charge")
	}
}

func TestZeroInventoryActionsAreNoOps(t *testing.T) {
	w := newTestWorld(8)
	w.Player.Lanterns = 0
	w.Player.Flares = 0
	w.Player.Shockwaves = 0
	w.Player.Teleports = 0

	w.handleActions(Input{PlaceLantern: true, ThrowFlare: true, StartTeleport: true, Shockwave: true})
	if len(w.Fog.Lights()) != 0 || len(w.Fog.Flares()) != 0 || w.Player.TeleportTimer != 0 {
		t.Error("actions with zero inventory must be silent no-ops")
	}
}

func TestShockwaveHitsEnemiesAfterCompaction(t *testing.T) {
	w := newTestWorld(10)
	p := w.Player
	p.Pos = gamemap.TileCenter(20, 20)
	p.Shockwaves = 1

	// Five enemies in blast range. Four die this tick so removeDead compacts
	// the slice before the shockwave queries the grid on the next one. The
	// survivor sits past the torch radius so no weapon fires at it.
	var survivor *component.Enemy
	for i := 0; i < 5; i++ {
		e := w.addEnemy(component.KindChaser, p.Pos.Add(gamemap.Vec2{X: 170, Y: float64(i)}))
		if i == 4 {
			survivor = e
		} else {
			e.Alive = false
		}
	}
	w.Update(config.FixedDt, Input{})
	if len(w.Enemies) != 1 {
		t.Fatalf("dead enemies should compact away, have %d", len(w.Enemies))
	}

	baseHP := survivor.HP
	baseDist := survivor.Pos.Dist(p.Pos)
	w.Update(config.FixedDt, Input{Shockwave: true})

	if p.Shockwaves != 0 {
		t.Error("shockwave charge should be consumed")
	}
	if survivor.HP != baseHP-config.ShockwaveDamage {
		t.Errorf("survivor HP = %v, want %v", survivor.HP, baseHP-config.ShockwaveDamage)
	}
	if survivor.FrozenTime < config.ShockwaveFreeze-2*config.FixedDt {
		t.Errorf("survivor should be frozen, FrozenTime = %v", survivor.FrozenTime)
	}
	if got := survivor.Pos.Dist(p.Pos); got <= baseDist {
		t.Errorf("knockback should push the survivor away, dist %v -> %v", baseDist, got)
	}
	if !w.Maze.IsWalkableWorld(survivor.Pos) {
		t.Error("knockback landed the survivor inside a wall")
	}
}

func TestShockwaveKnockbackBlockedByWalls(t *testing.T) {
	m := testMaze(40, 40)
	// Thick wall slab east of the enemy so the knockback cannot clear it.
	for y := 0; y < 40; y++ {
		for x := 24; x <= 27; x++ {
			m.Set(x, y, gamemap.MakeWall())
		}
	}
	w := NewWorld(m, component.NewPlayer(), testScale(), rand.New(rand.NewSource(11)))
	p := w.Player
	p.Pos = gamemap.TileCenter(20, 20)
	p.Shockwaves = 1

	e := w.addEnemy(component.KindChaser, p.Pos.Add(gamemap.Vec2{X: 118}))
	w.Update(config.FixedDt, Input{})

	before := e.Pos
	w.Update(config.FixedDt, Input{Shockwave: true})
	if e.Pos != before {
		t.Errorf("knockback into a wall should leave the enemy in place, moved %v -> %v", before, e.Pos)
	}
	if e.FrozenTime <= 0 {
		t.Error("a blocked knockback still freezes the enemy")
	}
}

func TestWallSlidingKeepsFreeAxis(t *testing.T) {
	m := testMaze(40, 40)
	// Wall column directly east of the player.
	for y := 0; y < 40; y++ {
		m.Set(21, y, gamemap.MakeWall())
	}
	w := NewWorld(m, component.NewPlayer(), testScale(), rand.New(rand.NewSource(9)))
	w.Player.Pos = gamemap.TileCenter(20, 20)

	start := w.Player.Pos
	w.movePlayer(0.1, gamemap.Vec2{X: 1, Y: 1}.Normalized())
	if w.Player.Pos.Y <= start.Y {
		t.Error("Y movement should survive an X-axis wall hit")
	}
	if w.Player.Pos.X > gamemap.TileCenter(20, 20).X+gamemap.TileSize {
		t.Error("X movement should be blocked by the wall column")
	}
}
