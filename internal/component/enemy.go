package component

import (
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// EnemyKind discriminates the enemy variants.
type EnemyKind uint8

const (
	KindChaser EnemyKind = iota
	KindSpitter
	KindBroodmother
)

// ChaserState is the payload for the basic melee chaser.
type ChaserState struct {
	LastDir     gamemap.Vec2 // wander heading while the player is unseen
	WanderTimer float64
}

// SpitterState is the payload for the stationary ranged attacker.
type SpitterState struct {
	Cooldown float64
	Windup   float64      // >0 while telegraphing a shot
	Target   gamemap.Vec2 // player position captured at windup start
}

// BroodState is the payload for the stationary spawner.
type BroodState struct {
	Cooldown float64
	Spawned  int
}

// Enemy is a tagged variant: Kind selects exactly one non-nil payload and the
// per-tick behavior switch dispatches on it.
type Enemy struct {
	ID         int
	Pos        gamemap.Vec2
	HP, MaxHP  float64
	Speed      float64
	Radius     float64
	Alive      bool
	FlashTime  float64 // hit feedback, presentation reads it
	FrozenTime float64 // >0 skips all behavior for the tick
	BladeHit   float64 // per-enemy melee hit cooldown

	Kind    EnemyKind
	Chaser  *ChaserState
	Spitter *SpitterState
	Brood   *BroodState
}

// NewChaser creates a basic chaser with level multipliers applied.
func NewChaser(id int, pos gamemap.Vec2, hpMult, speedMult float64) *Enemy {
	return &Enemy{
		ID:     id,
		Pos:    pos,
		HP:     config.ChaserHP * hpMult,
		MaxHP:  config.ChaserHP * hpMult,
		Speed:  config.ChaserSpeed * speedMult,
		Radius: config.ChaserRadius,
		Alive:  true,
		Kind:   KindChaser,
		Chaser: &ChaserState{},
	}
}

// NewSpitter creates a stationary ranged attacker.
func NewSpitter(id int, pos gamemap.Vec2, hpMult float64) *Enemy {
	return &Enemy{
		ID:      id,
		Pos:     pos,
		HP:      config.SpitterHP * hpMult,
		MaxHP:   config.SpitterHP * hpMult,
		Radius:  config.SpitterRadius,
		Alive:   true,
		Kind:    KindSpitter,
		Spitter: &SpitterState{Cooldown: config.SpitterCooldown},
	}
}

// NewBroodmother creates a stationary spawner.
func NewBroodmother(id int, pos gamemap.Vec2, hpMult float64) *Enemy {
	return &Enemy{
		ID:     id,
		Pos:    pos,
		HP:     config.BroodmotherHP * hpMult,
		MaxHP:  config.BroodmotherHP * hpMult,
		Radius: config.BroodmotherRadius,
		Alive:  true,
		Kind:   KindBroodmother,
		Brood:  &BroodState{Cooldown: config.BroodCooldown},
	}
}

// ApplyDamage subtracts HP, starts the hit flash, and reports a kill.
func (e *Enemy) ApplyDamage(dmg float64) bool {
	if !e.Alive {
		return false
	}
	e.HP -= dmg
	e.FlashTime = 0.15
	if e.HP <= 0 {
		e.Alive = false
		return true
	}
	return false
}

// Points returns the score awarded for killing this enemy.
func (e *Enemy) Points() int {
	switch e.Kind {
	case KindSpitter:
		return config.PointsSpitter
	case KindBroodmother:
		return config.PointsBroodmother
	default:
		return config.PointsChaser
	}
}
