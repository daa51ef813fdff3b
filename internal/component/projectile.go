package component

import "lastlight/internal/gamemap"

// Bullet is an ephemeral player projectile.
type Bullet struct {
	Pos      gamemap.Vec2
	Vel      gamemap.Vec2
	Damage   float64
	Lifetime float64 // seconds remaining
}

// GooProjectile is a spitter shot homing to the position captured at windup.
type GooProjectile struct {
	Pos    gamemap.Vec2
	Vel    gamemap.Vec2
	Target gamemap.Vec2
}

// GooPuddle is the lingering hazard a goo shot leaves where it lands.
// It roots the player on contact and removes itself when Remaining runs out.
type GooPuddle struct {
	Pos       gamemap.Vec2
	Radius    float64
	Remaining float64
}
