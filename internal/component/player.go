package component

import (
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// Player holds all player state. Position, statuses, and timers reset each
// level; weapons, upgrade multipliers, and consumables persist across levels
// within a run.
type Player struct {
	Pos    gamemap.Vec2
	HP     float64
	MaxHP  float64
	Radius float64

	// Statuses.
	RootedTime float64 // blocks movement input; set to max on re-apply
	HitFlash   float64

	// Owned weapons and their cooldowns. Focus marks the weapon that gets
	// first claim on targets each combat tick.
	Owned      [NumWeapons]bool
	Cooldowns  [NumWeapons]float64
	Focus      WeaponKind
	HasBlade   bool
	BladeAngle float64

	// Upgrade base multipliers. Power-ups multiply on top transiently and
	// are dropped on expiry; the base is never mutated by a power-up.
	DamageMult   float64
	FireRateMult float64
	SpeedMult    float64
	TorchMult    float64

	// Transient power-up timers.
	DamageBoostTime float64
	FireBoostTime   float64
	ShieldTime      float64
	InvisTime       float64

	// Consumables.
	Lanterns   int
	Flares     int
	Lures      int
	Teleports  int
	Shockwaves int

	// Teleport channel countdown; zero when idle. Taking damage cancels it.
	TeleportTimer float64
}

// NewPlayer returns a fresh player for a new run.
func NewPlayer() *Player {
	p := &Player{
		HP:           config.PlayerMaxHP,
		MaxHP:        config.PlayerMaxHP,
		Radius:       config.PlayerRadius,
		DamageMult:   1,
		FireRateMult: 1,
		SpeedMult:    1,
		TorchMult:    1,
		Lanterns:     2,
		Flares:       3,
	}
	p.Owned[WeaponPrimary] = true
	return p
}

// CycleFocus moves the focus to the next owned weapon.
func (p *Player) CycleFocus() {
	for i := 1; i <= int(NumWeapons); i++ {
		k := WeaponKind((int(p.Focus) + i) % int(NumWeapons))
		if p.Owned[k] {
			p.Focus = k
			return
		}
	}
}

// MoveSpeed is the current movement speed in world units per second.
func (p *Player) MoveSpeed() float64 { return config.PlayerSpeed * p.SpeedMult }

// Invisible reports whether an invisibility power-up is active; unseen
// players are not chased or targeted.
func (p *Player) Invisible() bool { return p.InvisTime > 0 }

// Shielded reports whether damage is currently negated.
func (p *Player) Shielded() bool { return p.ShieldTime > 0 }

// EffectiveDamageMult composes the upgrade base with the transient power-up
// layer at point of use.
func (p *Player) EffectiveDamageMult() float64 {
	if p.DamageBoostTime > 0 {
		return p.DamageMult * config.PowerupFactor
	}
	return p.DamageMult
}

// EffectiveFireRateMult composes the upgrade base with the transient
// power-up layer at point of use.
func (p *Player) EffectiveFireRateMult() float64 {
	if p.FireBoostTime > 0 {
		return p.FireRateMult * config.PowerupFactor
	}
	return p.FireRateMult
}

// ApplyRoot sets the root timer to the max of the current and applied
// durations; concurrent roots never sum.
func (p *Player) ApplyRoot(duration float64) {
	if duration > p.RootedTime {
		p.RootedTime = duration
	}
}

// TickTimers decrements every countdown, flooring at zero.
func (p *Player) TickTimers(dt float64) {
	tick := func(t *float64) {
		*t -= dt
		if *t < 0 {
			*t = 0
		}
	}
	tick(&p.RootedTime)
	tick(&p.HitFlash)
	tick(&p.DamageBoostTime)
	tick(&p.FireBoostTime)
	tick(&p.ShieldTime)
	tick(&p.InvisTime)
}
