package component

import "lastlight/internal/gamemap"

// PickupKind enumerates the floor power-ups.
type PickupKind uint8

const (
	PickupDamage PickupKind = iota
	PickupFireRate
	PickupShield
	PickupInvis
	PickupPoints
)

// Pickup is a power-up lying on a floor tile until the player walks over it.
type Pickup struct {
	Kind PickupKind
	Pos  gamemap.Vec2
}
