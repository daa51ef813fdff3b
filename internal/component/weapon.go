package component

// WeaponKind enumerates the player's weapons. The player owns a set of these;
// every owned weapon fires independently on its own cooldown.
type WeaponKind uint8

const (
	WeaponPrimary WeaponKind = iota
	WeaponRapid
	WeaponSpread
	WeaponExtreme
	NumWeapons
)

// WeaponStats holds the static stats for one weapon kind. Damage and
// fire-rate multipliers are applied at fire time, never baked in here.
type WeaponStats struct {
	Name     string
	Damage   float64
	FireRate float64 // shots per second
	Range    float64
	Pellets  int     // bullets per activation
	Spread   float64 // total arc in radians across pellets
}

// Weapons is the static stat table, indexed by WeaponKind.
var Weapons = [NumWeapons]WeaponStats{
	WeaponPrimary: {Name: "revolver", Damage: 10, FireRate: 2, Range: 300, Pellets: 1},
	WeaponRapid:   {Name: "carbine", Damage: 4, FireRate: 6, Range: 260, Pellets: 1},
	WeaponSpread:  {Name: "scattergun", Damage: 6, FireRate: 1.2, Range: 220, Pellets: 5, Spread: 0.5},
	WeaponExtreme: {Name: "ripper", Damage: 3, FireRate: 12, Range: 240, Pellets: 1},
}

// DPS returns the weapon's nominal damage per second, used to order weapons
// for target claiming (highest first).
func (s WeaponStats) DPS() float64 {
	pellets := s.Pellets
	if pellets < 1 {
		pellets = 1
	}
	return s.Damage * float64(pellets) * s.FireRate
}
