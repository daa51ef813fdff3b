package assets

import "lastlight/internal/component"

// ShopKind says what buying an entry does.
type ShopKind uint8

const (
	ShopWeapon ShopKind = iota
	ShopBlade
	ShopUpgrade
	ShopConsumable
)

// UpgradeStat selects which permanent multiplier an upgrade entry raises.
type UpgradeStat uint8

const (
	UpDamage UpgradeStat = iota
	UpFireRate
	UpSpeed
	UpTorch
	UpMaxHP
)

// ConsumableKind selects which inventory counter a consumable entry adds to.
type ConsumableKind uint8

const (
	CLantern ConsumableKind = iota
	CFlare
	CLure
	CTeleport
	CShockwave
)

// ShopEntry is one purchasable line in the between-level shop. Weapons and
// the blade sell once per run; upgrades stack additively on the base
// multiplier; consumables add Count charges.
type ShopEntry struct {
	Name  string
	Glyph string
	Price int
	Kind  ShopKind

	Weapon     component.WeaponKind // ShopWeapon
	Stat       UpgradeStat          // ShopUpgrade
	Step       float64              // ShopUpgrade: added to the base each buy
	Consumable ConsumableKind       // ShopConsumable
	Count      int                  // ShopConsumable
}

// ShopCatalogue is the fixed between-level stock, selected by letter keys.
var ShopCatalogue = []ShopEntry{
	{Name: "Carbine", Glyph: "🔫", Price: 150, Kind: ShopWeapon, Weapon: component.WeaponRapid},
	{Name: "Scattergun", Glyph: "💥", Price: 200, Kind: ShopWeapon, Weapon: component.WeaponSpread},
	{Name: "Ripper", Glyph: "⚙️", Price: 300, Kind: ShopWeapon, Weapon: component.WeaponExtreme},
	{Name: "Orbiting Blade", Glyph: GlyphBlade, Price: 250, Kind: ShopBlade},
	{Name: "Damage +25%", Glyph: "💢", Price: 80, Kind: ShopUpgrade, Stat: UpDamage, Step: 0.25},
	{Name: "Fire Rate +20%", Glyph: "⚡", Price: 80, Kind: ShopUpgrade, Stat: UpFireRate, Step: 0.20},
	{Name: "Move Speed +10%", Glyph: "👟", Price: 60, Kind: ShopUpgrade, Stat: UpSpeed, Step: 0.10},
	{Name: "Torch +15%", Glyph: "🔥", Price: 70, Kind: ShopUpgrade, Stat: UpTorch, Step: 0.15},
	{Name: "Max HP +20", Glyph: "❤️", Price: 60, Kind: ShopUpgrade, Stat: UpMaxHP, Step: 20},
	{Name: "Lantern", Glyph: GlyphLantern, Price: 30, Kind: ShopConsumable, Consumable: CLantern, Count: 1},
	{Name: "Flare ×2", Glyph: GlyphFlare, Price: 25, Kind: ShopConsumable, Consumable: CFlare, Count: 2},
	{Name: "Lure", Glyph: GlyphLure, Price: 35, Kind: ShopConsumable, Consumable: CLure, Count: 1},
	{Name: "Teleport Charge", Glyph: "🌀", Price: 50, Kind: ShopConsumable, Consumable: CTeleport, Count: 1},
	{Name: "Shockwave Charge", Glyph: "🌊", Price: 60, Kind: ShopConsumable, Consumable: CShockwave, Count: 1},
}
