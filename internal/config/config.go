// Package config collects the simulation tuning constants in one place.
package config

// Simulation loop.
const (
	TickRate      = 60
	FixedDt       = 1.0 / TickRate
	MaxFrameDelta = 0.25 // clamp stalls so the loop never spirals catching up
)

// Fog of war.
const (
	FogCreepDuration = 25.0 // seconds from fully lit to fully dark
	VisibleThreshold = 0.5  // visibility above this counts as "seen"
	TorchBaseRadius  = 150.0
	LanternRadius    = 130.0
	FlareRadius      = 170.0
	FlareSpeed       = 600.0
	FlareMinDistance = 400.0
	LureRadius       = 110.0
	LureDuration     = 12.0
)

// Player.
const (
	PlayerMaxHP      = 100.0
	PlayerSpeed      = 180.0
	PlayerRadius     = 14.0
	SpawnGracePeriod = 1.0 // seconds before the exit can trigger a win
	TeleportChannel  = 3.0
)

// Enemies.
const (
	ChaserHP         = 30.0
	ChaserSpeed      = 90.0
	ChaserRadius     = 12.0
	ChaserContactDPS = 15.0
	ChaserWanderTurn = 1.5 // seconds between random heading changes

	SpitterHP         = 45.0
	SpitterRadius     = 14.0
	SpitterRange      = 320.0
	SpitterCooldown   = 3.0
	SpitterWindup     = 0.8
	GooSpeed          = 260.0
	GooPuddleRadius   = 45.0
	GooPuddleDuration = 6.0
	RootDirectHit     = 1.5
	RootPuddleTouch   = 0.8

	BroodmotherHP     = 200.0
	BroodmotherRadius = 22.0
	BroodCooldown     = 5.0
	BroodCount        = 4
	BroodRingRadius   = 60.0
)

// Spawning.
const (
	SpawnAttempts    = 25
	SpawnMinDistance = 240.0
	HordeMinDistance = 200.0
	HordeMaxDistance = 360.0
	SpitterChance    = 0.15 // remainder split between chaser and broodmother
	BroodChance      = 0.05
)

// Horde rush.
const (
	HordeRateMultiplier  = 6.0
	HordeSpeedMultiplier = 1.5
	HordeCapMultiplier   = 2.0
)

// Combat.
const (
	BulletSpeed    = 520.0
	BulletLifetime = 0.7
	BladeOrbit     = 55.0
	BladeAngular   = 4.5 // radians per second
	BladeHitRadius = 18.0
	BladeDamage    = 8.0
	BladeCooldown  = 0.5 // per-enemy, prevents repeat hits within one orbit
)

// Consumables and power-ups.
const (
	ShockwaveRadius    = 180.0
	ShockwaveDamage    = 25.0
	ShockwaveFreeze    = 2.0
	ShockwaveKnockback = 120.0
	PowerupDuration    = 10.0
	PowerupInterval    = 20.0 // seconds between pickup placements
	PowerupFactor      = 2.0  // temporary damage / fire-rate multiplier
	PowerupPoints      = 75
)

// Spatial index.
const SpatialCellSize = 80.0

// Economy.
const (
	PointsChaser      = 10
	PointsSpitter     = 25
	PointsBroodmother = 100
	NoDamageBonus     = 50
	TimeBonusPerSec   = 2
)
