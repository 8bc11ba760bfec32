package constant

import "math"

// Gravity model
const (
	// GravityConstant is the game-scale G
	GravityConstant = 1.0

	// PlanetMass and SatelliteMass feed the inverse-square law
	PlanetMass    = 2000.0
	SatelliteMass = 1.0

	// MinGravityDistance floors the distance used for force magnitude
	// Coincident bodies (distance 0) receive no force at all
	MinGravityDistance = 1.0
)

// Planet placement and spin
const (
	PlanetX = 400.0
	PlanetY = 320.0

	// PlanetRadius is the drawn radius of the planet disc (100x100 sprite)
	PlanetRadius = 50.0
)

// PlanetRotationStep is the per-frame spin in degrees (0.01 rad expressed in degrees)
var PlanetRotationStep = 0.01 * 180 / math.Pi

// Satellite spawn window (half-open ranges) and insertion speed
const (
	SpawnMinX     = 315
	SpawnMaxX     = 425
	SpawnMinY     = 70
	SpawnMaxY     = 180
	SpawnSpeedX   = 3.0
	SpawnSpeedY   = 0.0
	HeadingOffset = 90.0 // sprite flies tail-first
)

// Thrusters
const (
	// ThrustDelta is the velocity change per frame of held thrust
	ThrustDelta = 0.05

	// ThrustFuelCost is fuel burned per frame of thrust
	ThrustFuelCost = 2

	// InitialFuel is the tank at spawn
	InitialFuel = 100

	// LegacyDriftX is the velocity forced by the fuel-depleted parity rule
	LegacyDriftX = 2.0
)
