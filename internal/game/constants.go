package game

import (
	"time"

	"boomgates/internal/geometry"
)

// Playfield constants
const (
	WindowWidth  = 1200.0
	WindowHeight = 800.0
)

// Movement constants, in pixels per tick
const (
	PlayerSpeed = 3.0
	EnemySpeed  = 2.0
	PickupSpeed = 2.9
)

// Host cadence defaults
const (
	TickCycle          = 8 * time.Millisecond
	EnemySpawnInterval = 5000 * time.Millisecond
	GateSpawnInterval  = 10000 * time.Millisecond
)

// Explosion and pickup tuning
const (
	ExplosionRadius  = 150.0
	BoomStrength     = 1000.0
	BoomEpsilon      = 1.0
	VelocityDecay    = 0.925
	PickupAttractMin = 75.0
	PickupLifetime   = 10 * time.Second
	GateGracePeriod  = 5 * time.Second
)

// Spawn placement
const (
	GateBuffer  = 25.0
	EnemyBuffer = 150.0
	GateMaxSpin = 1.5 // degrees per tick, either direction
)

// pickupReach is the center distance at which the player consumes a pickup
const pickupReach = geometry.CircleRadius + geometry.SquareRadius

// Movement keys. Arrow keys arrive lowercased.
const (
	KeyUp    = "w"
	KeyLeft  = "a"
	KeyDown  = "s"
	KeyRight = "d"
)

var keyAliases = map[string]string{
	"arrowup":    KeyUp,
	"arrowleft":  KeyLeft,
	"arrowdown":  KeyDown,
	"arrowright": KeyRight,
}
