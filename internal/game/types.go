package game

import (
	"math/rand"
	"strings"
	"time"

	"boomgates/internal/geometry"
)

// EntityKind tags the entity variant
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindGate
	KindPickup
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindGate:
		return "gate"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Status is the game's run state
type Status uint8

const (
	StatusRunning Status = iota
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// KillCause records which hazard ended the game
type KillCause string

const (
	KillCauseNone       KillCause = ""
	KillCauseEnemy      KillCause = "enemy"
	KillCauseGateCorner KillCause = "gate corner"
)

// Entity is a game object. Which of the data fields are meaningful depends on Kind:
// gates use Spin, pickups use Velocity, both use SpawnedAt.
type Entity struct {
	ID        uint32
	Kind      EntityKind
	Shape     geometry.Shape
	Spin      float64      // gate rotation step in degrees per tick
	Velocity  geometry.Vec // pickup drift per tick
	SpawnedAt time.Time
}

// GameState is the per-tick view handed to every entity update
type GameState struct {
	Keys   map[string]struct{}
	Player geometry.Vec
}

// Pressed reports whether a movement key is held
func (s GameState) Pressed(key string) bool {
	_, ok := s.Keys[key]
	return ok
}

// TickResult summarizes what happened during one tick
type TickResult struct {
	Explosions       int
	EnemiesDestroyed int
	PickupsConsumed  int
	PickupsExpired   int
	GameOver         bool
	Cause            KillCause
}

// Game is the authoritative simulation. It is not safe for concurrent use;
// the owner serializes every call.
type Game struct {
	keys       map[string]struct{}
	player     *Entity
	entities   []*Entity
	score      uint64
	multiplier uint64
	explosions []geometry.Vec
	status     Status
	spawnCount int
	nextID     uint32
	rng        *rand.Rand
}

// Option configures a new Game
type Option func(*Game)

// WithRand sets the random source used for spawning
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSeed seeds the spawn random source. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// NewPlayer creates the player at the center of the playfield
func NewPlayer() *Entity {
	return &Entity{
		Kind:  KindPlayer,
		Shape: geometry.Circle(WindowWidth/2, WindowHeight/2),
	}
}

// NewEnemy creates an enemy at the given position
func NewEnemy(pos geometry.Vec) *Entity {
	return &Entity{
		Kind:  KindEnemy,
		Shape: geometry.Diamond(pos.X, pos.Y),
	}
}

// NewGate creates a gate with an initial rotation and spin, both in degrees
func NewGate(pos geometry.Vec, rotation, spin float64, now time.Time) *Entity {
	return &Entity{
		Kind:      KindGate,
		Shape:     geometry.Triangle(pos.X, pos.Y, rotation),
		Spin:      spin,
		SpawnedAt: now,
	}
}

// NewPickup creates a multiplier pickup drifting with the given velocity
func NewPickup(pos, velocity geometry.Vec, now time.Time) *Entity {
	return &Entity{
		Kind:      KindPickup,
		Shape:     geometry.Square(pos.X, pos.Y),
		Velocity:  velocity,
		SpawnedAt: now,
	}
}

// normalizeKey maps raw key names onto the movement key set
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	if alias, ok := keyAliases[key]; ok {
		return alias
	}
	return key
}

// movementKey normalizes key and reports whether it is one of the four movement keys
func movementKey(key string) (string, bool) {
	key = normalizeKey(key)
	switch key {
	case KeyUp, KeyLeft, KeyDown, KeyRight:
		return key, true
	}
	return "", false
}
