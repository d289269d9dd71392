package game

import (
	"time"

	"boomgates/internal/collision"
	"boomgates/internal/geometry"
)

// NewGame creates a running game with the player centered
func NewGame(opts ...Option) *Game {
	g := &Game{nextID: 1}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		WithSeed(0)(g)
	}
	g.Reset()
	return g
}

// Reset restores the initial state: empty playfield, player recentered,
// score 0, multiplier 1, spawn count 1 and all flags cleared.
func (g *Game) Reset() {
	g.keys = make(map[string]struct{})
	g.player = NewPlayer()
	g.player.ID = g.allocID()
	g.entities = nil
	g.score = 0
	g.multiplier = 1
	g.explosions = nil
	g.status = StatusRunning
	g.spawnCount = 1
}

// Tick advances the simulation by one step. Nothing happens unless running.
func (g *Game) Tick(now time.Time) TickResult {
	var res TickResult
	if g.status != StatusRunning {
		return res
	}

	// Move the player first so everything else reacts to its new position
	g.player.Update(g.state())
	state := g.state()
	for _, e := range g.entities {
		e.Update(state)
	}

	// Gates swept by the player explode; an explosion makes this tick safe
	circle := g.playerCircle()
	gates := g.extract(func(e *Entity) bool {
		return e.Kind == KindGate && collision.EdgesCrossed(circle, e.Shape.Vertices())
	})

	if len(gates) > 0 {
		for _, gate := range gates {
			center := gate.Shape.Center()
			res.EnemiesDestroyed += g.boom(center, now)
			g.explosions = append(g.explosions, center)
			res.Explosions++
		}
	} else if cause := g.lethalHit(circle, now); cause != KillCauseNone {
		g.status = StatusOver
		res.GameOver = true
		res.Cause = cause
		return res
	}

	res.PickupsConsumed = g.consumePickups()
	res.PickupsExpired = g.cullPickups(now)
	return res
}

// KeyDown marks a movement key as held. Anything else is ignored.
func (g *Game) KeyDown(key string) {
	if k, ok := movementKey(key); ok {
		g.keys[k] = struct{}{}
	}
}

// KeyUp releases a key
func (g *Game) KeyUp(key string) {
	delete(g.keys, normalizeKey(key))
}

// TogglePause flips between running and paused. It has no effect once over.
func (g *Game) TogglePause() Status {
	switch g.status {
	case StatusRunning:
		g.status = StatusPaused
	case StatusPaused:
		g.status = StatusRunning
	}
	return g.status
}

// HandlePrimaryAction resets a finished game and otherwise toggles pause
func (g *Game) HandlePrimaryAction() Status {
	if g.status == StatusOver {
		g.Reset()
		return g.status
	}
	return g.TogglePause()
}

func (g *Game) Status() Status { return g.status }
func (g *Game) Score() uint64 { return g.score }
func (g *Game) Multiplier() uint64 { return g.multiplier }
func (g *Game) SpawnCount() int { return g.spawnCount }

// Player returns a copy of the player entity
func (g *Game) Player() Entity {
	return *g.player
}

// Count returns how many non-player entities of the given kind exist
func (g *Game) Count(kind EntityKind) int {
	n := 0
	for _, e := range g.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// AddEntity places a prebuilt enemy, gate or pickup on the playfield for a
// scripted layout and returns it with its assigned ID. The player cannot be added.
func (g *Game) AddEntity(e *Entity) *Entity {
	if e == nil || e.Kind == KindPlayer {
		return nil
	}
	return g.add(e)
}

// add inserts an entity into the population and assigns its ID
func (g *Game) add(e *Entity) *Entity {
	e.ID = g.allocID()
	g.entities = append(g.entities, e)
	return e
}

func (g *Game) allocID() uint32 {
	id := g.nextID
	g.nextID++
	return id
}

func (g *Game) state() GameState {
	return GameState{Keys: g.keys, Player: g.player.Shape.Pos}
}

func (g *Game) playerCircle() collision.Circle {
	return collision.Circle{Center: g.player.Shape.Pos, Radius: geometry.CircleRadius}
}

// extract removes every entity matching the predicate and returns them.
// Matching is decided for the whole population before anything is removed.
func (g *Game) extract(match func(*Entity) bool) []*Entity {
	marked := make([]bool, len(g.entities))
	n := 0
	for i, e := range g.entities {
		if match(e) {
			marked[i] = true
			n++
		}
	}
	if n == 0 {
		return nil
	}

	removed := make([]*Entity, 0, n)
	kept := g.entities[:0]
	for i, e := range g.entities {
		if marked[i] {
			removed = append(removed, e)
		} else {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(g.entities); i++ {
		g.entities[i] = nil
	}
	g.entities = kept
	return removed
}
