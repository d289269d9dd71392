package game

import (
	"time"

	"boomgates/internal/collision"
	"boomgates/internal/geometry"
)

// boom detonates an explosion at center. Every enemy inside the blast is
// destroyed, scores the current multiplier and leaves a pickup behind that is
// flung away from the center. Returns the number of enemies destroyed.
func (g *Game) boom(center geometry.Vec, now time.Time) int {
	r2 := ExplosionRadius * ExplosionRadius
	enemies := g.extract(func(e *Entity) bool {
		return e.Kind == KindEnemy && e.Shape.Pos.DistSq(center) < r2
	})

	for _, enemy := range enemies {
		g.score += g.multiplier

		pos := enemy.Shape.Center()
		offset := pos.Sub(center)

		// An enemy sitting exactly on the center gets no push
		var velocity geometry.Vec
		if dir, ok := offset.Normalize(); ok {
			velocity = dir.Scale(BoomStrength / (offset.Len() + BoomEpsilon))
		}

		g.add(NewPickup(pos, velocity, now))
	}

	return len(enemies)
}

// lethalHit checks whether a gate corner past its grace period or an enemy edge
// touches the player
func (g *Game) lethalHit(circle collision.Circle, now time.Time) KillCause {
	for _, e := range g.entities {
		switch e.Kind {
		case KindGate:
			if now.Sub(e.SpawnedAt) <= GateGracePeriod {
				continue
			}
			if collision.CornerTouched(circle, e.Shape.Vertices()) {
				return KillCauseGateCorner
			}
		case KindEnemy:
			if collision.EdgesCrossed(circle, e.Shape.Vertices()) {
				return KillCauseEnemy
			}
		}
	}
	return KillCauseNone
}

// consumePickups removes pickups touching the player and bumps the multiplier for each
func (g *Game) consumePickups() int {
	player := g.player.Shape.Pos
	reach2 := pickupReach * pickupReach
	consumed := g.extract(func(e *Entity) bool {
		return e.Kind == KindPickup && e.Shape.Pos.DistSq(player) < reach2
	})

	g.multiplier += uint64(len(consumed))
	return len(consumed)
}

// cullPickups removes pickups that outlived their lifetime
func (g *Game) cullPickups(now time.Time) int {
	expired := g.extract(func(e *Entity) bool {
		return e.Kind == KindPickup && now.Sub(e.SpawnedAt) > PickupLifetime
	})
	return len(expired)
}

// SpawnEnemyWave drops a batch of enemies into one randomly chosen corner
// region. Each wave is one enemy larger than the last. Returns the batch size.
func (g *Game) SpawnEnemyWave() int {
	if g.status != StatusRunning {
		return 0
	}

	xMin, xMax, yMin, yMax := 0.0, EnemyBuffer, 0.0, EnemyBuffer
	switch g.rng.Intn(4) {
	case 1:
		xMin, xMax = WindowWidth-EnemyBuffer, WindowWidth
	case 2:
		xMin, xMax = WindowWidth-EnemyBuffer, WindowWidth
		yMin, yMax = WindowHeight-EnemyBuffer, WindowHeight
	case 3:
		yMin, yMax = WindowHeight-EnemyBuffer, WindowHeight
	}

	count := g.spawnCount
	for i := 0; i < count; i++ {
		g.add(NewEnemy(geometry.Vec{
			X: g.uniform(xMin, xMax),
			Y: g.uniform(yMin, yMax),
		}))
	}

	g.spawnCount++
	return count
}

// SpawnGate places one gate somewhere inside the playfield with a random
// rotation and spin
func (g *Game) SpawnGate(now time.Time) *Entity {
	if g.status != StatusRunning {
		return nil
	}

	pos := geometry.Vec{
		X: g.uniform(GateBuffer, WindowWidth-GateBuffer),
		Y: g.uniform(GateBuffer, WindowHeight-GateBuffer),
	}
	rotation := g.uniform(0, 360)
	spin := g.uniform(-GateMaxSpin, GateMaxSpin)

	gate := g.add(NewGate(pos, rotation, spin, now))
	copied := *gate
	return &copied
}

func (g *Game) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
