package game

import (
	"math"

	"boomgates/internal/geometry"
)

// Update advances the entity by one tick
func (e *Entity) Update(state GameState) {
	switch e.Kind {
	case KindPlayer:
		e.updatePlayer(state)
	case KindEnemy:
		e.updateEnemy(state)
	case KindGate:
		e.updateGate()
	case KindPickup:
		e.updatePickup(state)
	}
}

// updatePlayer moves the player from the held movement keys
func (e *Entity) updatePlayer(state GameState) {
	var dx, dy float64

	if state.Pressed(KeyUp) {
		dy -= PlayerSpeed
	}
	if state.Pressed(KeyLeft) {
		dx -= PlayerSpeed
	}
	if state.Pressed(KeyDown) {
		dy += PlayerSpeed
	}
	if state.Pressed(KeyRight) {
		dx += PlayerSpeed
	}

	// Scale speed for diagonal movement
	scale := 1.0
	if dx != 0 && dy != 0 {
		scale = math.Sqrt2 / 2
	}

	r := geometry.CircleRadius
	pos := &e.Shape.Pos
	pos.X = geometry.Clamp(pos.X+dx*scale, r, WindowWidth-r)
	pos.Y = geometry.Clamp(pos.Y+dy*scale, r, WindowHeight-r)
}

// updateEnemy homes in on the player, stopping once within one step
func (e *Entity) updateEnemy(state GameState) {
	toward := state.Player.Sub(e.Shape.Pos)
	distance := toward.Len()
	if distance > EnemySpeed {
		e.Shape.Pos = e.Shape.Pos.Add(toward.Scale(EnemySpeed / distance))
	}
}

func (e *Entity) updateGate() {
	e.Shape.Rotation = math.Mod(e.Shape.Rotation+e.Spin, 360)
}

// updatePickup drifts with decaying velocity and is pulled toward a nearby player
func (e *Entity) updatePickup(state GameState) {
	if !e.Velocity.IsZero() {
		e.Shape.Pos = e.Shape.Pos.Add(e.Velocity)
		e.Velocity = e.Velocity.Scale(VelocityDecay)
		if e.Velocity.LenSq() < 1e-6 {
			e.Velocity = geometry.Vec{}
		}
	}

	toward := state.Player.Sub(e.Shape.Pos)
	if toward.Len() >= PickupAttractMin {
		return
	}
	if dir, ok := toward.Normalize(); ok {
		e.Shape.Pos = e.Shape.Pos.Add(dir.Scale(PickupSpeed))
	}
}
