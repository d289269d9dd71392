package game

import "boomgates/internal/geometry"

// ShapeDescriptor is the wire form of a visible shape. Rotation is nil for
// everything but triangles, so a triangle at 0 degrees still carries it.
type ShapeDescriptor struct {
	Kind     string   `msgpack:"kind" json:"kind"`
	X        float64  `msgpack:"x" json:"x"`
	Y        float64  `msgpack:"y" json:"y"`
	Rotation *float64 `msgpack:"rotation,omitempty" json:"rotation,omitempty"`
}

// Snapshot is a read-only view of the game after a tick
type Snapshot struct {
	Entities   []ShapeDescriptor `msgpack:"entities" json:"entities"`
	Score      uint64            `msgpack:"score" json:"score"`
	Multiplier uint64            `msgpack:"multiplier" json:"multiplier"`
	GameOver   bool              `msgpack:"gameOver" json:"gameOver"`
	Paused     bool              `msgpack:"paused" json:"paused"`
	Explosions []ShapeDescriptor `msgpack:"explosions" json:"explosions"`
}

// GameConstants is the static layout surface read once by the presentation layer
type GameConstants struct {
	WindowWidth     float64 `msgpack:"window_width" json:"window_width"`
	WindowHeight    float64 `msgpack:"window_height" json:"window_height"`
	CircleRadius    float64 `msgpack:"circle_radius" json:"circle_radius"`
	DiamondRadius   float64 `msgpack:"diamond_radius" json:"diamond_radius"`
	TriangleRadius  float64 `msgpack:"triangle_radius" json:"triangle_radius"`
	SquareRadius    float64 `msgpack:"square_radius" json:"square_radius"`
	ExplosionRadius float64 `msgpack:"explosion_radius" json:"explosion_radius"`
}

// Constants returns the playfield dimensions and shape radii
func Constants() GameConstants {
	return GameConstants{
		WindowWidth:     WindowWidth,
		WindowHeight:    WindowHeight,
		CircleRadius:    geometry.CircleRadius,
		DiamondRadius:   geometry.DiamondRadius,
		TriangleRadius:  geometry.TriangleRadius,
		SquareRadius:    geometry.SquareRadius,
		ExplosionRadius: ExplosionRadius,
	}
}

// Describe converts a shape to its wire form
func Describe(s geometry.Shape) ShapeDescriptor {
	d := ShapeDescriptor{
		Kind: s.Kind.String(),
		X:    s.Pos.X,
		Y:    s.Pos.Y,
	}
	if s.Kind == geometry.KindTriangle {
		rotation := s.Rotation
		d.Rotation = &rotation
	}
	return d
}

// Snapshot builds a view of every visible entity, player first. Pending
// explosions are included but left queued; see DrainExplosions.
func (g *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Entities:   make([]ShapeDescriptor, 0, len(g.entities)+1),
		Score:      g.score,
		Multiplier: g.multiplier,
		GameOver:   g.status == StatusOver,
		Paused:     g.status == StatusPaused,
		Explosions: make([]ShapeDescriptor, 0, len(g.explosions)),
	}

	snapshot.Entities = append(snapshot.Entities, Describe(g.player.Shape))
	for _, e := range g.entities {
		snapshot.Entities = append(snapshot.Entities, Describe(e.Shape))
	}

	for _, p := range g.explosions {
		snapshot.Explosions = append(snapshot.Explosions, Describe(geometry.Point(p.X, p.Y)))
	}

	return snapshot
}

// DrainExplosions returns the queued explosion locations and clears the queue
func (g *Game) DrainExplosions() []geometry.Vec {
	drained := g.explosions
	g.explosions = nil
	return drained
}
