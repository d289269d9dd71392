// Package geometry holds the playfield shapes and their vertex layouts.
package geometry

import "math"

// Shape radii. Each polygon's vertices sit on a circle of this radius.
const (
	CircleRadius   = 15.0
	DiamondRadius  = 25.0
	TriangleRadius = 75.0
	SquareRadius   = 5.0
)

// Kind identifies the shape variant
type Kind uint8

const (
	KindTriangle Kind = iota
	KindCircle
	KindDiamond
	KindSquare
	KindPoint
)

// String returns the wire tag for the kind
func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindCircle:
		return "circle"
	case KindDiamond:
		return "diamond"
	case KindSquare:
		return "square"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Shape is a positioned shape. Rotation is in degrees and only used by triangles.
type Shape struct {
	Kind     Kind
	Pos      Vec
	Rotation float64
}

func Triangle(x, y, rotation float64) Shape {
	return Shape{Kind: KindTriangle, Pos: Vec{x, y}, Rotation: rotation}
}

func Circle(x, y float64) Shape { return Shape{Kind: KindCircle, Pos: Vec{x, y}} }
func Diamond(x, y float64) Shape { return Shape{Kind: KindDiamond, Pos: Vec{x, y}} }
func Square(x, y float64) Shape { return Shape{Kind: KindSquare, Pos: Vec{x, y}} }
func Point(x, y float64) Shape { return Shape{Kind: KindPoint, Pos: Vec{x, y}} }

// Center returns the shape's center coordinate
func (s Shape) Center() Vec {
	return s.Pos
}

// Radius returns the fixed radius for the shape's kind. Points have none.
func (s Shape) Radius() float64 {
	switch s.Kind {
	case KindTriangle:
		return TriangleRadius
	case KindCircle:
		return CircleRadius
	case KindDiamond:
		return DiamondRadius
	case KindSquare:
		return SquareRadius
	default:
		return 0
	}
}

// Vertices returns the polygon vertices in winding order.
// Circles and points have no vertices.
func (s Shape) Vertices() []Vec {
	x, y := s.Pos.X, s.Pos.Y

	switch s.Kind {
	case KindTriangle:
		rot := s.Rotation * math.Pi / 180
		vertices := make([]Vec, 0, 3)
		for i := 0; i < 3; i++ {
			angle := rot + 2*math.Pi/3*float64(i)
			vertices = append(vertices, Vec{
				X: x + TriangleRadius*math.Cos(angle),
				Y: y + TriangleRadius*math.Sin(angle),
			})
		}
		return vertices

	case KindDiamond:
		return []Vec{
			{x, y - DiamondRadius},
			{x + DiamondRadius, y},
			{x, y + DiamondRadius},
			{x - DiamondRadius, y},
		}

	case KindSquare:
		// Half side so the circumscribing radius equals SquareRadius
		h := SquareRadius / math.Sqrt2
		return []Vec{
			{x - h, y - h},
			{x + h, y - h},
			{x + h, y + h},
			{x - h, y + h},
		}

	default:
		return nil
	}
}
