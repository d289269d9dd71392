package geometry

import "math"

// Vec is a 2D point or direction in playfield coordinates
type Vec struct {
	X float64 `msgpack:"x" json:"x"`
	Y float64 `msgpack:"y" json:"y"`
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec) LenSq() float64 { return v.Dot(v) }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return o.Sub(v).Len() }
func (v Vec) DistSq(o Vec) float64 { return o.Sub(v).LenSq() }
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector in v's direction.
// The zero vector has no direction and reports false.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if l == 0 {
		return Vec{}, false
	}
	return Vec{v.X / l, v.Y / l}, true
}

// Clamp restricts a value to be within [min, max]
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
