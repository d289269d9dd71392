package collision

import "boomgates/internal/geometry"

// Circle is the test subject for both predicates
type Circle struct {
	Center geometry.Vec
	Radius float64
}

// EdgesCrossed reports whether the circle's boundary crosses any polygon edge.
// Edges run between consecutive vertices and wrap from the last back to the first.
//
// Each edge is the segment P(t) = V1 + t(V2 - V1). Substituting into the circle
// equation gives a t^2 + b t + c = 0; the edge counts as crossed when the
// discriminant is positive and the closest point -b/2a lies strictly inside
// (0, 1). Tangent contact and hits past the segment ends do not count.
func EdgesCrossed(c Circle, vertices []geometry.Vec) bool {
	if len(vertices) < 2 {
		return false
	}

	for i, v1 := range vertices {
		v2 := vertices[(i+1)%len(vertices)]

		edge := v2.Sub(v1)
		rel := v1.Sub(c.Center)

		a := edge.LenSq()
		if a == 0 {
			continue
		}
		b := 2 * edge.Dot(rel)
		cc := rel.LenSq() - c.Radius*c.Radius

		if b*b-4*a*cc <= 0 {
			continue
		}

		t := -b / (2 * a)
		if t > 0 && t < 1 {
			return true
		}
	}

	return false
}

// CornerTouched reports whether any vertex lies strictly inside the circle
func CornerTouched(c Circle, vertices []geometry.Vec) bool {
	r2 := c.Radius * c.Radius
	for _, v := range vertices {
		if v.DistSq(c.Center) < r2 {
			return true
		}
	}
	return false
}
