package collision

import (
	"testing"

	"boomgates/internal/geometry"
)

const eps = 0.01

func TestEdgesCrossedPerpendicularApproach(t *testing.T) {
	r := geometry.CircleRadius
	edge := []geometry.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}}

	outside := Circle{Center: geometry.Vec{X: 50, Y: -(r + eps)}, Radius: r}
	if EdgesCrossed(outside, edge) {
		t.Fatalf("circle at distance r+eps should not cross the edge")
	}

	// Step straight toward the edge until the center is past it
	c := outside
	crossed := false
	for i := 0; i < 40; i++ {
		c.Center.Y += 1
		if EdgesCrossed(c, edge) {
			crossed = true
			break
		}
	}
	if !crossed {
		t.Fatalf("expected crossing while stepping across the edge, last center=%v", c.Center)
	}
}

func TestEdgesCrossedParallelMotionNeverCrosses(t *testing.T) {
	r := geometry.CircleRadius
	edge := []geometry.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}}

	for x := -50.0; x <= 150; x += 0.5 {
		c := Circle{Center: geometry.Vec{X: x, Y: r + eps}, Radius: r}
		if EdgesCrossed(c, edge) {
			t.Fatalf("parallel pass at distance r+eps crossed at x=%f", x)
		}
	}
}

func TestEdgesCrossedIgnoresHitsBeyondSegment(t *testing.T) {
	edge := []geometry.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}}
	// Closest point on the infinite line is at x=110, past the end
	c := Circle{Center: geometry.Vec{X: 110, Y: 1}, Radius: 15}
	if EdgesCrossed(c, edge) {
		t.Fatalf("expected no crossing when the closest point lies outside the segment")
	}
}

func TestEdgesCrossedTangentDoesNotCount(t *testing.T) {
	edge := []geometry.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}}
	c := Circle{Center: geometry.Vec{X: 50, Y: 10}, Radius: 10}
	if EdgesCrossed(c, edge) {
		t.Fatalf("tangent contact should not count as a crossing")
	}
}

func TestEdgesCrossedWrapsLastToFirst(t *testing.T) {
	// Only the closing edge (0,100)->(0,0) is near the circle
	poly := []geometry.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	c := Circle{Center: geometry.Vec{X: -5, Y: 50}, Radius: 10}
	if !EdgesCrossed(c, poly) {
		t.Fatalf("expected crossing on the closing edge")
	}
}

func TestEdgesCrossedCircleInsidePolygon(t *testing.T) {
	tri := geometry.Triangle(600, 400, 0)
	c := Circle{Center: geometry.Vec{X: 600, Y: 400}, Radius: geometry.CircleRadius}
	if EdgesCrossed(c, tri.Vertices()) {
		t.Fatalf("circle fully inside the triangle should not cross an edge")
	}
}

func TestEdgesCrossedDegenerateInput(t *testing.T) {
	c := Circle{Center: geometry.Vec{}, Radius: 10}
	if EdgesCrossed(c, nil) {
		t.Fatalf("nil vertices crossed")
	}
	if EdgesCrossed(c, []geometry.Vec{{X: 1, Y: 1}}) {
		t.Fatalf("single vertex crossed")
	}
	if EdgesCrossed(c, []geometry.Vec{{X: 1, Y: 1}, {X: 1, Y: 1}}) {
		t.Fatalf("zero-length edge crossed")
	}
}

func TestCornerTouched(t *testing.T) {
	r := geometry.CircleRadius
	c := Circle{Center: geometry.Vec{X: 100, Y: 100}, Radius: r}

	inside := []geometry.Vec{{X: 100 + r - eps, Y: 100}}
	if !CornerTouched(c, inside) {
		t.Fatalf("vertex at radius-eps should touch")
	}

	outside := []geometry.Vec{{X: 100, Y: 100 + r + eps}}
	if CornerTouched(c, outside) {
		t.Fatalf("vertex at radius+eps should not touch")
	}

	if CornerTouched(c, nil) {
		t.Fatalf("no vertices should never touch")
	}
}
