package geom

import (
	"math"
	"testing"
)

// unitSquare returns the corners of an axis-aligned square with the given
// lower-left corner and side length.
func unitSquare(x, y, side float64) [4]Point {
	return [4]Point{
		{x, y},
		{x + side, y},
		{x + side, y + side},
		{x, y + side},
	}
}

// TestOverlapAreaContainment verifies the two full-containment cases:
// rectangle inside polygon and polygon inside rectangle.
func TestOverlapAreaContainment(t *testing.T) {
	// Cell fully inside a large quad: area equals the cell area
	quad := unitSquare(-10, -10, 20)
	area := OverlapArea(0.5, 0.5, 1, 1, quad)
	if math.Abs(area-1.0) > 1e-12 {
		t.Errorf("Expected cell area 1.0 for contained cell, got %g", area)
	}

	// Quad fully inside a large cell: area equals the quad area
	quad = unitSquare(0, 0, 2)
	area = OverlapArea(1, 1, 100, 100, quad)
	if math.Abs(area-4.0) > 1e-12 {
		t.Errorf("Expected quad area 4.0 for contained quad, got %g", area)
	}
}

// TestOverlapAreaPartial verifies exact partial overlap areas
func TestOverlapAreaPartial(t *testing.T) {
	tests := []struct {
		name           string
		xc, yc, xs, ys float64
		quad           [4]Point
		want           float64
	}{
		{
			name: "HalfOverlap",
			// Cell [0.5,1.5]x[0,1] against quad [0,1]^2
			xc: 1.0, yc: 0.5, xs: 1, ys: 1,
			quad: unitSquare(0, 0, 1),
			want: 0.5,
		},
		{
			name: "QuarterOverlap",
			// Cell [1,2]x[1,2] against quad [0,1.5]^2
			xc: 1.5, yc: 1.5, xs: 1, ys: 1,
			quad: unitSquare(0, 0, 1.5),
			want: 0.25,
		},
		{
			name: "DiamondInCell",
			// Diamond with vertices on the cell edge midpoints covers
			// half the cell
			xc: 0.5, yc: 0.5, xs: 1, ys: 1,
			quad: [4]Point{{0.5, 0}, {1, 0.5}, {0.5, 1}, {0, 0.5}},
			want: 0.5,
		},
		{
			name: "NoOverlap",
			xc:   10, yc: 10, xs: 1, ys: 1,
			quad: unitSquare(0, 0, 1),
			want: 0,
		},
		{
			name: "TouchingEdge",
			// Cell [1,2]x[0,1] shares only an edge with quad [0,1]^2
			xc: 1.5, yc: 0.5, xs: 1, ys: 1,
			quad: unitSquare(0, 0, 1),
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			area := OverlapArea(tc.xc, tc.yc, tc.xs, tc.ys, tc.quad)
			if math.Abs(area-tc.want) > 1e-12 {
				t.Errorf("Expected overlap area %g, got %g", tc.want, area)
			}
		})
	}
}

// TestOverlapAreaWindingIndependent verifies that reversing the corner order
// does not change the result
func TestOverlapAreaWindingIndependent(t *testing.T) {
	quad := [4]Point{{0, 0}, {2, 0.5}, {2.5, 2}, {0.5, 1.5}}
	reversed := [4]Point{quad[3], quad[2], quad[1], quad[0]}

	a1 := OverlapArea(1, 1, 1.5, 1.5, quad)
	a2 := OverlapArea(1, 1, 1.5, 1.5, reversed)
	if math.Abs(a1-a2) > 1e-12 {
		t.Errorf("Winding changed the overlap area: %g vs %g", a1, a2)
	}
	if a1 <= 0 {
		t.Errorf("Expected positive overlap area, got %g", a1)
	}
}

// TestOverlapAreaSlantedEdge verifies the area of a cell cut by a slanted
// polygon edge against a hand computed value
func TestOverlapAreaSlantedEdge(t *testing.T) {
	// Right triangle-ish quad: the edge from (0,0) to (2,2) cuts the
	// cell [0,1]^2 in half; the rest of the quad covers the right side.
	quad := [4]Point{{0, 0}, {2, 2}, {4, 2}, {4, 0}}
	area := OverlapArea(0.5, 0.5, 1, 1, quad)
	if math.Abs(area-0.5) > 1e-12 {
		t.Errorf("Expected half the cell under the diagonal edge, got %g", area)
	}
}
