package coverage

import (
	"testing"

	"cubedq/internal/models"
)

// sample is one synthetic detector sample used to build test point clouds
type sample struct {
	c1, c2, wave float64
	slice        int
}

// testCloud builds a point cloud from synthetic samples
func testCloud(samples ...sample) *models.PointCloud {
	pc := &models.PointCloud{}
	for _, s := range samples {
		pc.Coord1 = append(pc.Coord1, s.c1)
		pc.Coord2 = append(pc.Coord2, s.c2)
		pc.Wave = append(pc.Wave, s.wave)
		pc.SliceNo = append(pc.SliceNo, s.slice)
	}
	return pc
}

// TestFindPlaneCorners verifies the basic corner reconstruction from two
// extreme slices
func TestFindPlaneCorners(t *testing.T) {
	// Start slice spans coord2 from -2 to 6, end slice sits at coord1=4.
	// The coord2 span (8) beats the coord1 span (0), so corners are
	// ordered by coord2.
	pc := testCloud(
		sample{0, -2, 5.0, 1},
		sample{0, 6, 5.0, 1},
		sample{4, -2, 5.0, 30},
		sample{4, 6, 5.0, 30},
		// Noise on other slices and wavelengths
		sample{100, 100, 5.0, 15},
		sample{-50, -50, 9.0, 1},
	)

	b, ok := findPlaneCorners(5.0, 1, 30, 0.1, pc)
	if !ok {
		t.Fatal("Expected boundary to be found")
	}

	want := [4][2]float64{{0, -2}, {0, 6}, {4, 6}, {4, -2}}
	for i, w := range want {
		if b.Corners[i].X != w[0] || b.Corners[i].Y != w[1] {
			t.Errorf("Corner %d: expected (%g, %g), got (%g, %g)",
				i+1, w[0], w[1], b.Corners[i].X, b.Corners[i].Y)
		}
	}
}

// TestFindPlaneCornersMissingSlice verifies that a plane missing one of the
// extreme slices reports no boundary
func TestFindPlaneCornersMissingSlice(t *testing.T) {
	pc := testCloud(
		sample{0, -2, 5.0, 1},
		sample{0, 6, 5.0, 1},
		// No end-slice samples on this wavelength
		sample{4, -2, 9.0, 30},
	)

	if _, ok := findPlaneCorners(5.0, 1, 30, 0.1, pc); ok {
		t.Error("Expected no boundary when the end slice has no samples on the plane")
	}

	// An empty plane has no samples at all
	if _, ok := findPlaneCorners(7.0, 1, 30, 0.1, pc); ok {
		t.Error("Expected no boundary on an empty plane")
	}
}

// TestFindPlaneCornersOrientation verifies that swapping the start and end
// slices, and reversing the point order, keeps the same long axis and only
// swaps which corners are start-side vs end-side
func TestFindPlaneCornersOrientation(t *testing.T) {
	samples := []sample{
		{0, -2, 5.0, 1},
		{0, 6, 5.0, 1},
		{4, -2, 5.0, 30},
		{4, 6, 5.0, 30},
	}
	pc := testCloud(samples...)

	// Reverse the point order within the cloud
	reversed := testCloud(samples[3], samples[2], samples[1], samples[0])

	base, ok := findPlaneCorners(5.0, 1, 30, 0.1, pc)
	if !ok {
		t.Fatal("Expected boundary for base orientation")
	}

	revOrder, ok := findPlaneCorners(5.0, 1, 30, 0.1, reversed)
	if !ok {
		t.Fatal("Expected boundary for reversed point order")
	}
	if revOrder != base {
		t.Errorf("Reversing point order changed the corners: %v vs %v", revOrder, base)
	}

	swapped, ok := findPlaneCorners(5.0, 30, 1, 0.1, pc)
	if !ok {
		t.Fatal("Expected boundary for swapped extreme slices")
	}

	// Swapping start and end exchanges corner1/corner4 and corner2/corner3
	pairs := [4]int{3, 2, 1, 0}
	for i, j := range pairs {
		if swapped.Corners[i] != base.Corners[j] {
			t.Errorf("Swapped corner %d: expected %v, got %v",
				i+1, base.Corners[j], swapped.Corners[i])
		}
	}
}

// TestFindPlaneCornersLongAxis verifies the orientation decision when the
// coord1 span dominates
func TestFindPlaneCornersLongAxis(t *testing.T) {
	// Start slice spans coord1 from -3 to 5 with a narrow coord2 spread
	pc := testCloud(
		sample{-3, 0.1, 5.0, 1},
		sample{5, 0.3, 5.0, 1},
		sample{-3, 4.0, 5.0, 30},
		sample{5, 4.2, 5.0, 30},
	)

	b, ok := findPlaneCorners(5.0, 1, 30, 0.1, pc)
	if !ok {
		t.Fatal("Expected boundary to be found")
	}

	// Corners ordered by coord1: start-min, start-max, end-max, end-min
	if b.Corners[0].X != -3 || b.Corners[1].X != 5 {
		t.Errorf("Expected start corners at coord1 -3 and 5, got %g and %g",
			b.Corners[0].X, b.Corners[1].X)
	}
	if b.Corners[2].X != 5 || b.Corners[3].X != -3 {
		t.Errorf("Expected end corners at coord1 5 and -3, got %g and %g",
			b.Corners[2].X, b.Corners[3].X)
	}
}
