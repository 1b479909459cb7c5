package coverage

import (
	"math"

	"cubedq/internal/models"
)

// sliceExtent tracks the sky bounding box of one instrument slice on a
// wavelength plane. A slice is matched only when both coordinate axes show a
// non-degenerate range; a slice with a single sample, or with all samples
// collinear along one axis, would rasterize to a point or duplicate line and
// is excluded.
type sliceExtent struct {
	c1Min, c2Min float64
	c1Max, c2Max float64
	matched      bool
}

// matchPlaneExtents scans the point cloud and computes, for each of the
// instrument's numSlices slices, the min/max tangent-plane coordinates of the
// samples falling within roiw of wavePlane. The extent table is recomputed
// from scratch for every plane. The second return value is the number of
// samples inside the wavelength region of interest, which the caller uses to
// short-circuit an empty plane.
//
// Samples with slice numbers outside 1..numSlices still count toward the
// returned total but are never truncated into the extent table.
func matchPlaneExtents(wavePlane, roiw float64, pc *models.PointCloud, numSlices int) ([]sliceExtent, int) {
	extents := make([]sliceExtent, numSlices)
	for i := range extents {
		extents[i] = sliceExtent{
			c1Min: math.Inf(1),
			c2Min: math.Inf(1),
			c1Max: math.Inf(-1),
			c2Max: math.Inf(-1),
		}
	}

	matched := 0
	for i := 0; i < pc.Len(); i++ {
		if math.Abs(wavePlane-pc.Wave[i]) >= roiw {
			continue
		}
		matched++
		islice := pc.SliceNo[i] - 1
		if islice < 0 || islice >= numSlices {
			continue
		}
		e := &extents[islice]
		c1 := pc.Coord1[i]
		c2 := pc.Coord2[i]
		if c1 < e.c1Min {
			e.c1Min = c1
		}
		if c1 > e.c1Max {
			e.c1Max = c1
		}
		if c2 < e.c2Min {
			e.c2Min = c2
		}
		if c2 > e.c2Max {
			e.c2Max = c2
		}
	}

	if matched > 0 {
		for i := range extents {
			e := &extents[i]
			e.matched = e.c1Min < e.c1Max && e.c2Min < e.c2Max
		}
	}
	return extents, matched
}
