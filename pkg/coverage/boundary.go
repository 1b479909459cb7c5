package coverage

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"cubedq/internal/models"
	"cubedq/pkg/geom"
)

// Boundary is the field-of-view quadrilateral reconstructed for one
// wavelength plane. Corners are ordered start-min, start-max, end-max,
// end-min so that consecutive corners share an edge of the footprint.
type Boundary struct {
	Corners [4]geom.Point
}

// findPlaneCorners reconstructs the FOV quadrilateral of wavelength plane w
// from the two extreme slices bounding the instrument channel.
//
// Every sample whose wavelength lies within roiw of the plane and whose slice
// is one of the two extremes contributes. The corners pair the extreme
// samples of the start slice with the corresponding extremes of the end
// slice. Because the orientation on the sky is unknown, the start-slice axis
// with the larger span decides whether coord1 or coord2 extremes are used.
//
// The second return value is false when either extreme slice contributed no
// sample, which is expected for edge wavelength planes and for empty planes
// between channels.
func findPlaneCorners(wavePlane float64, startSlice, endSlice int, roiw float64, pc *models.PointCloud) (Boundary, bool) {
	var startIdx, endIdx []int
	var startC1, startC2 []float64
	var endC1, endC2 []float64

	for i := 0; i < pc.Len(); i++ {
		if math.Abs(wavePlane-pc.Wave[i]) >= roiw {
			continue
		}
		// A channel's extreme slices are normally distinct, but both
		// tests run so a shared slice feeds both corner sets.
		if pc.SliceNo[i] == startSlice {
			startIdx = append(startIdx, i)
			startC1 = append(startC1, pc.Coord1[i])
			startC2 = append(startC2, pc.Coord2[i])
		}
		if pc.SliceNo[i] == endSlice {
			endIdx = append(endIdx, i)
			endC1 = append(endC1, pc.Coord1[i])
			endC2 = append(endC2, pc.Coord2[i])
		}
	}

	if len(startIdx) == 0 || len(endIdx) == 0 {
		return Boundary{}, false
	}

	// Pick the corner coordinate by the longer start-slice span.
	spanC1 := floats.Max(startC1) - floats.Min(startC1)
	spanC2 := floats.Max(startC2) - floats.Min(startC2)

	var startMin, startMax, endMin, endMax int
	if spanC1 >= spanC2 {
		startMin = startIdx[floats.MinIdx(startC1)]
		startMax = startIdx[floats.MaxIdx(startC1)]
		endMin = endIdx[floats.MinIdx(endC1)]
		endMax = endIdx[floats.MaxIdx(endC1)]
	} else {
		startMin = startIdx[floats.MinIdx(startC2)]
		startMax = startIdx[floats.MaxIdx(startC2)]
		endMin = endIdx[floats.MinIdx(endC2)]
		endMax = endIdx[floats.MaxIdx(endC2)]
	}

	at := func(i int) geom.Point {
		return geom.Point{X: pc.Coord1[i], Y: pc.Coord2[i]}
	}
	return Boundary{
		Corners: [4]geom.Point{at(startMin), at(startMax), at(endMax), at(endMin)},
	}, true
}
