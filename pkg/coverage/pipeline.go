// Package coverage computes the per-voxel data-quality (DQ) plane of a
// spectral cube assembled from scattered detector samples. Every voxel is
// flagged as unobserved, partially covered or fully covered by the
// instrument field of view at its wavelength plane, so downstream consumers
// can tell real signal from coverage holes.
//
// Two pipelines share one output contract. Corner-FOV instruments
// reconstruct a quadrilateral footprint per wavelength plane and rasterize
// it with exact polygon/cell overlap areas. Slicer instruments map each
// physical slice to a line on the sky and rasterize the lines directly.
// Both are expressed as PlaneMapper strategies driven by a single Builder.
package coverage

import (
	"fmt"

	"cubedq/internal/models"
)

// PlaneMapper computes the coverage of a single wavelength plane.
type PlaneMapper interface {
	// MapPlane rasterizes the instrument footprint of plane w into dst,
	// the per-plane scratch buffer indexed y*nx+x. It returns false when
	// no footprint could be located on the plane, in which case dst must
	// be left untouched and the plane keeps zero coverage.
	MapPlane(w int, dst []int) bool
}

// Builder runs a PlaneMapper over every wavelength plane of a cube and
// assembles the cube-sized DQ array.
type Builder struct {
	Geometry *models.CubeGeometry
}

// newDQBuffer allocates a zero-initialized DQ array of n flags.
func newDQBuffer(n int) []int {
	return make([]int, n)
}

// Build computes the DQ array for the whole cube. For each wavelength plane
// the scratch buffer is reset, the mapper rasterizes the plane, and the
// result is copied into the output at offset w*nx*ny. Planes where the
// mapper finds no footprint stay all-zero. The returned array has length
// nx*ny*nz and its ownership transfers to the caller.
//
// A plane without a footprint is expected and not an error; only an invalid
// cube geometry fails the build.
func (b *Builder) Build(mapper PlaneMapper) ([]int, error) {
	g := b.Geometry
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cube geometry: %w", err)
	}

	nxy := g.PlaneSize()
	dq := newDQBuffer(g.NumVoxels())
	scratch := newDQBuffer(nxy)

	for w := 0; w < g.Nz; w++ {
		for i := range scratch {
			scratch[i] = 0
		}
		if mapper.MapPlane(w, scratch) {
			copy(dq[w*nxy:(w+1)*nxy], scratch)
		}
	}
	return dq, nil
}

// FlatDQ returns an all-zero DQ array for the cube, bypassing coverage
// analysis entirely. This is the path for cube types with no sky projection,
// such as internal calibration cubes.
func FlatDQ(g *models.CubeGeometry) ([]int, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cube geometry: %w", err)
	}
	return newDQBuffer(g.NumVoxels()), nil
}

// CornerFOVMapper is the PlaneMapper for instruments whose channel footprint
// is bounded by two extreme slices. Per plane it reconstructs the FOV
// quadrilateral from those slices and rasterizes it with exact overlap
// areas, flagging spaxels partial or full by coverage fraction.
type CornerFOVMapper struct {
	// Points is the detector sample cloud shared across planes.
	Points *models.PointCloud

	// Geometry describes the output grid.
	Geometry *models.CubeGeometry

	// StartSlice and EndSlice are the 1-based extreme slice numbers
	// bounding the instrument channel.
	StartSlice, EndSlice int

	// ROIWave is the wavelength region-of-interest half-width used to
	// select samples belonging to a plane.
	ROIWave float64

	// Partial and Full are the DQ flag values to write.
	Partial, Full int
}

// MapPlane implements PlaneMapper.
func (m *CornerFOVMapper) MapPlane(w int, dst []int) bool {
	b, ok := findPlaneCorners(m.Geometry.Zc[w], m.StartSlice, m.EndSlice, m.ROIWave, m.Points)
	if !ok {
		return false
	}
	rasterizeFOV(b, m.Geometry, m.Partial, m.Full, dst)
	return true
}

// SlicerMapper is the PlaneMapper for slicer instruments whose per-slice
// footprint on the sky is a line. Per plane it computes the extent of each
// slice and rasterizes every matched slice as a line of partial coverage.
// Overlapping slices simply overwrite each other's flags.
type SlicerMapper struct {
	// Points is the detector sample cloud shared across planes.
	Points *models.PointCloud

	// Geometry describes the output grid.
	Geometry *models.CubeGeometry

	// NumSlices is the instrument's physical slice count, which sizes the
	// per-plane extent table.
	NumSlices int

	// ROIWave is the wavelength region-of-interest half-width used to
	// select samples belonging to a plane.
	ROIWave float64

	// Partial is the DQ flag value written along each slice line.
	Partial int
}

// MapPlane implements PlaneMapper.
func (m *SlicerMapper) MapPlane(w int, dst []int) bool {
	g := m.Geometry
	extents, matched := matchPlaneExtents(g.Zc[w], m.ROIWave, m.Points, m.NumSlices)
	if matched == 0 {
		return false
	}

	found := false
	for i := range extents {
		e := &extents[i]
		if !e.matched {
			continue
		}
		found = true
		rasterizeSlice(m.Partial, g.Cdelt1, g.Cdelt2, g.Nx, g.Ny,
			g.Xc[0], g.Yc[0],
			e.c1Min, e.c2Min, e.c1Max, e.c2Max, dst)
	}
	return found
}
