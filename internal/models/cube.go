package models

import (
	"fmt"
)

// DQ flag values for a voxel. A voxel with no instrumental coverage keeps
// OverlapNone. The partial and full values are distinct bits so that a later
// dithered-coverage pass can OR flags from several exposures together.
const (
	// OverlapNone marks a voxel with no detector coverage (a "hole").
	OverlapNone = 0

	// OverlapPartial marks a voxel partially covered by the instrument
	// field of view at its wavelength plane.
	OverlapPartial = 2

	// OverlapFull marks a voxel fully covered by the instrument field of
	// view at its wavelength plane.
	OverlapFull = 4
)

// PointCloud holds the scattered detector samples mapped onto the cube's
// tangent-plane coordinate system by the upstream coordinate-transform stage.
// The four columns are parallel: sample i is (Coord1[i], Coord2[i], Wave[i],
// SliceNo[i]). The cloud is immutable input and safe to share between
// pipelines.
type PointCloud struct {
	// Coord1 is the xi (axis 1) tangent-plane coordinate of each sample.
	Coord1 []float64

	// Coord2 is the eta (axis 2) tangent-plane coordinate of each sample.
	Coord2 []float64

	// Wave is the wavelength of each sample. Not required to be sorted.
	Wave []float64

	// SliceNo is the 1-based instrument slice each sample belongs to.
	SliceNo []int
}

// Len returns the number of samples in the cloud.
func (pc *PointCloud) Len() int {
	return len(pc.Coord1)
}

// Validate checks that the four columns are parallel and non-empty and that
// slice numbers are positive.
func (pc *PointCloud) Validate() error {
	n := len(pc.Coord1)
	if n == 0 {
		return fmt.Errorf("point cloud is empty")
	}
	if len(pc.Coord2) != n || len(pc.Wave) != n || len(pc.SliceNo) != n {
		return fmt.Errorf("point cloud columns have mismatched lengths: coord1=%d coord2=%d wave=%d sliceno=%d",
			len(pc.Coord1), len(pc.Coord2), len(pc.Wave), len(pc.SliceNo))
	}
	for i, s := range pc.SliceNo {
		if s < 1 {
			return fmt.Errorf("sample %d has non-positive slice number %d", i, s)
		}
	}
	return nil
}

// CubeGeometry describes the regular output grid of the spectral cube:
// two spatial axes (spaxels) and one wavelength axis. The center arrays give
// the coordinate of the middle of every grid cell along each axis, and
// Cdelt1/Cdelt2 are the uniform spatial sampling steps.
type CubeGeometry struct {
	// Nx, Ny, Nz are the axis sizes (spatial 1, spatial 2, wavelength).
	Nx, Ny, Nz int

	// Cdelt1, Cdelt2 are the spatial sampling steps along axes 1 and 2.
	Cdelt1, Cdelt2 float64

	// Xc, Yc, Zc are the cell center coordinates along each axis, with
	// lengths Nx, Ny and Nz respectively.
	Xc, Yc, Zc []float64
}

// NumVoxels returns the total number of voxels in the cube.
func (g *CubeGeometry) NumVoxels() int {
	return g.Nx * g.Ny * g.Nz
}

// PlaneSize returns the number of spaxels in one wavelength plane.
func (g *CubeGeometry) PlaneSize() int {
	return g.Nx * g.Ny
}

// VoxelIndex returns the flattened index of voxel (x, y, w) using the
// w*nx*ny + y*nx + x convention shared with the DQ output array.
func (g *CubeGeometry) VoxelIndex(x, y, w int) int {
	return w*g.Nx*g.Ny + y*g.Nx + x
}

// Validate checks axis sizes, sampling steps and center array lengths.
func (g *CubeGeometry) Validate() error {
	if g.Nx <= 0 || g.Ny <= 0 || g.Nz <= 0 {
		return fmt.Errorf("invalid cube dimensions %dx%dx%d", g.Nx, g.Ny, g.Nz)
	}
	if g.Cdelt1 <= 0 || g.Cdelt2 <= 0 {
		return fmt.Errorf("invalid spatial sampling cdelt1=%g cdelt2=%g", g.Cdelt1, g.Cdelt2)
	}
	if len(g.Xc) != g.Nx || len(g.Yc) != g.Ny || len(g.Zc) != g.Nz {
		return fmt.Errorf("center array lengths (%d, %d, %d) do not match cube dimensions (%d, %d, %d)",
			len(g.Xc), len(g.Yc), len(g.Zc), g.Nx, g.Ny, g.Nz)
	}
	return nil
}
