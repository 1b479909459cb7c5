package coverage

import (
	"cubedq/internal/models"
	"cubedq/pkg/geom"
)

// coverageTolerance is the minimum overlap fraction a spaxel needs with the
// FOV before it is flagged at all.
const coverageTolerance = 0.05

// fullCoverageFraction is the overlap fraction above which a spaxel counts as
// fully covered rather than partially covered.
const fullCoverageFraction = 0.95

// coverageFlag maps an overlap fraction to a DQ flag. The thresholds are
// exclusive: exactly 5% stays unflagged and exactly 95% stays partial.
func coverageFlag(fraction float64, partial, full int) int {
	if fraction <= coverageTolerance {
		return models.OverlapNone
	}
	if fraction > fullCoverageFraction {
		return full
	}
	return partial
}

// rasterizeFOV stamps the FOV quadrilateral of one wavelength plane onto the
// spatial grid. For every grid cell whose half-extent box lies strictly
// inside the quadrilateral's bounding box, the exact cell/polygon overlap
// area is computed and the cell's flag in dst is set from the coverage
// fraction. dst is the caller's per-plane scratch buffer indexed y*nx+x;
// cells outside the bounding box are left untouched.
func rasterizeFOV(b Boundary, g *models.CubeGeometry, partial, full int, dst []int) {
	ximin := b.Corners[0].X
	ximax := ximin
	etamin := b.Corners[0].Y
	etamax := etamin
	for _, c := range b.Corners[1:] {
		if c.X < ximin {
			ximin = c.X
		}
		if c.X > ximax {
			ximax = c.X
		}
		if c.Y < etamin {
			etamin = c.Y
		}
		if c.Y > etamax {
			etamax = c.Y
		}
	}

	cellArea := g.Cdelt1 * g.Cdelt2

	for ix := 0; ix < g.Nx; ix++ {
		x1 := g.Xc[ix] - g.Cdelt1/2
		x2 := g.Xc[ix] + g.Cdelt1/2
		if x1 <= ximin || x2 >= ximax {
			continue
		}
		for iy := 0; iy < g.Ny; iy++ {
			y1 := g.Yc[iy] - g.Cdelt2/2
			y2 := g.Yc[iy] + g.Cdelt2/2
			if y1 <= etamin || y2 >= etamax {
				continue
			}
			area := geom.OverlapArea(g.Xc[ix], g.Yc[iy], g.Cdelt1, g.Cdelt2, b.Corners)
			if flag := coverageFlag(area/cellArea, partial, full); flag != models.OverlapNone {
				dst[iy*g.Nx+ix] = flag
			}
		}
	}
}
