package coverage

// rasterizeSlice marks the grid cells crossed by one slice footprint as
// partially covered. The slice footprint on the sky is effectively a line,
// so its extent corners are converted to integer grid indices relative to
// the grid origin (xstart, ystart) and walked with Bresenham's line
// algorithm: the dominant axis advances by unit steps while an error term
// decides when the secondary axis increments.
//
// dst is the caller's per-plane scratch buffer indexed y*nx+x. Steps landing
// outside the grid are skipped. This approximates the footprint as a
// single-cell-wide line and does not model sub-cell partial coverage.
func rasterizeSlice(partial int, cdelt1, cdelt2 float64, nx, ny int, xstart, ystart float64, c1Min, c2Min, c1Max, c2Max float64, dst []int) {
	x1 := int((c1Min - xstart) / cdelt1)
	y1 := int((c2Min - ystart) / cdelt2)
	x2 := int((c1Max - xstart) / cdelt1)
	y2 := int((c2Max - ystart) / cdelt2)

	dx := x2 - x1
	dy := y2 - y1

	// Walk along the dominant axis.
	steep := abs(dy) > abs(dx)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx = x2 - x1
	dy = y2 - y1

	errTerm := dx / 2
	ystep := -1
	if y1 < y2 {
		ystep = 1
	}

	y := y1
	for x := x1; x <= x2; x++ {
		xuse, yuse := x, y
		if steep {
			xuse, yuse = y, x
		}
		if xuse >= 0 && xuse < nx && yuse >= 0 && yuse < ny {
			dst[yuse*nx+xuse] = partial
		}
		errTerm -= abs(dy)
		if errTerm < 0 {
			y += ystep
			errTerm += dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
