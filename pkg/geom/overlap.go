// Package geom provides the exact polygon/rectangle overlap-area primitive
// used by the coverage rasterizer. The rectangle is an axis-aligned grid cell
// and the polygon is the instrument field-of-view footprint on a wavelength
// plane.
package geom

import "math"

// Point is a 2D tangent-plane coordinate pair.
type Point struct {
	X, Y float64
}

// OverlapArea returns the exact intersection area between an axis-aligned
// rectangle and a quadrilateral. The rectangle is given by its center
// (xcenter, ycenter) and side lengths (xsize, ysize); the quadrilateral by
// its four corners in perimeter order. Either winding is accepted.
//
// The quadrilateral is clipped against the four rectangle edges
// (Sutherland-Hodgman) and the area of the clipped polygon is returned.
// A result of 0 means the two shapes do not overlap.
func OverlapArea(xcenter, ycenter, xsize, ysize float64, corners [4]Point) float64 {
	xmin := xcenter - xsize/2
	xmax := xcenter + xsize/2
	ymin := ycenter - ysize/2
	ymax := ycenter + ysize/2

	poly := corners[:]
	poly = clipX(poly, xmin, true)
	poly = clipX(poly, xmax, false)
	poly = clipY(poly, ymin, true)
	poly = clipY(poly, ymax, false)

	return polygonArea(poly)
}

// clipX clips a polygon against the vertical line x = bound, keeping the side
// with x >= bound when keepAbove is true and x <= bound otherwise.
func clipX(poly []Point, bound float64, keepAbove bool) []Point {
	if len(poly) == 0 {
		return nil
	}
	inside := func(p Point) bool {
		if keepAbove {
			return p.X >= bound
		}
		return p.X <= bound
	}
	cross := func(a, b Point) Point {
		t := (bound - a.X) / (b.X - a.X)
		return Point{X: bound, Y: a.Y + t*(b.Y-a.Y)}
	}
	return clip(poly, inside, cross)
}

// clipY clips a polygon against the horizontal line y = bound, keeping the
// side with y >= bound when keepAbove is true and y <= bound otherwise.
func clipY(poly []Point, bound float64, keepAbove bool) []Point {
	if len(poly) == 0 {
		return nil
	}
	inside := func(p Point) bool {
		if keepAbove {
			return p.Y >= bound
		}
		return p.Y <= bound
	}
	cross := func(a, b Point) Point {
		t := (bound - a.Y) / (b.Y - a.Y)
		return Point{X: a.X + t*(b.X-a.X), Y: bound}
	}
	return clip(poly, inside, cross)
}

// clip runs one Sutherland-Hodgman pass against a single half-plane.
func clip(poly []Point, inside func(Point) bool, cross func(a, b Point) Point) []Point {
	out := make([]Point, 0, len(poly)+2)
	prev := poly[len(poly)-1]
	prevIn := inside(prev)
	for _, cur := range poly {
		curIn := inside(cur)
		if curIn {
			if !prevIn {
				out = append(out, cross(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, cross(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// polygonArea returns the area of a simple polygon via the shoelace formula.
// The absolute value makes the result independent of winding.
func polygonArea(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	sum := 0.0
	j := len(poly) - 1
	for i, p := range poly {
		q := poly[j]
		sum += (q.X + p.X) * (q.Y - p.Y)
		j = i
	}
	return math.Abs(sum) / 2
}
