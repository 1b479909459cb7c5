package coverage

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"cubedq/internal/models"
)

// PlaneCoverage reports the coverage of one wavelength plane of a DQ array.
type PlaneCoverage struct {
	// Plane is the wavelength plane index.
	Plane int

	// Partial and Full are the spaxel counts flagged with each value.
	Partial, Full int

	// Fraction is the fraction of spaxels with any coverage flag set.
	Fraction float64
}

// Summary aggregates the per-plane coverage of a DQ array. It is the
// reporting companion to the builders: a cube whose spatial extent was set
// too small shows up here as low covered fractions and holes.
type Summary struct {
	// Planes holds one entry per wavelength plane.
	Planes []PlaneCoverage

	// EmptyPlanes counts planes with no coverage at all.
	EmptyPlanes int

	// MeanFraction and MedianFraction summarize the per-plane covered
	// fractions across the cube.
	MeanFraction, MedianFraction float64
}

// Summarize computes per-plane and aggregate coverage statistics for a DQ
// array produced by a Builder. partial and full are the flag values the
// builder was configured with.
func Summarize(dq []int, g *models.CubeGeometry, partial, full int) (*Summary, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cube geometry: %w", err)
	}
	if len(dq) != g.NumVoxels() {
		return nil, fmt.Errorf("dq array length %d does not match cube size %d", len(dq), g.NumVoxels())
	}

	nxy := g.PlaneSize()
	s := &Summary{Planes: make([]PlaneCoverage, g.Nz)}
	fractions := make([]float64, g.Nz)

	for w := 0; w < g.Nz; w++ {
		pc := PlaneCoverage{Plane: w}
		covered := 0
		for _, v := range dq[w*nxy : (w+1)*nxy] {
			if v == models.OverlapNone {
				continue
			}
			covered++
			switch v {
			case partial:
				pc.Partial++
			case full:
				pc.Full++
			}
		}
		pc.Fraction = float64(covered) / float64(nxy)
		if covered == 0 {
			s.EmptyPlanes++
		}
		s.Planes[w] = pc
		fractions[w] = pc.Fraction
	}

	s.MeanFraction = stat.Mean(fractions, nil)
	sort.Float64s(fractions)
	s.MedianFraction = stat.Quantile(0.5, stat.Empirical, fractions, nil)
	return s, nil
}
