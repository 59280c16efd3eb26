// Package paint turns stored objects into the points and cells that are
// actually drawn.
package paint

import (
	"fmt"
	"math"

	"github.com/aalvaropc/rootplot/internal/domain"
	"gonum.org/v1/gonum/stat/distuv"
)

// OneSigma is the central coverage of a ±1σ interval.
const OneSigma = 0.682689492137

// Prune thresholds for cleanEmptyBins.
const (
	FirstPruneThreshold = 0.05
	LaterPruneThreshold = 0.005
)

// PruneThreshold returns the cleanEmptyBins cut for the object at index i.
func PruneThreshold(i int) float64 {
	if i == 0 {
		return FirstPruneThreshold
	}
	return LaterPruneThreshold
}

// HistGraph returns one point per bin at the bin center, with half-width
// x errors and symmetric y errors.
func HistGraph(h *domain.Hist1D) *domain.Graph {
	g := &domain.Graph{Points: make([]domain.Point, 0, h.Len())}
	for i := 0; i < h.Len(); i++ {
		hw := 0.5 * h.Width(i)
		g.Points = append(g.Points, domain.Point{
			X: h.Center(i), Y: h.Contents[i],
			XLow: hw, XHigh: hw,
			YLow: h.Errors[i], YHigh: h.Errors[i],
		})
	}
	return g
}

// ClopperPearson returns the lower or upper bound of the exact binomial
// interval for passed out of total at confidence level cl.
func ClopperPearson(total, passed, cl float64, upper bool) float64 {
	alpha := (1 - cl) / 2
	if upper {
		if passed >= total {
			return 1
		}
		return distuv.Beta{Alpha: passed + 1, Beta: total - passed}.Quantile(1 - alpha)
	}
	if passed <= 0 {
		return 0
	}
	return distuv.Beta{Alpha: passed, Beta: total - passed + 1}.Quantile(alpha)
}

// EfficiencyGraph divides passed by total per bin with Clopper-Pearson
// errors. Bins without entries in total are left out.
func EfficiencyGraph(eff *domain.Efficiency) (*domain.Graph, error) {
	p, t := eff.Passed, eff.Total
	if p == nil || t == nil {
		return nil, fmt.Errorf("efficiency has no 1-D histograms: %w", domain.ErrInvalidConfig)
	}
	if p.Len() != t.Len() {
		return nil, fmt.Errorf("passed has %d bins, total has %d: %w", p.Len(), t.Len(), domain.ErrInvalidConfig)
	}

	g := &domain.Graph{}
	for i := 0; i < t.Len(); i++ {
		n, k := t.Contents[i], p.Contents[i]
		if n <= 0 {
			continue
		}
		if k < 0 || k > n {
			return nil, fmt.Errorf("bin %d: passed %v outside [0, %v]: %w", i, k, n, domain.ErrInvalidConfig)
		}
		y := k / n
		hw := 0.5 * t.Width(i)
		g.Points = append(g.Points, domain.Point{
			X: t.Center(i), Y: y,
			XLow: hw, XHigh: hw,
			YLow:  y - ClopperPearson(n, k, OneSigma, false),
			YHigh: ClopperPearson(n, k, OneSigma, true) - y,
		})
	}
	return g, nil
}

// EfficiencyMap divides passed by total per cell. Cells without entries
// in total are NaN and are not drawn.
func EfficiencyMap(eff *domain.Efficiency) (*domain.Hist2D, error) {
	p, t := eff.Passed2D, eff.Total2D
	if p == nil || t == nil {
		return nil, fmt.Errorf("efficiency has no 2-D histograms: %w", domain.ErrInvalidConfig)
	}
	if p.Nx() != t.Nx() || p.Ny() != t.Ny() {
		return nil, fmt.Errorf("passed is %dx%d, total is %dx%d: %w", p.Nx(), p.Ny(), t.Nx(), t.Ny(), domain.ErrInvalidConfig)
	}

	out := domain.NewHist2D(t.XEdges, t.YEdges)
	for i, n := range t.Contents {
		if n <= 0 {
			out.Contents[i] = math.NaN()
			continue
		}
		out.Contents[i] = p.Contents[i] / n
	}
	return out, nil
}

// Prune returns a copy of g without the points whose y is below threshold.
func Prune(g *domain.Graph, threshold float64) *domain.Graph {
	out := &domain.Graph{Points: make([]domain.Point, 0, g.Len())}
	for _, p := range g.Points {
		if p.Y < threshold {
			continue
		}
		out.Points = append(out.Points, p)
	}
	return out
}
