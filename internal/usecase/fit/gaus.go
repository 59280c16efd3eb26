// Package fit fits 1-D histograms with a Gaussian.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/aalvaropc/rootplot/internal/domain"
	hepfit "go-hep.org/x/hep/fit"
	"gonum.org/v1/gonum/optimize"
)

// WindowRMS is the half-width of the fit window in units of the RMS.
const WindowRMS = 1.2

// ErrTooFewPoints is returned when the window holds fewer bins than
// parameters.
var ErrTooFewPoints = errors.New("fit: too few points in window")

// Result holds the fitted Gaussian parameters.
type Result struct {
	Constant float64
	Mean     float64
	Sigma    float64
}

// Label renders the legend suffix for a fit result.
func (r Result) Label() string {
	return fmt.Sprintf("  [fit mean %3.1f - #sigma %3.1f ns]", r.Mean, r.Sigma)
}

func gaus(x float64, ps []float64) float64 {
	d := (x - ps[1]) / ps[2]
	return ps[0] * math.Exp(-0.5*d*d)
}

// Gaus fits h within mean ± WindowRMS·RMS by chi-square minimisation.
// Empty bins without errors are ignored.
func Gaus(h *domain.Hist1D) (Result, error) {
	mean, rms := h.Mean(), h.RMS()
	if rms <= 0 {
		return Result{}, fmt.Errorf("%w: histogram has no spread", ErrTooFewPoints)
	}
	lo, hi := mean-WindowRMS*rms, mean+WindowRMS*rms

	var xs, ys, errs []float64
	peak := 0.0
	for i := 0; i < h.Len(); i++ {
		x := h.Center(i)
		if x < lo || x > hi {
			continue
		}
		y, e := h.Contents[i], h.Errors[i]
		if y == 0 && e == 0 {
			continue
		}
		if e <= 0 {
			e = 1
		}
		xs = append(xs, x)
		ys = append(ys, y)
		errs = append(errs, e)
		peak = math.Max(peak, y)
	}
	if len(xs) < 3 {
		return Result{}, ErrTooFewPoints
	}

	res, err := hepfit.Curve1D(
		hepfit.Func1D{
			F:   gaus,
			X:   xs,
			Y:   ys,
			Err: errs,
			Ps:  []float64{peak, mean, rms},
		},
		nil, &optimize.NelderMead{},
	)
	if err != nil {
		return Result{}, fmt.Errorf("fit: %w", err)
	}
	if err := res.Status.Err(); err != nil {
		return Result{}, fmt.Errorf("fit: %w", err)
	}
	return Result{Constant: res.X[0], Mean: res.X[1], Sigma: math.Abs(res.X[2])}, nil
}
