package fit

import (
	"errors"
	"math"
	"testing"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/stretchr/testify/require"
)

func gaussianHist(mean, sigma, norm float64) *domain.Hist1D {
	h := domain.NewHist1D(domain.UniformEdges(80, -20, 20))
	for i := 0; i < h.Len(); i++ {
		d := (h.Center(i) - mean) / sigma
		h.Contents[i] = norm * math.Exp(-0.5*d*d)
		h.Errors[i] = math.Max(math.Sqrt(h.Contents[i]), 1)
	}
	return h
}

func TestGausRecoversParameters(t *testing.T) {
	res, err := Gaus(gaussianHist(2.5, 3, 400))
	require.NoError(t, err)
	require.InDelta(t, 2.5, res.Mean, 0.05)
	require.InDelta(t, 3.0, res.Sigma, 0.1)
	require.InDelta(t, 400, res.Constant, 5)
}

func TestGausNeedsPoints(t *testing.T) {
	h := domain.NewHist1D(domain.UniformEdges(4, 0, 4))
	h.Contents[1] = 10
	_, err := Gaus(h)
	require.True(t, errors.Is(err, ErrTooFewPoints), "got %v", err)
}

func TestLabel(t *testing.T) {
	got := Result{Mean: 1.24, Sigma: 3.06}.Label()
	require.Equal(t, "  [fit mean 1.2 - #sigma 3.1 ns]", got)
}
