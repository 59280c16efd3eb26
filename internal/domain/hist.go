package domain

import "math"

// Hist1D is a binned 1-D distribution with per-bin errors.
// Edges has Len()+1 ascending entries.
type Hist1D struct {
	Edges    []float64
	Contents []float64
	Errors   []float64
}

// NewHist1D returns an empty histogram over edges.
func NewHist1D(edges []float64) *Hist1D {
	n := len(edges) - 1
	if n < 0 {
		n = 0
	}
	return &Hist1D{
		Edges:    append([]float64(nil), edges...),
		Contents: make([]float64, n),
		Errors:   make([]float64, n),
	}
}

// UniformEdges returns n+1 equally spaced edges over [lo, hi].
func UniformEdges(n int, lo, hi float64) []float64 {
	if n <= 0 {
		return nil
	}
	edges := make([]float64, n+1)
	w := (hi - lo) / float64(n)
	for i := range edges {
		edges[i] = lo + float64(i)*w
	}
	edges[n] = hi
	return edges
}

func (h *Hist1D) Len() int { return len(h.Contents) }

// Center is the midpoint of bin i.
func (h *Hist1D) Center(i int) float64 { return 0.5 * (h.Edges[i] + h.Edges[i+1]) }

// Width of bin i.
func (h *Hist1D) Width(i int) float64 { return h.Edges[i+1] - h.Edges[i] }

// Integral is the sum of bin contents.
func (h *Hist1D) Integral() float64 {
	var sum float64
	for _, c := range h.Contents {
		sum += c
	}
	return sum
}

// Scale multiplies contents by f and errors by |f|.
func (h *Hist1D) Scale(f float64) {
	for i := range h.Contents {
		h.Contents[i] *= f
		h.Errors[i] *= math.Abs(f)
	}
}

// Max is the largest bin content; 0 for an empty histogram.
func (h *Hist1D) Max() float64 {
	if len(h.Contents) == 0 {
		return 0
	}
	m := h.Contents[0]
	for _, c := range h.Contents[1:] {
		m = math.Max(m, c)
	}
	return m
}

// Mean is the content-weighted mean of bin centers.
func (h *Hist1D) Mean() float64 {
	var sw, swx float64
	for i, c := range h.Contents {
		sw += c
		swx += c * h.Center(i)
	}
	if sw == 0 {
		return 0
	}
	return swx / sw
}

// RMS is the content-weighted standard deviation of bin centers.
func (h *Hist1D) RMS() float64 {
	mean := h.Mean()
	var sw, swd float64
	for i, c := range h.Contents {
		d := h.Center(i) - mean
		sw += c
		swd += c * d * d
	}
	if sw <= 0 || swd <= 0 {
		return 0
	}
	return math.Sqrt(swd / sw)
}

// Clone returns a deep copy.
func (h *Hist1D) Clone() *Hist1D {
	if h == nil {
		return nil
	}
	return &Hist1D{
		Edges:    append([]float64(nil), h.Edges...),
		Contents: append([]float64(nil), h.Contents...),
		Errors:   append([]float64(nil), h.Errors...),
	}
}

// Hist2D is a binned 2-D distribution. Contents is row-major: iy*Nx()+ix.
type Hist2D struct {
	XEdges   []float64
	YEdges   []float64
	Contents []float64
}

// NewHist2D returns an empty histogram over the given edges.
func NewHist2D(xedges, yedges []float64) *Hist2D {
	nx, ny := len(xedges)-1, len(yedges)-1
	if nx < 0 || ny < 0 {
		nx, ny = 0, 0
	}
	return &Hist2D{
		XEdges:   append([]float64(nil), xedges...),
		YEdges:   append([]float64(nil), yedges...),
		Contents: make([]float64, nx*ny),
	}
}

func (h *Hist2D) Nx() int { return max(len(h.XEdges)-1, 0) }
func (h *Hist2D) Ny() int { return max(len(h.YEdges)-1, 0) }

func (h *Hist2D) At(ix, iy int) float64     { return h.Contents[iy*h.Nx()+ix] }
func (h *Hist2D) Set(ix, iy int, v float64) { h.Contents[iy*h.Nx()+ix] = v }

// XCenter is the midpoint of column ix.
func (h *Hist2D) XCenter(ix int) float64 { return 0.5 * (h.XEdges[ix] + h.XEdges[ix+1]) }

// YCenter is the midpoint of row iy.
func (h *Hist2D) YCenter(iy int) float64 { return 0.5 * (h.YEdges[iy] + h.YEdges[iy+1]) }

// Range returns the smallest and largest contents, ignoring NaN cells.
// ok is false when no cell holds a number.
func (h *Hist2D) Range() (lo, hi float64, ok bool) {
	for _, v := range h.Contents {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, ok
}

// Clone returns a deep copy.
func (h *Hist2D) Clone() *Hist2D {
	if h == nil {
		return nil
	}
	return &Hist2D{
		XEdges:   append([]float64(nil), h.XEdges...),
		YEdges:   append([]float64(nil), h.YEdges...),
		Contents: append([]float64(nil), h.Contents...),
	}
}

// Point is a graph point with asymmetric errors given as distances.
type Point struct {
	X, Y        float64
	XLow, XHigh float64
	YLow, YHigh float64
}

// Graph is an ordered list of points.
type Graph struct {
	Points []Point
}

func (g *Graph) Len() int { return len(g.Points) }

// Max is the largest y value; 0 for an empty graph.
func (g *Graph) Max() float64 {
	if len(g.Points) == 0 {
		return 0
	}
	m := g.Points[0].Y
	for _, p := range g.Points[1:] {
		m = math.Max(m, p.Y)
	}
	return m
}

// Clone returns a deep copy.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	return &Graph{Points: append([]Point(nil), g.Points...)}
}
