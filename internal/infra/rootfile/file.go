// Package rootfile reads histograms and graphs from ROOT files with groot.
package rootfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
)

// Archive is an open ROOT file.
type Archive struct {
	f    *groot.File
	path string
}

var _ ports.Archive = (*Archive)(nil)

func Open(path string) (*Archive, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, &domain.OpError{Op: "rootfile.open", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	return &Archive{f: f, path: path}, nil
}

func (a *Archive) Close() error { return a.f.Close() }

// Container resolves a slash-separated directory path; "" is the file root.
func (a *Archive) Container(path string) (ports.Container, error) {
	p := strings.Trim(path, "/")
	var dir riofs.Directory = a.f
	if p != "" {
		obj, err := riofs.Dir(a.f).Get(p)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "rootfile.container",
				Kind: domain.KindNotFound,
				Path: a.path + ":" + p,
				Err:  fmt.Errorf("%v: %w", err, domain.ErrNotFound),
			}
		}
		d, ok := obj.(riofs.Directory)
		if !ok {
			return nil, &domain.OpError{
				Op:   "rootfile.container",
				Kind: domain.KindNotFound,
				Path: a.path + ":" + p,
				Err:  fmt.Errorf("%q is a %s, not a directory: %w", p, obj.Class(), domain.ErrNotFound),
			}
		}
		dir = d
	}
	return &container{dir: dir, path: a.path}, nil
}

type container struct {
	dir  riofs.Directory
	path string
}

func (c *container) Keys() []domain.KeyInfo {
	keys := c.dir.Keys()
	out := make([]domain.KeyInfo, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.KeyInfo{Name: k.Name(), Class: k.ClassName(), Cycle: k.Cycle()})
	}
	return out
}

// Object reads one cycle of name and copies it into memory.
func (c *container) Object(name string, cycle int) (domain.Object, error) {
	key := name
	if cycle > 0 {
		key = fmt.Sprintf("%s;%d", name, cycle)
	}
	obj, err := c.dir.Get(key)
	if err != nil {
		return domain.Object{}, &domain.OpError{
			Op:   "rootfile.object",
			Kind: domain.KindNotFound,
			Path: c.path,
			Err:  fmt.Errorf("object %q: %v: %w", name, err, domain.ErrNotFound),
		}
	}

	out := domain.Object{Name: name, Class: obj.Class()}
	switch v := obj.(type) {
	case rhist.H2:
		out.H2 = fromH2D(rootcnv.H2D(v))
	case rhist.H1:
		out.H1 = fromH1D(rootcnv.H1D(v))
	case rhist.Graph:
		out.Graph = fromS2D(rootcnv.S2D(v))
	default:
		err := fmt.Errorf("object %q of class %s: %w", name, obj.Class(), domain.ErrUnsupported)
		if h := domain.SkipHint(obj.Class()); h != "" {
			err = fmt.Errorf("%w (%s)", err, h)
		}
		return domain.Object{}, &domain.OpError{
			Op:   "rootfile.object",
			Kind: domain.KindUnsupported,
			Path: c.path,
			Err:  err,
		}
	}
	return out, nil
}

func fromH1D(h *hbook.H1D) *domain.Hist1D {
	bins := h.Binning.Bins
	if len(bins) == 0 {
		return domain.NewHist1D(nil)
	}
	edges := make([]float64, 0, len(bins)+1)
	for i := range bins {
		edges = append(edges, bins[i].XMin())
	}
	edges = append(edges, bins[len(bins)-1].XMax())

	out := domain.NewHist1D(edges)
	for i := range bins {
		out.Contents[i] = bins[i].SumW()
		out.Errors[i] = bins[i].ErrW()
	}
	return out
}

func fromH2D(h *hbook.H2D) *domain.Hist2D {
	bins := h.Binning.Bins
	xset := map[float64]struct{}{}
	yset := map[float64]struct{}{}
	for i := range bins {
		xset[bins[i].XMin()] = struct{}{}
		xset[bins[i].XMax()] = struct{}{}
		yset[bins[i].YMin()] = struct{}{}
		yset[bins[i].YMax()] = struct{}{}
	}
	out := domain.NewHist2D(sortedKeys(xset), sortedKeys(yset))
	for i := range bins {
		ix := sort.SearchFloat64s(out.XEdges, bins[i].XMin())
		iy := sort.SearchFloat64s(out.YEdges, bins[i].YMin())
		if ix < out.Nx() && iy < out.Ny() {
			out.Set(ix, iy, bins[i].SumW())
		}
	}
	return out
}

func fromS2D(s *hbook.S2D) *domain.Graph {
	g := &domain.Graph{Points: make([]domain.Point, 0, s.Len())}
	for i := 0; i < s.Len(); i++ {
		p := s.Point(i)
		g.Points = append(g.Points, domain.Point{
			X: p.X, Y: p.Y,
			XLow: p.ErrX.Min, XHigh: p.ErrX.Max,
			YLow: p.ErrY.Min, YHigh: p.ErrY.Max,
		})
	}
	return g
}

func sortedKeys(m map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Float64s(out)
	return out
}
