// Package objcodec decodes the text payload shared by the YAML and SQLite
// archives into domain objects.
package objcodec

import (
	"fmt"
	"math"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
	"gopkg.in/yaml.v3"
)

// Axis is a binning: either uniform (bins, min, max) or explicit edges.
type Axis struct {
	Bins  int       `yaml:"bins" json:"bins,omitempty"`
	Min   float64   `yaml:"min" json:"min,omitempty"`
	Max   float64   `yaml:"max" json:"max,omitempty"`
	Edges []float64 `yaml:"edges" json:"edges,omitempty"`
}

// Payload is the serialized form of one object.
//
// 1-D histograms and profiles use x, contents and errors; 2-D histograms
// add y and store contents row by row. Efficiencies use passed and total.
// Graphs use points, each [x, y], [x, y, ex, ey] or
// [x, y, exlow, exhigh, eylow, eyhigh].
type Payload struct {
	Class    string      `yaml:"class" json:"class"`
	Title    string      `yaml:"title" json:"title,omitempty"`
	X        *Axis       `yaml:"x" json:"x,omitempty"`
	Y        *Axis       `yaml:"y" json:"y,omitempty"`
	Contents []float64   `yaml:"contents" json:"contents,omitempty"`
	Errors   []float64   `yaml:"errors" json:"errors,omitempty"`
	Passed   []float64   `yaml:"passed" json:"passed,omitempty"`
	Total    []float64   `yaml:"total" json:"total,omitempty"`
	Points   [][]float64 `yaml:"points" json:"points,omitempty"`
}

// Parse reads a YAML or JSON payload.
func Parse(b []byte) (Payload, error) {
	var p Payload
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Payload{}, err
	}
	return p, nil
}

// Decode converts a payload into an object named name.
func Decode(name string, p Payload) (domain.Object, error) {
	obj := domain.Object{Name: name, Class: p.Class, Title: p.Title}
	class := strings.TrimSpace(p.Class)

	switch {
	case class == "":
		return obj, decodeErr(name, "class is required")

	case class == domain.ClassEfficiency:
		if p.Y != nil {
			passed, err := hist2D(name, p.X, p.Y, p.Passed)
			if err != nil {
				return obj, err
			}
			total, err := hist2D(name, p.X, p.Y, p.Total)
			if err != nil {
				return obj, err
			}
			obj.Eff = &domain.Efficiency{Passed2D: passed, Total2D: total}
			return obj, nil
		}
		passed, err := hist1D(name, p.X, p.Passed, nil)
		if err != nil {
			return obj, err
		}
		total, err := hist1D(name, p.X, p.Total, nil)
		if err != nil {
			return obj, err
		}
		obj.Eff = &domain.Efficiency{Passed: passed, Total: total}
		return obj, nil

	case strings.HasPrefix(class, "TGraph"):
		g, err := graph(name, p.Points)
		if err != nil {
			return obj, err
		}
		obj.Graph = g
		return obj, nil

	case strings.HasPrefix(class, "TH2"):
		h, err := hist2D(name, p.X, p.Y, p.Contents)
		if err != nil {
			return obj, err
		}
		obj.H2 = h
		return obj, nil

	case strings.HasPrefix(class, "TH1"), class == "TProfile":
		h, err := hist1D(name, p.X, p.Contents, p.Errors)
		if err != nil {
			return obj, err
		}
		obj.H1 = h
		return obj, nil
	}

	return obj, &domain.OpError{
		Op:   "objcodec.decode",
		Kind: domain.KindUnsupported,
		Path: name,
		Err:  fmt.Errorf("class %q: %w", class, domain.ErrUnsupported),
	}
}

// Encode is the inverse of Decode for archive writers.
func Encode(obj domain.Object) Payload {
	p := Payload{Class: obj.Class, Title: obj.Title}
	switch {
	case obj.H1 != nil:
		p.X = &Axis{Edges: obj.H1.Edges}
		p.Contents = obj.H1.Contents
		p.Errors = obj.H1.Errors
	case obj.H2 != nil:
		p.X = &Axis{Edges: obj.H2.XEdges}
		p.Y = &Axis{Edges: obj.H2.YEdges}
		p.Contents = obj.H2.Contents
	case obj.Eff != nil && obj.Eff.Passed != nil:
		p.X = &Axis{Edges: obj.Eff.Total.Edges}
		p.Passed = obj.Eff.Passed.Contents
		p.Total = obj.Eff.Total.Contents
	case obj.Eff != nil:
		p.X = &Axis{Edges: obj.Eff.Total2D.XEdges}
		p.Y = &Axis{Edges: obj.Eff.Total2D.YEdges}
		p.Passed = obj.Eff.Passed2D.Contents
		p.Total = obj.Eff.Total2D.Contents
	case obj.Graph != nil:
		for _, pt := range obj.Graph.Points {
			p.Points = append(p.Points, []float64{pt.X, pt.Y, pt.XLow, pt.XHigh, pt.YLow, pt.YHigh})
		}
	}
	return p
}

func (a *Axis) edges(name, axis string) ([]float64, error) {
	if a == nil {
		return nil, decodeErr(name, axis+" axis is required")
	}
	if len(a.Edges) > 0 {
		if len(a.Edges) < 2 {
			return nil, decodeErr(name, axis+" axis needs at least two edges")
		}
		for i := 1; i < len(a.Edges); i++ {
			if a.Edges[i] <= a.Edges[i-1] {
				return nil, decodeErr(name, axis+" axis edges must increase")
			}
		}
		return a.Edges, nil
	}
	if a.Bins <= 0 || a.Max <= a.Min {
		return nil, decodeErr(name, axis+" axis needs bins > 0 and max > min")
	}
	return domain.UniformEdges(a.Bins, a.Min, a.Max), nil
}

func hist1D(name string, x *Axis, contents, errs []float64) (*domain.Hist1D, error) {
	edges, err := x.edges(name, "x")
	if err != nil {
		return nil, err
	}
	h := domain.NewHist1D(edges)
	if len(contents) != h.Len() {
		return nil, decodeErr(name, fmt.Sprintf("expected %d contents, got %d", h.Len(), len(contents)))
	}
	copy(h.Contents, contents)
	switch len(errs) {
	case 0:
		for i, c := range contents {
			h.Errors[i] = math.Sqrt(math.Abs(c))
		}
	case h.Len():
		copy(h.Errors, errs)
	default:
		return nil, decodeErr(name, fmt.Sprintf("expected %d errors, got %d", h.Len(), len(errs)))
	}
	return h, nil
}

func hist2D(name string, x, y *Axis, contents []float64) (*domain.Hist2D, error) {
	xe, err := x.edges(name, "x")
	if err != nil {
		return nil, err
	}
	ye, err := y.edges(name, "y")
	if err != nil {
		return nil, err
	}
	h := domain.NewHist2D(xe, ye)
	if len(contents) != len(h.Contents) {
		return nil, decodeErr(name, fmt.Sprintf("expected %d contents, got %d", len(h.Contents), len(contents)))
	}
	copy(h.Contents, contents)
	return h, nil
}

func graph(name string, pts [][]float64) (*domain.Graph, error) {
	g := &domain.Graph{Points: make([]domain.Point, 0, len(pts))}
	for i, v := range pts {
		var p domain.Point
		switch len(v) {
		case 2:
			p = domain.Point{X: v[0], Y: v[1]}
		case 4:
			p = domain.Point{X: v[0], Y: v[1], XLow: v[2], XHigh: v[2], YLow: v[3], YHigh: v[3]}
		case 6:
			p = domain.Point{X: v[0], Y: v[1], XLow: v[2], XHigh: v[3], YLow: v[4], YHigh: v[5]}
		default:
			return nil, decodeErr(name, fmt.Sprintf("point %d: expected 2, 4 or 6 values, got %d", i, len(v)))
		}
		g.Points = append(g.Points, p)
	}
	return g, nil
}

func decodeErr(name, msg string) error {
	return &domain.OpError{
		Op:   "objcodec.decode",
		Kind: domain.KindInvalidConfig,
		Path: name,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
