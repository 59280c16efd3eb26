// Package hplotrender draws composed figures with gonum/plot and go-hep's
// hplot, and encodes them in every format draw.NewFormattedCanvas knows
// plus BMP.
package hplotrender

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
	"golang.org/x/image/bmp"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// DPI maps figure pixels to vector lengths.
const DPI = 96

func px(v float64) vg.Length { return vg.Length(v) * vg.Inch / DPI }

type Renderer struct {
	heat palette.Palette
}

var _ ports.Renderer = (*Renderer)(nil)

type Option func(*Renderer)

// WithPalette replaces the palette of plain 2-D histograms.
func WithPalette(p palette.Palette) Option {
	return func(r *Renderer) {
		if p != nil {
			r.heat = p
		}
	}
}

// New returns a renderer whose default heat-map palette is the reversed
// brewer Spectral scale, blue for low values and red for high ones.
func New(opts ...Option) (*Renderer, error) {
	spectral, err := brewer.GetPalette(brewer.TypeDiverging, "Spectral", 11)
	if err != nil {
		return nil, &domain.OpError{Op: "hplotrender.new", Kind: domain.KindExecution, Err: err}
	}
	cols := spectral.Colors()
	heat := make(colorList, len(cols))
	for i, c := range cols {
		heat[len(cols)-1-i] = c
	}
	r := &Renderer{heat: heat}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render checks the figure and returns a canvas that draws it lazily, once
// per written format.
func (r *Renderer) Render(fig domain.Figure) (ports.Canvas, error) {
	if fig.Width <= 0 || fig.Height <= 0 {
		return nil, invalidFigure(fig, fmt.Errorf("canvas size %dx%d", fig.Width, fig.Height))
	}
	if err := checkAxis("x", fig.X); err != nil {
		return nil, invalidFigure(fig, err)
	}
	if err := checkAxis("y", fig.Y); err != nil {
		return nil, invalidFigure(fig, err)
	}
	if fig.Z != nil && !(fig.Z.Max > fig.Z.Min) {
		return nil, invalidFigure(fig, fmt.Errorf("z range [%g, %g] is empty", fig.Z.Min, fig.Z.Max))
	}

	pal := r.heat
	if fig.Palette == domain.PaletteEfficiency {
		pal = efficiencyPalette()
	}
	return &Canvas{fig: fig, pal: pal}, nil
}

func checkAxis(name string, a domain.Axis) error {
	if !(a.Max > a.Min) {
		return fmt.Errorf("%s range [%g, %g] is empty", name, a.Min, a.Max)
	}
	if a.Log && a.Max <= 0 {
		return fmt.Errorf("%s range [%g, %g] has no positive values for a log axis", name, a.Min, a.Max)
	}
	return nil
}

func invalidFigure(fig domain.Figure, err error) error {
	return &domain.OpError{
		Op:   "hplotrender.render",
		Kind: domain.KindInvalidConfig,
		Path: fig.Name,
		Err:  fmt.Errorf("%w: %w", err, domain.ErrInvalidConfig),
	}
}

// Canvas is a figure ready to be encoded.
type Canvas struct {
	fig domain.Figure
	pal palette.Palette
}

var _ ports.Canvas = (*Canvas)(nil)

// WriteFile draws the figure and encodes it in the format named by the
// extension of p.
func (c *Canvas) WriteFile(p string) (err error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(p), "."))
	w, h := px(float64(c.fig.Width)), px(float64(c.fig.Height))

	var (
		dc     draw.Canvas
		encode func(*os.File) error
	)
	switch ext {
	case "bmp":
		img := vgimg.New(w, h)
		dc = draw.New(img)
		encode = func(f *os.File) error { return bmp.Encode(f, img.Image()) }
	case "pdf":
		doc := vgpdf.New(w, h)
		doc.EmbedFonts(true)
		dc = draw.New(doc)
		encode = func(f *os.File) error {
			_, err := doc.WriteTo(f)
			return err
		}
	default:
		cw, ferr := draw.NewFormattedCanvas(w, h, ext)
		if ferr != nil {
			return &domain.OpError{
				Op:   "hplotrender.write",
				Kind: domain.KindUnsupported,
				Path: p,
				Err:  fmt.Errorf("%w: %w", ferr, domain.ErrUnsupported),
			}
		}
		dc = draw.New(cw)
		encode = func(f *os.File) error {
			_, err := cw.WriteTo(f)
			return err
		}
	}

	if err := c.draw(dc); err != nil {
		return &domain.OpError{Op: "hplotrender.draw", Kind: domain.KindExecution, Path: c.fig.Name, Err: err}
	}

	f, err := os.Create(p)
	if err != nil {
		return &domain.OpError{Op: "hplotrender.write", Kind: domain.KindExecution, Path: p, Err: err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = &domain.OpError{Op: "hplotrender.write", Kind: domain.KindExecution, Path: p, Err: cerr}
		}
	}()

	if err := encode(f); err != nil {
		return &domain.OpError{Op: "hplotrender.write", Kind: domain.KindExecution, Path: p, Err: err}
	}
	return nil
}
