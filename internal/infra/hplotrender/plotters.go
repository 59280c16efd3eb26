package hplotrender

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aalvaropc/rootplot/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// cellMap fills every 2-D bin with its palette color. Bins are drawn from
// their edges, so variable bin widths are exact. NaN cells and cells
// below min are left empty; cells above max take the top color.
type cellMap struct {
	grid     *domain.Hist2D
	colors   []color.Color
	min, max float64
}

var _ plot.Plotter = (*cellMap)(nil)

func (m *cellMap) color(v float64) color.Color {
	if math.IsNaN(v) || v < m.min || len(m.colors) == 0 {
		return nil
	}
	n := len(m.colors)
	i := int((v - m.min) / (m.max - m.min) * float64(n))
	if i >= n {
		i = n - 1
	}
	return m.colors[i]
}

func (m *cellMap) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	g := m.grid
	for iy := 0; iy < g.Ny(); iy++ {
		y0, y1, ok := clampSpan(g.YEdges[iy], g.YEdges[iy+1], plt.Y)
		if !ok {
			continue
		}
		for ix := 0; ix < g.Nx(); ix++ {
			col := m.color(g.At(ix, iy))
			if col == nil {
				continue
			}
			x0, x1, ok := clampSpan(g.XEdges[ix], g.XEdges[ix+1], plt.X)
			if !ok {
				continue
			}
			c.FillPolygon(col, []vg.Point{
				{X: trX(x0), Y: trY(y0)},
				{X: trX(x1), Y: trY(y0)},
				{X: trX(x1), Y: trY(y1)},
				{X: trX(x0), Y: trY(y1)},
			})
		}
	}
}

// clampSpan intersects [lo, hi] with the axis range.
func clampSpan(lo, hi float64, a plot.Axis) (float64, float64, bool) {
	lo = math.Max(lo, a.Min)
	hi = math.Min(hi, a.Max)
	return lo, hi, hi > lo
}

// cellText prints bin values at the bin centers.
type cellText struct {
	grid   *domain.Hist2D
	style  text.Style
	format string
}

var _ plot.Plotter = (*cellText)(nil)

func (t *cellText) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	g := t.grid
	for iy := 0; iy < g.Ny(); iy++ {
		y := g.YCenter(iy)
		if y < plt.Y.Min || y > plt.Y.Max {
			continue
		}
		for ix := 0; ix < g.Nx(); ix++ {
			x := g.XCenter(ix)
			v := g.At(ix, iy)
			if math.IsNaN(v) || x < plt.X.Min || x > plt.X.Max {
				continue
			}
			c.FillText(t.style, vg.Point{X: trX(x), Y: trY(y)}, fmt.Sprintf(t.format, v))
		}
	}
}

// edgeGrid draws lines along bin edges across the data area.
type edgeGrid struct {
	xs, ys []float64
	style  draw.LineStyle
}

var _ plot.Plotter = (*edgeGrid)(nil)

func (g *edgeGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, x := range g.xs {
		if x < plt.X.Min || x > plt.X.Max {
			continue
		}
		c.StrokeLine2(g.style, trX(x), c.Min.Y, trX(x), c.Max.Y)
	}
	for _, y := range g.ys {
		if y < plt.Y.Min || y > plt.Y.Max {
			continue
		}
		c.StrokeLine2(g.style, c.Min.X, trY(y), c.Max.X, trY(y))
	}
}

// swatch is the legend thumbnail of a layer: fill, line and marker.
type swatch struct {
	fill  color.Color
	line  draw.LineStyle
	glyph *draw.GlyphStyle
}

var _ plot.Thumbnailer = swatch{}

func newSwatch(l domain.Layer) swatch {
	s := swatch{line: lineStyle(l.Style)}
	if l.Style.FillColor != nil {
		s.fill = toColor(*l.Style.FillColor)
	}
	if l.Kind == domain.LayerPoints {
		g := glyphStyle(l.Style)
		s.glyph = &g
	}
	return s
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	if s.fill != nil {
		c.FillPolygon(s.fill, rectPoints(c.Rectangle)[:4])
	}
	y := (c.Min.Y + c.Max.Y) / 2
	c.StrokeLine2(s.line, c.Min.X, y, c.Max.X, y)
	if s.glyph != nil {
		c.DrawGlyph(*s.glyph, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: y})
	}
}
