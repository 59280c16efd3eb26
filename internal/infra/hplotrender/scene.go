package hplotrender

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aalvaropc/rootplot/internal/domain"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Pad margins as fractions of the canvas. The top margin leaves room for
// the logo and caption line.
const (
	padLeft   = 0.01
	padRight  = 0.03
	padBottom = 0.01
	padTop    = 0.105
)

// cellTextScale sizes TEXT cell values relative to axis labels.
const cellTextScale = 0.7

// draw paints the whole figure onto dc. Plotting panics are turned into
// errors.
func (c *Canvas) draw(dc draw.Canvas) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw %s: %v", c.fig.Name, r)
		}
	}()

	fillRect(dc, dc.Rectangle, color.White)

	p, err := c.plot()
	if err != nil {
		return err
	}
	W, H := dc.Max.X-dc.Min.X, dc.Max.Y-dc.Min.Y
	pad := draw.Crop(dc, padLeft*W, -padRight*W, padBottom*H, -padTop*H)
	p.Draw(pad)

	if c.fig.Legend != nil {
		c.drawLegend(dc)
	}
	for _, t := range c.fig.Texts {
		drawText(dc, t)
	}
	return nil
}

func (c *Canvas) plot() (*hplot.Plot, error) {
	fig := c.fig
	p := hplot.New()
	p.Title.Text = ""

	setupAxis(&p.X, fig.X, fig)
	setupAxis(&p.Y, fig.Y, fig)

	p.Add(hplot.NewGrid())

	for _, l := range fig.Layers {
		ps, err := c.layer(l)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", l.Name, err)
		}
		p.Add(ps...)
	}

	if len(fig.X.Edges) > 0 || len(fig.Y.Edges) > 0 {
		p.Add(&edgeGrid{
			xs:    fig.X.Edges,
			ys:    fig.Y.Edges,
			style: draw.LineStyle{Color: color.Gray{Y: 60}, Width: px(1)},
		})
	}

	// Plot.Add widens the axes to the data; the frame is fixed.
	p.X.Min, p.X.Max = axisRange(fig.X)
	p.Y.Min, p.Y.Max = axisRange(fig.Y)
	return p, nil
}

func setupAxis(a *plot.Axis, ax domain.Axis, fig domain.Figure) {
	a.Label.Text = ax.Title
	a.Label.TextStyle.Font = face(domain.FontRegular, px(fig.TitleSize))
	a.Tick.Label.Font = face(domain.FontRegular, px(fig.LabelSize))

	if ax.Log {
		a.Scale = plot.LogScale{}
		a.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if len(ax.Labels) > 0 {
		ticks := make([]plot.Tick, 0, len(ax.Labels))
		for _, l := range ax.Labels {
			ticks = append(ticks, plot.Tick{Value: l.Value, Label: l.Label})
		}
		a.Tick.Marker = plot.ConstantTicks(ticks)
	}
}

// axisRange is the drawn range of ax. Log axes never start at or below
// zero.
func axisRange(ax domain.Axis) (lo, hi float64) {
	lo, hi = ax.Min, ax.Max
	if ax.Log && lo <= 0 {
		lo = hi * 1e-3
	}
	return lo, hi
}

func (c *Canvas) layer(l domain.Layer) ([]plot.Plotter, error) {
	switch l.Kind {
	case domain.LayerHistogram:
		return c.histLayer(l), nil
	case domain.LayerPoints:
		return c.pointsLayer(l)
	case domain.LayerHeatMap:
		return c.heatLayer(l), nil
	}
	return nil, fmt.Errorf("unknown layer kind %v", l.Kind)
}

func (c *Canvas) histLayer(l domain.Layer) []plot.Plotter {
	src := l.Hist
	if src == nil || src.Len() == 0 {
		return nil
	}
	if c.fig.X.Log {
		src = positiveBins(src)
		if src.Len() == 0 {
			return nil
		}
	}

	h := hbook.NewH1DFromEdges(src.Edges)
	for i, v := range src.Contents {
		h.Fill(src.Center(i), v)
	}

	hh := hplot.NewH1D(h, hplot.WithLogY(c.fig.Y.Log))
	hh.Infos.Style = hplot.HInfoNone
	hh.LineStyle = lineStyle(l.Style)
	if l.Style.FillColor != nil {
		hh.FillColor = toColor(*l.Style.FillColor)
	}
	return []plot.Plotter{hh}
}

// positiveBins drops the leading bins that reach zero or below.
func positiveBins(h *domain.Hist1D) *domain.Hist1D {
	k := 0
	for k < h.Len() && h.Edges[k] <= 0 {
		k++
	}
	return &domain.Hist1D{
		Edges:    h.Edges[k:],
		Contents: h.Contents[k:],
		Errors:   h.Errors[k:],
	}
}

func (c *Canvas) pointsLayer(l domain.Layer) ([]plot.Plotter, error) {
	if l.Graph == nil {
		return nil, nil
	}
	xmin, _ := axisRange(c.fig.X)
	ymin, _ := axisRange(c.fig.Y)

	pts := make([]hbook.Point2D, 0, l.Graph.Len())
	line := make(plotter.XYs, 0, l.Graph.Len())
	for _, pt := range l.Graph.Points {
		if (c.fig.X.Log && pt.X <= 0) || (c.fig.Y.Log && pt.Y <= 0) {
			continue
		}
		xlo, ylo := pt.XLow, pt.YLow
		if c.fig.X.Log {
			xlo = pt.X - math.Max(pt.X-xlo, xmin)
		}
		if c.fig.Y.Log {
			ylo = pt.Y - math.Max(pt.Y-ylo, ymin)
		}
		pts = append(pts, hbook.Point2D{
			X:    pt.X,
			Y:    pt.Y,
			ErrX: hbook.Range{Min: xlo, Max: pt.XHigh},
			ErrY: hbook.Range{Min: ylo, Max: pt.YHigh},
		})
		line = append(line, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if len(pts) == 0 {
		return nil, nil
	}

	var out []plot.Plotter
	if l.Line && len(line) > 1 {
		ln, err := plotter.NewLine(line)
		if err != nil {
			return nil, err
		}
		ln.LineStyle = lineStyle(l.Style)
		out = append(out, ln)
	}

	ls := lineStyle(l.Style)
	s := hplot.NewS2D(hbook.NewS2D(pts...), hplot.WithXErrBars(true), hplot.WithYErrBars(true))
	s.GlyphStyle = glyphStyle(l.Style)
	if s.XErrs != nil {
		s.XErrs.LineStyle = ls
		s.XErrs.CapWidth = 0
	}
	if s.YErrs != nil {
		s.YErrs.LineStyle = ls
		s.YErrs.CapWidth = 0
	}
	return append(out, s), nil
}

func (c *Canvas) heatLayer(l domain.Layer) []plot.Plotter {
	if l.Grid == nil || l.Grid.Nx() == 0 || l.Grid.Ny() == 0 {
		return nil
	}
	lo, hi, ok := l.Grid.Range()
	if c.fig.Z != nil {
		lo, hi, ok = c.fig.Z.Min, c.fig.Z.Max, true
	}
	if !ok {
		return nil
	}
	if !(hi > lo) {
		hi = lo + 1
	}

	out := []plot.Plotter{&cellMap{grid: l.Grid, colors: c.pal.Colors(), min: lo, max: hi}}
	if l.Text {
		sty := text.Style{
			Color:   color.Black,
			Font:    face(domain.FontRegular, px(c.fig.LabelSize*cellTextScale)),
			XAlign:  text.XCenter,
			YAlign:  text.YCenter,
			Handler: plot.DefaultTextHandler,
		}
		out = append(out, &cellText{grid: l.Grid, style: sty, format: "%1.3f"})
	}
	return out
}

// ndcRect maps normalized canvas coordinates onto dc.
func ndcRect(dc draw.Canvas, x1, y1, x2, y2 float64) vg.Rectangle {
	return vg.Rectangle{Min: ndc(dc, x1, y1), Max: ndc(dc, x2, y2)}
}

func ndc(dc draw.Canvas, x, y float64) vg.Point {
	W, H := dc.Max.X-dc.Min.X, dc.Max.Y-dc.Min.Y
	return vg.Point{X: dc.Min.X + vg.Length(x)*W, Y: dc.Min.Y + vg.Length(y)*H}
}

func (c *Canvas) drawLegend(dc draw.Canvas) {
	l := c.fig.Legend
	r := ndcRect(dc, l.X1, l.Y1, l.X2, l.Y2)
	box := draw.Canvas{Canvas: dc.Canvas, Rectangle: r}

	fillRect(box, r, color.White)
	if l.Border > 0 {
		box.StrokeLines(draw.LineStyle{Color: color.Black, Width: px(l.Border)}, rectPoints(r))
	}

	leg := plot.NewLegend()
	leg.Top = true
	leg.Left = true
	leg.TextStyle.Font = face(domain.FontRegular, px(c.fig.LabelSize))
	leg.ThumbnailWidth = px(40)
	leg.Padding = px(6)
	leg.XOffs = px(8)
	leg.YOffs = -px(8)
	for _, e := range l.Entries {
		if e.Layer < 0 || e.Layer >= len(c.fig.Layers) {
			continue
		}
		leg.Add(e.Label, newSwatch(c.fig.Layers[e.Layer]))
	}
	leg.Draw(box)
}

func drawText(dc draw.Canvas, t domain.Text) {
	H := dc.Max.Y - dc.Min.Y
	sty := text.Style{
		Color:   color.Black,
		Font:    face(t.Face, vg.Length(t.Size)*H),
		XAlign:  text.XLeft,
		YAlign:  text.YBottom,
		Handler: plot.DefaultTextHandler,
	}
	if t.Align == domain.AlignRight {
		sty.XAlign = text.XRight
	}
	dc.FillText(sty, ndc(dc, t.X, t.Y), t.Body)
}

func rectPoints(r vg.Rectangle) []vg.Point {
	return []vg.Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Min.Y},
	}
}

func fillRect(c draw.Canvas, r vg.Rectangle, col color.Color) {
	c.FillPolygon(col, rectPoints(r)[:4])
}
