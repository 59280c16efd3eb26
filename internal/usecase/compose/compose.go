// Package compose builds the backend-independent figure for one group of
// overlaid objects.
package compose

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/usecase/fit"
	"github.com/aalvaropc/rootplot/internal/usecase/paint"
)

// Font sizes in pixels.
const (
	LabelSize = 20
	TitleSize = 26
)

// Axis label rules.
const (
	SectorTitle   = "sector"
	MaxSectorBins = 14
	WheelTitle    = "wheel"
	WheelBins     = 5
)

// AutoYHeadroom scales the tallest bin into the top of a linear frame.
const AutoYHeadroom = 1.5

// Options tunes Figure.
type Options struct {
	Width, Height int
	// SkipFits disables fitGaus legend suffixes.
	SkipFits bool
	Logger   *slog.Logger
}

// Figure composes the overlay of objs, all sharing the logical name. The
// first object defines the frame.
func Figure(job domain.Job, name string, objs []domain.Object, opts Options) (domain.Figure, error) {
	if len(objs) == 0 {
		return domain.Figure{}, &domain.OpError{
			Op:   "compose.figure",
			Kind: domain.KindInvalidConfig,
			Path: name,
			Err:  fmt.Errorf("no objects: %w", domain.ErrInvalidConfig),
		}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	plot := job.Plot
	flags := domain.ParseDrawOptions(plot.Option)

	fig := domain.Figure{
		Name:      name,
		Width:     opts.Width,
		Height:    opts.Height,
		LabelSize: LabelSize,
		TitleSize: TitleSize,
		X: domain.Axis{
			Min:   plot.X.Min,
			Max:   plot.X.Max,
			Title: domain.LatexToUnicode(plot.X.Title),
			Log:   flags.LogX,
		},
		Y: domain.Axis{
			Min:   plot.Y.Min,
			Max:   plot.Y.Max,
			Title: domain.LatexToUnicode(plot.Y.Title),
			Log:   flags.LogY,
		},
	}

	fits := make([]*domain.Hist1D, len(objs))
	for i, obj := range objs {
		if flags.ChamberSummary {
			fill := domain.ChamberSummaryFill()
			obj.Style.FillColor = &fill
		}

		layer, fitSrc, err := buildLayer(obj, i, flags, plot)
		if err != nil {
			return domain.Figure{}, &domain.OpError{
				Op:   "compose.layer",
				Kind: domain.KindInvalidConfig,
				Path: obj.Name,
				Err:  err,
			}
		}
		fits[i] = fitSrc

		if i == 0 {
			frame(&fig, obj, layer, plot, flags)
		}
		fig.Layers = append(fig.Layers, layer)
	}

	if len(objs) > 1 {
		fig.Legend = legend(job, objs, fits, flags, opts.SkipFits, log)
	}
	fig.Texts = texts(plot)

	return fig, nil
}

// buildLayer converts one object into a drawable layer. The returned
// histogram is the one a Gaussian fit would use, or nil.
func buildLayer(obj domain.Object, i int, flags domain.DrawOptions, plot domain.PlotSpec) (domain.Layer, *domain.Hist1D, error) {
	layer := domain.Layer{Name: obj.Name, Style: obj.Style, Text: flags.Text()}

	switch {
	case obj.IsEfficiency() && obj.Dim() == 2:
		if plot.Z == nil {
			return layer, nil, fmt.Errorf("2-D efficiency needs plot.z: %w", domain.ErrInvalidConfig)
		}
		grid, err := paint.EfficiencyMap(obj.Eff)
		if err != nil {
			return layer, nil, err
		}
		layer.Kind = domain.LayerHeatMap
		layer.Grid = grid
		return layer, nil, nil

	case obj.IsEfficiency():
		g, err := paint.EfficiencyGraph(obj.Eff)
		if err != nil {
			return layer, nil, err
		}
		if flags.CleanEmptyBins {
			g = paint.Prune(g, paint.PruneThreshold(i))
		}
		layer.Kind = domain.LayerPoints
		layer.Graph = g
		layer.Line = flags.Line()
		return layer, nil, nil

	case obj.H2 != nil:
		layer.Kind = domain.LayerHeatMap
		layer.Grid = obj.H2.Clone()
		return layer, nil, nil

	case obj.Graph != nil:
		g := obj.Graph.Clone()
		if flags.CleanEmptyBins {
			g = paint.Prune(g, paint.PruneThreshold(i))
		}
		layer.Kind = domain.LayerPoints
		layer.Graph = g
		layer.Line = flags.Line()
		return layer, nil, nil

	case obj.H1 != nil:
		h := obj.H1.Clone()
		if flags.Scale && obj.IsPlainHist1D() {
			if sum := h.Integral(); sum != 0 {
				h.Scale(1 / sum)
			}
		}
		switch {
		case flags.CleanEmptyBins:
			layer.Kind = domain.LayerPoints
			layer.Graph = paint.Prune(paint.HistGraph(h), paint.PruneThreshold(i))
		case flags.Points() || (obj.IsProfile() && !flags.Hist()):
			layer.Kind = domain.LayerPoints
			layer.Graph = paint.HistGraph(h)
			layer.Line = flags.Line()
		default:
			layer.Kind = domain.LayerHistogram
			layer.Hist = h
		}
		return layer, h, nil
	}

	return layer, nil, fmt.Errorf("object %q of class %s has no data: %w", obj.Name, obj.Class, domain.ErrUnsupported)
}

func frame(fig *domain.Figure, obj domain.Object, layer domain.Layer, plot domain.PlotSpec, flags domain.DrawOptions) {
	switch {
	case obj.IsEfficiency(), obj.IsProfile(), obj.H2 != nil:
	case flags.OverrideYLimits, flags.LogY:
	default:
		fig.Y.Min = 0
		fig.Y.Max = AutoYHeadroom * layerMax(layer)
		if fig.Y.Max <= 0 {
			fig.Y.Max = plot.Y.Max
		}
	}

	if layer.Kind == domain.LayerHeatMap {
		if obj.IsEfficiency() {
			z := *plot.Z
			fig.Z = &z
			fig.Palette = domain.PaletteEfficiency
			if flags.Grid {
				fig.X.Edges = append([]float64(nil), layer.Grid.XEdges...)
				fig.Y.Edges = append([]float64(nil), layer.Grid.YEdges...)
			}
		} else {
			fig.Palette = domain.PaletteDefault
			if plot.Z != nil {
				z := *plot.Z
				fig.Z = &z
			}
		}
	}

	if plot.X.Title == SectorTitle {
		if edges := xEdges(obj, layer); len(edges) > 1 && len(edges)-1 <= MaxSectorBins {
			fig.X.Labels = binLabels(edges, 1)
		}
	}
	if plot.Y.Title == WheelTitle && layer.Grid != nil && layer.Grid.Ny() == WheelBins {
		fig.Y.Labels = binLabels(layer.Grid.YEdges, -2)
	}
}

// binLabels numbers bins from first at their centers.
func binLabels(edges []float64, first int) []domain.TickLabel {
	out := make([]domain.TickLabel, 0, len(edges)-1)
	for i := 0; i+1 < len(edges); i++ {
		out = append(out, domain.TickLabel{
			Value: 0.5 * (edges[i] + edges[i+1]),
			Label: strconv.Itoa(first + i),
		})
	}
	return out
}

func xEdges(obj domain.Object, layer domain.Layer) []float64 {
	switch {
	case layer.Grid != nil:
		return layer.Grid.XEdges
	case obj.H1 != nil:
		return obj.H1.Edges
	case obj.Eff != nil && obj.Eff.Total != nil:
		return obj.Eff.Total.Edges
	}
	return nil
}

func layerMax(l domain.Layer) float64 {
	switch {
	case l.Hist != nil:
		return l.Hist.Max()
	case l.Graph != nil:
		return l.Graph.Max()
	}
	return 0
}

func legend(job domain.Job, objs []domain.Object, fits []*domain.Hist1D, flags domain.DrawOptions, skipFits bool, log *slog.Logger) *domain.Legend {
	r := job.Plot.LegendRange
	leg := &domain.Legend{X1: r[0], Y1: r[1], X2: r[2], Y2: r[3], Border: 1}
	for i, obj := range objs {
		label := ""
		if obj.Input >= 0 && obj.Input < len(job.Inputs) {
			label = job.Inputs[obj.Input].LegendEntry
		}
		if flags.FitGaus && !skipFits && fits[i] != nil {
			res, err := fit.Gaus(fits[i])
			if err != nil {
				log.Warn("fit.skipped", "job", job.Name, "object", obj.Name, "error", err)
			} else {
				label += res.Label()
			}
		}
		leg.Entries = append(leg.Entries, domain.LegendEntry{
			Label: domain.LatexToUnicode(label),
			Layer: i,
		})
	}
	return leg
}

func texts(plot domain.PlotSpec) []domain.Text {
	var out []domain.Text
	add := func(t domain.Text) {
		if t.Body == "" {
			return
		}
		t.Body = domain.LatexToUnicode(t.Body)
		out = append(out, t)
	}
	add(domain.Text{X: 0.115, Y: 0.91, Body: plot.Logo[0], Size: 0.030, Face: domain.FontBold})
	add(domain.Text{X: 0.179, Y: 0.91, Body: plot.Logo[1], Size: 0.027, Face: domain.FontItalic})
	add(domain.Text{X: 0.90, Y: 0.91, Body: plot.Caption, Size: 0.030, Align: domain.AlignRight})
	add(domain.Text{
		X: plot.LegendRange[0], Y: plot.LegendRange[3] + 0.02,
		Body: plot.LegendTitle, Size: 0.032, Face: domain.FontBold,
	})
	return out
}
