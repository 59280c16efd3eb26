package domain

// LayerKind selects how a layer is drawn.
type LayerKind int

const (
	// LayerHistogram is a stepped line, optionally filled.
	LayerHistogram LayerKind = iota
	// LayerPoints is markers with error bars, optionally joined.
	LayerPoints
	// LayerHeatMap is a colored 2-D grid.
	LayerHeatMap
)

func (k LayerKind) String() string {
	switch k {
	case LayerHistogram:
		return "histogram"
	case LayerPoints:
		return "points"
	case LayerHeatMap:
		return "heatmap"
	}
	return "unknown"
}

// Layer is one drawn object of a figure.
type Layer struct {
	Name  string
	Kind  LayerKind
	Style Style

	Hist  *Hist1D // LayerHistogram
	Graph *Graph  // LayerPoints
	Grid  *Hist2D // LayerHeatMap

	Line bool // join points
	Text bool // print cell values on heat maps
}

// TickLabel is an explicit axis label at a data coordinate.
type TickLabel struct {
	Value float64
	Label string
}

// Axis describes one frame axis.
type Axis struct {
	Min, Max float64
	Title    string
	Log      bool

	// Labels replaces the automatic tick labels when set.
	Labels []TickLabel
	// Edges draws grid lines at these positions when set.
	Edges []float64
}

// PaletteKind selects the heat-map color scale.
type PaletteKind int

const (
	PaletteDefault PaletteKind = iota
	PaletteEfficiency
)

// LegendEntry labels one layer.
type LegendEntry struct {
	Label string
	Layer int
}

// Legend is a bordered box at NDC coordinates.
type Legend struct {
	X1, Y1, X2, Y2 float64
	Border         float64 // pixels; 0 draws no border
	Entries        []LegendEntry
}

// FontFace is the weight/style of a text item.
type FontFace int

const (
	FontRegular FontFace = iota
	FontBold
	FontItalic
)

// TextAlign is the horizontal anchor of a text item.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignRight
)

// Text is a free label at NDC coordinates. Size is a fraction of the
// canvas height.
type Text struct {
	X, Y  float64
	Body  string
	Size  float64
	Face  FontFace
	Align TextAlign
}

// Figure is a fully composed scene, independent of any drawing backend.
type Figure struct {
	Name          string
	Width, Height int // pixels

	X, Y Axis
	// Z fixes the heat-map color range; nil means the data range.
	Z       *RangeSpec
	Palette PaletteKind

	// Font sizes in pixels.
	LabelSize float64
	TitleSize float64

	Layers []Layer
	Legend *Legend
	Texts  []Text
}
