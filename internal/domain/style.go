package domain

// MarkerStyle is a ROOT marker code.
type MarkerStyle int

// MarkerShape is the glyph family a marker code draws.
type MarkerShape int

const (
	ShapeCircle MarkerShape = iota
	ShapeSquare
	ShapeTriangleUp
	ShapeTriangleDown
	ShapeDiamond
	ShapeCross
	ShapePlus
	ShapeStar
	ShapeDot
)

// Shape maps the code to a glyph family and reports whether it is filled.
// Unknown codes draw as filled circles.
func (m MarkerStyle) Shape() (MarkerShape, bool) {
	switch m {
	case 1, 6, 7:
		return ShapeDot, true
	case 2:
		return ShapePlus, false
	case 3, 29, 30:
		return ShapeStar, m == 29
	case 5:
		return ShapeCross, false
	case 8, 20:
		return ShapeCircle, true
	case 4, 24:
		return ShapeCircle, false
	case 21:
		return ShapeSquare, true
	case 25:
		return ShapeSquare, false
	case 22:
		return ShapeTriangleUp, true
	case 26:
		return ShapeTriangleUp, false
	case 23:
		return ShapeTriangleDown, true
	case 32:
		return ShapeTriangleDown, false
	case 33:
		return ShapeDiamond, true
	case 27:
		return ShapeDiamond, false
	case 34:
		return ShapePlus, true
	case 28:
		return ShapePlus, false
	}
	return ShapeCircle, true
}

// Style is the per-object look assigned before drawing.
type Style struct {
	LineColor   RGBA
	MarkerColor RGBA
	LineWidth   float64 // pixels
	Marker      MarkerStyle
	MarkerSize  float64 // ROOT marker size units
	FillColor   *RGBA
}

// Default styling constants.
const (
	DefaultLineWidth  = 2
	DefaultMarkerSize = 1.5
)

// StyleFor builds the style of the object at position i of a group.
func StyleFor(plot PlotSpec, i int) (Style, bool) {
	if i < 0 || i >= len(plot.ColorMap) || i >= len(plot.MarkerMap) {
		return Style{}, false
	}
	c := plot.ColorMap[i]
	return Style{
		LineColor:   c,
		MarkerColor: c,
		LineWidth:   DefaultLineWidth,
		Marker:      plot.MarkerMap[i],
		MarkerSize:  DefaultMarkerSize,
	}, true
}
