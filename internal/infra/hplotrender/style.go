package hplotrender

import (
	"image/color"
	"sync"

	"github.com/aalvaropc/rootplot/internal/domain"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// markerRadius is the glyph radius in pixels of marker size 1.
const markerRadius = 4

func toColor(c domain.RGBA) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

const (
	boldVariant   font.Variant = "SansBold"
	italicVariant font.Variant = "SansItalic"
)

// registerFaces adds the bold and italic Liberation Sans faces to the
// default cache as upright regular variants. vgpdf adds embedded fonts
// without a style but selects weighted or slanted ones with one, so a
// styled descriptor never resolves in PDF output.
var registerFaces = sync.OnceFunc(func() {
	var faces font.Collection
	for _, f := range liberation.Collection() {
		if f.Font.Variant != "Sans" {
			continue
		}
		bold := f.Font.Weight == xfont.WeightBold
		italic := f.Font.Style == xfont.StyleItalic
		switch {
		case bold && !italic:
			faces = append(faces, font.Face{Font: font.Font{Typeface: f.Font.Typeface, Variant: boldVariant}, Face: f.Face})
		case italic && !bold:
			faces = append(faces, font.Face{Font: font.Font{Typeface: f.Font.Typeface, Variant: italicVariant}, Face: f.Face})
		}
	}
	font.DefaultCache.Add(faces)
})

// face returns the sans-serif font of the given face and size.
func face(f domain.FontFace, size vg.Length) font.Font {
	registerFaces()
	fnt := plot.DefaultFont
	fnt.Variant = "Sans"
	fnt.Size = size
	switch f {
	case domain.FontBold:
		fnt.Variant = boldVariant
	case domain.FontItalic:
		fnt.Variant = italicVariant
	}
	return fnt
}

func lineStyle(s domain.Style) draw.LineStyle {
	w := s.LineWidth
	if w <= 0 {
		w = domain.DefaultLineWidth
	}
	return draw.LineStyle{Color: toColor(s.LineColor), Width: px(w)}
}

func glyphStyle(s domain.Style) draw.GlyphStyle {
	size := s.MarkerSize
	if size <= 0 {
		size = domain.DefaultMarkerSize
	}
	shape, filled := s.Marker.Shape()
	g := draw.GlyphStyle{
		Color:  toColor(s.MarkerColor),
		Radius: px(markerRadius * size),
		Shape:  glyphShape(shape, filled),
	}
	if shape == domain.ShapeDot {
		g.Radius = px(1.5)
	}
	return g
}

// glyphShape picks the closest gonum glyph; families without a gonum
// counterpart fall back to a similar outline.
func glyphShape(shape domain.MarkerShape, filled bool) draw.GlyphDrawer {
	switch shape {
	case domain.ShapeSquare, domain.ShapeDiamond:
		if filled {
			return draw.BoxGlyph{}
		}
		return draw.SquareGlyph{}
	case domain.ShapeTriangleUp, domain.ShapeTriangleDown:
		if filled {
			return draw.PyramidGlyph{}
		}
		return draw.TriangleGlyph{}
	case domain.ShapeCross, domain.ShapeStar:
		return draw.CrossGlyph{}
	case domain.ShapePlus:
		return draw.PlusGlyph{}
	}
	if filled {
		return draw.CircleGlyph{}
	}
	return draw.RingGlyph{}
}

type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }

func efficiencyPalette() palette.Palette {
	rgb := domain.EfficiencyPalette()
	out := make(colorList, len(rgb))
	for i, c := range rgb {
		out[i] = toColor(c.RGBA())
	}
	return out
}
