package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBA is a non-premultiplied 8-bit color.
type RGBA struct {
	R, G, B, A uint8
}

// WithAlpha returns c with opacity a in [0, 1].
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = uint8(math.Round(255 * clamp01(a)))
	return c
}

// Hex renders c as #rrggbb, or #rrggbbaa when not opaque.
func (c RGBA) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGB is a color with float channels. Channels above 1 saturate on
// conversion.
type RGB struct {
	R, G, B float64
}

// RGBA converts to an opaque 8-bit color.
func (c RGB) RGBA() RGBA {
	return RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

func to8(v float64) uint8 {
	return uint8(int(clamp01(v)*255 + 0.5))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Basic ROOT palette, indices 0 to 9.
var basicColors = [...]RGB{
	{1, 1, 1},
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
	{0.35, 0.83, 0.33},
	{0.35, 0.33, 0.85},
}

type wheelColor struct {
	name  string
	index int
	base  [3]uint8
}

// Color wheel entries; shades live at index-10 .. index+10.
var wheel = []wheelColor{
	{"kRed", 632, [3]uint8{255, 0, 0}},
	{"kPink", 900, [3]uint8{255, 0, 204}},
	{"kMagenta", 616, [3]uint8{255, 0, 255}},
	{"kViolet", 880, [3]uint8{204, 0, 255}},
	{"kBlue", 600, [3]uint8{0, 0, 255}},
	{"kAzure", 860, [3]uint8{0, 204, 255}},
	{"kCyan", 432, [3]uint8{0, 255, 255}},
	{"kTeal", 840, [3]uint8{0, 255, 204}},
	{"kGreen", 416, [3]uint8{0, 255, 0}},
	{"kSpring", 820, [3]uint8{204, 255, 0}},
	{"kYellow", 400, [3]uint8{255, 255, 0}},
	{"kOrange", 800, [3]uint8{255, 204, 0}},
}

const grayIndex = 920

// Lighter shades: channel value for saturated and empty base channels,
// from offset -10 up to -1.
var lightShades = [10][2]uint8{
	{255, 204}, {255, 153}, {204, 153}, {255, 102}, {204, 102},
	{153, 102}, {255, 51}, {204, 51}, {153, 51}, {102, 51},
}

// ColorFromIndex resolves a ROOT color index.
func ColorFromIndex(idx int) (RGBA, error) {
	if idx >= 0 && idx < len(basicColors) {
		return basicColors[idx].RGBA(), nil
	}
	if idx >= grayIndex && idx <= grayIndex+3 {
		v := uint8(204 - 51*(idx-grayIndex))
		return RGBA{R: v, G: v, B: v, A: 255}, nil
	}
	for _, w := range wheel {
		if off := idx - w.index; off >= -10 && off <= 10 {
			return shade(w.base, off), nil
		}
	}
	return RGBA{}, fmt.Errorf("unknown color index %d: %w", idx, ErrInvalidConfig)
}

func shade(base [3]uint8, off int) RGBA {
	var out [3]uint8
	switch {
	case off == 0:
		out = base
	case off > 0:
		f := math.Max(0.1, 1-0.2*float64(off))
		for i, v := range base {
			out[i] = uint8(math.Round(float64(v) * f))
		}
	default:
		hi, lo := float64(lightShades[off+10][0]), float64(lightShades[off+10][1])
		for i, v := range base {
			out[i] = uint8(math.Round(lo + (hi-lo)*float64(v)/255))
		}
	}
	return RGBA{R: out[0], G: out[1], B: out[2], A: 255}
}

// ParseColor resolves a color written as a string: a decimal index,
// a named ROOT color with an optional offset ("kOrange-2"), or hex
// ("#1f77b4", "#1f77b480").
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("empty color: %w", ErrInvalidConfig)
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return ColorFromIndex(n)
	}

	name, off := s, 0
	if i := strings.IndexAny(s, "+-"); i > 0 {
		n, err := strconv.Atoi(strings.ReplaceAll(s[i:], " ", ""))
		if err != nil {
			return RGBA{}, fmt.Errorf("bad color offset in %q: %w", s, ErrInvalidConfig)
		}
		name, off = strings.TrimSpace(s[:i]), n
	}
	switch name {
	case "kWhite":
		return ColorFromIndex(0 + off)
	case "kBlack":
		return ColorFromIndex(1 + off)
	case "kGray":
		return ColorFromIndex(grayIndex + off)
	}
	for _, w := range wheel {
		if w.name == name {
			return ColorFromIndex(w.index + off)
		}
	}
	return RGBA{}, fmt.Errorf("unknown color %q: %w", s, ErrInvalidConfig)
}

func parseHex(s string) (RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return RGBA{}, fmt.Errorf("bad hex color %q: %w", s, ErrInvalidConfig)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("bad hex color %q: %w", s, ErrInvalidConfig)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ChamberSummaryFill is the translucent orange used by chamberSummary.
func ChamberSummaryFill() RGBA {
	c, _ := ColorFromIndex(800 - 2)
	return c.WithAlpha(0.5)
}
