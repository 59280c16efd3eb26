package domain

import (
	"errors"
	"testing"
)

func TestColorFromIndexBasic(t *testing.T) {
	cases := map[int]RGBA{
		0: {255, 255, 255, 255},
		1: {0, 0, 0, 255},
		2: {255, 0, 0, 255},
		4: {0, 0, 255, 255},
	}
	for idx, want := range cases {
		got, err := ColorFromIndex(idx)
		if err != nil {
			t.Fatalf("ColorFromIndex(%d): %v", idx, err)
		}
		if got != want {
			t.Errorf("ColorFromIndex(%d) = %+v, want %+v", idx, got, want)
		}
	}
}

func TestColorWheelShades(t *testing.T) {
	red, err := ColorFromIndex(632)
	if err != nil || red != (RGBA{255, 0, 0, 255}) {
		t.Fatalf("kRed = %+v (%v)", red, err)
	}
	darker, _ := ColorFromIndex(633)
	if darker != (RGBA{204, 0, 0, 255}) {
		t.Fatalf("kRed+1 = %+v", darker)
	}
	lighter, _ := ColorFromIndex(631)
	if lighter != (RGBA{102, 51, 51, 255}) {
		t.Fatalf("kRed-1 = %+v", lighter)
	}
	if _, err := ColorFromIndex(5000); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown index, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGBA
	}{
		{"2", RGBA{255, 0, 0, 255}},
		{"kBlue", RGBA{0, 0, 255, 255}},
		{"kRed+1", RGBA{204, 0, 0, 255}},
		{"kGray", RGBA{204, 204, 204, 255}},
		{"#1f77b4", RGBA{0x1f, 0x77, 0xb4, 0xff}},
		{"#1f77b480", RGBA{0x1f, 0x77, 0xb4, 0x80}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "kPurple", "#12", "#zzzzzz", "kRed+x"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q): expected error", bad)
		}
	}
}

func TestChamberSummaryFill(t *testing.T) {
	c := ChamberSummaryFill()
	if c.A != 128 {
		t.Fatalf("alpha = %d, want 128", c.A)
	}
	orange, _ := ColorFromIndex(800)
	if c.WithAlpha(1) == orange {
		t.Fatalf("kOrange-2 must differ from kOrange")
	}
}

func TestRGBClampsOnConversion(t *testing.T) {
	got := RGB{R: 1.183, G: 0.5, B: -0.1}.RGBA()
	if got.R != 255 || got.B != 0 || got.G != 128 {
		t.Fatalf("unexpected conversion %+v", got)
	}
}

func TestMarkerShapes(t *testing.T) {
	if s, filled := MarkerStyle(20).Shape(); s != ShapeCircle || !filled {
		t.Fatalf("20 must be a filled circle")
	}
	if s, filled := MarkerStyle(25).Shape(); s != ShapeSquare || filled {
		t.Fatalf("25 must be an open square")
	}
	if s, _ := MarkerStyle(999).Shape(); s != ShapeCircle {
		t.Fatalf("unknown codes fall back to circles")
	}
}

func TestStyleFor(t *testing.T) {
	plot := PlotSpec{
		ColorMap:  []RGBA{{R: 1, A: 255}, {G: 2, A: 255}},
		MarkerMap: []MarkerStyle{20, 21},
	}
	st, ok := StyleFor(plot, 1)
	if !ok {
		t.Fatalf("expected style for position 1")
	}
	if st.LineColor != plot.ColorMap[1] || st.MarkerColor != plot.ColorMap[1] {
		t.Fatalf("colors not taken from position 1: %+v", st)
	}
	if st.Marker != 21 || st.LineWidth != 2 || st.MarkerSize != 1.5 {
		t.Fatalf("unexpected style %+v", st)
	}
	if _, ok := StyleFor(plot, 2); ok {
		t.Fatalf("position past the maps must fail")
	}
}
