package domain

import "strings"

// DrawOptions is a draw-option string split into pipeline flags and the
// base option handed to the renderer.
type DrawOptions struct {
	Base string

	Grid            bool
	ChamberSummary  bool
	CleanEmptyBins  bool
	Scale           bool
	FitGaus         bool
	LogX            bool
	LogY            bool
	OverrideYLimits bool
}

// ParseDrawOptions detects each flag by substring and removes it from the
// base option. Flags are stripped in a fixed order.
func ParseDrawOptions(opt string) DrawOptions {
	var o DrawOptions
	flags := []struct {
		token string
		dst   *bool
	}{
		{"grid", &o.Grid},
		{"chamberSummary", &o.ChamberSummary},
		{"cleanEmptyBins", &o.CleanEmptyBins},
		{"scale", &o.Scale},
		{"fitGaus", &o.FitGaus},
		{"logX", &o.LogX},
		{"logY", &o.LogY},
		{"overrideYLimits", &o.OverrideYLimits},
	}
	for _, f := range flags {
		if strings.Contains(opt, f.token) {
			*f.dst = true
			opt = strings.ReplaceAll(opt, f.token, "")
		}
	}
	o.Base = strings.TrimSpace(opt)
	return o
}

// Draw-mode words recognised in the base option.
var modeWords = []string{"COLZ", "COL", "TEXT", "HIST", "SAME", "AXIS"}

func (o DrawOptions) upper() string { return strings.ToUpper(o.Base) }

// HeatMap reports a COL/COLZ option.
func (o DrawOptions) HeatMap() bool { return strings.Contains(o.upper(), "COL") }

// Text reports a TEXT option: bin values printed on 2-D maps.
func (o DrawOptions) Text() bool { return strings.Contains(o.upper(), "TEXT") }

// Hist reports a HIST option: line only.
func (o DrawOptions) Hist() bool { return strings.Contains(o.upper(), "HIST") }

// Points reports whether markers and error bars are requested (P or E
// outside the mode words).
func (o DrawOptions) Points() bool {
	rest := o.upper()
	for _, w := range modeWords {
		rest = strings.ReplaceAll(rest, w, "")
	}
	return strings.ContainsAny(rest, "PE")
}

// Line reports whether graph points are joined (L or C outside the mode
// words).
func (o DrawOptions) Line() bool {
	rest := o.upper()
	for _, w := range modeWords {
		rest = strings.ReplaceAll(rest, w, "")
	}
	return strings.ContainsAny(rest, "LC")
}
