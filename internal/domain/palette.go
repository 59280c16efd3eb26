package domain

// EfficiencyPaletteSize is the number of steps of EfficiencyPalette.
const EfficiencyPaletteSize = 100

// EfficiencyPalette is the red to yellow to green ramp used for 2-D
// efficiency maps. Channels may exceed 1; they saturate on conversion.
func EfficiencyPalette() []RGB {
	pal := make([]RGB, EfficiencyPaletteSize)
	for i := range pal {
		x := float64(i)
		switch {
		case i < 70:
			pal[i] = RGB{R: 0.70 + 0.007*x, G: 0.0069 * x}
		case i < 90:
			pal[i] = RGB{R: 0.70 + 0.007*x, G: 0.0069*x + 0.10 + 0.01*(x-70)}
		default:
			pal[i] = RGB{R: 0.98 - 0.098*(x-90), G: 0.80}
		}
	}
	return pal
}
