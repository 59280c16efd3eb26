package domain

import (
	"fmt"
	"strings"
)

// WildcardPlot selects every object of a container instead of a single name.
// As an output filename it means "name the file after the object".
const WildcardPlot = "all"

// FixedGroup is the logical name used when inputs name a single object.
const FixedGroup = "histo"

// InputSpec describes one data source of a plot job.
type InputSpec struct {
	Key         string
	Filename    string
	Plot        string // object name or WildcardPlot
	Folder      string // container path inside the file; "" is the file root
	LegendEntry string
	Label       string
}

// IsWildcard reports whether the input selects every object of its folder.
func (in InputSpec) IsWildcard() bool { return in.Plot == WildcardPlot }

// AxisSpec is a [min, max, title] triple from the plot block.
type AxisSpec struct {
	Min   float64
	Max   float64
	Title string
}

// RangeSpec is a [min, max] pair.
type RangeSpec struct {
	Min float64
	Max float64
}

// PlotSpec holds the styling and layout of a job's figure.
type PlotSpec struct {
	ColorMap  []RGBA
	MarkerMap []MarkerStyle

	// LegendRange is the legend box in NDC: x1, y1, x2, y2.
	LegendRange [4]float64

	// Option is the raw draw-option string, flags included.
	Option string

	X AxisSpec
	Y AxisSpec
	Z *RangeSpec // optional; required for 2-D efficiency maps

	Logo        [2]string
	Caption     string
	LegendTitle string
}

// OutputSpec describes where and how a job's figures are written.
type OutputSpec struct {
	Directory    string
	FilenamePlot string
	FileTypes    []string
}

// UsesObjectName reports whether files are named after the logical name.
func (o OutputSpec) UsesObjectName() bool { return o.FilenamePlot == WildcardPlot }

// Job is one named entry of a plot config. It produces one figure per
// logical-name group of loaded objects.
type Job struct {
	Name    string
	Comment string
	Inputs  []InputSpec
	Plot    PlotSpec
	Output  OutputSpec
}

// CheckStyleMaps verifies that the color and marker maps cover every input.
func (j Job) CheckStyleMaps() error {
	if len(j.Plot.ColorMap) < len(j.Inputs) {
		return &OpError{
			Op:   "job.style_maps",
			Kind: KindInvalidConfig,
			Err: fmt.Errorf("job %q: colorMap has %d entries for %d inputs: %w",
				j.Name, len(j.Plot.ColorMap), len(j.Inputs), ErrInvalidConfig),
		}
	}
	if len(j.Plot.MarkerMap) < len(j.Inputs) {
		return &OpError{
			Op:   "job.style_maps",
			Kind: KindInvalidConfig,
			Err: fmt.Errorf("job %q: markerMap has %d entries for %d inputs: %w",
				j.Name, len(j.Plot.MarkerMap), len(j.Inputs), ErrInvalidConfig),
		}
	}
	return nil
}

// FileTypes are the image formats a figure can be written as.
var FileTypes = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff", "bmp"}

// IsSupportedFileType reports whether ext (without dot) is a known format.
func IsSupportedFileType(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	for _, ft := range FileTypes {
		if ft == ext {
			return true
		}
	}
	return false
}
