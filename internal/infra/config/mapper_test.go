package config

import (
	"os"
	"strings"
	"testing"

	"github.com/aalvaropc/rootplot/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func validJob() YAMLJob {
	return YAMLJob{
		Comment: "c",
		Inputs: map[string]YAMLInput{
			"b": {Filename: "b.root", Plot: "h", LegendEntry: "B"},
			"a": {Filename: "a.root", Plot: "h", LegendEntry: "A"},
		},
		Plot: YAMLPlot{
			ColorMap:    []any{1, "kRed", "#00ff00"},
			MarkerMap:   []int{20, 21, 22},
			LegendRange: []float64{0.1, 0.2, 0.3, 0.4},
			Option:      "HIST",
			X:           []any{0, 10.5, "x"},
			Y:           []any{0.0, 1, "y"},
			Logo:        []string{"CMS", "Work in progress"},
		},
		Output: YAMLOutput{Directory: "out", FilenamePlot: "h", FileType: []string{"PNG"}},
	}
}

func TestMapJob(t *testing.T) {
	job, err := MapJob("plots.json", "j", validJob())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Inputs[0].Key != "a" || job.Inputs[1].Key != "b" {
		t.Fatalf("inputs not sorted: %+v", job.Inputs)
	}
	if len(job.Plot.ColorMap) != 3 || job.Plot.ColorMap[2] != (domain.RGBA{G: 255, A: 255}) {
		t.Fatalf("unexpected colors %+v", job.Plot.ColorMap)
	}
	if job.Plot.LegendRange != [4]float64{0.1, 0.2, 0.3, 0.4} {
		t.Fatalf("unexpected legend range %v", job.Plot.LegendRange)
	}
	if job.Plot.X.Max != 10.5 || job.Plot.Logo[1] != "Work in progress" {
		t.Fatalf("unexpected plot %+v", job.Plot)
	}
	if job.Output.FileTypes[0] != "png" {
		t.Fatalf("file types must be lower-cased, got %v", job.Output.FileTypes)
	}
}

func TestMapJobFieldErrors(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*YAMLJob)
		field string
	}{
		{"no inputs", func(j *YAMLJob) { j.Inputs = nil }, "jobs.j.inputs"},
		{"no filename", func(j *YAMLJob) { j.Inputs["a"] = YAMLInput{Plot: "h"} }, "jobs.j.inputs.a.filename"},
		{"bad color", func(j *YAMLJob) { j.Plot.ColorMap[1] = "kPurple" }, "jobs.j.plot.colorMap[1]"},
		{"fractional color", func(j *YAMLJob) { j.Plot.ColorMap[0] = 1.5 }, "jobs.j.plot.colorMap[0]"},
		{"short legend", func(j *YAMLJob) { j.Plot.LegendRange = []float64{1} }, "jobs.j.plot.legendRange"},
		{"axis title", func(j *YAMLJob) { j.Plot.Y = []any{0, 1, 2} }, "jobs.j.plot.y"},
		{"bad z", func(j *YAMLJob) { j.Plot.Z = []float64{1} }, "jobs.j.plot.z"},
		{"no logo", func(j *YAMLJob) { j.Plot.Logo = nil }, "jobs.j.plot.logo"},
		{"no filename plot", func(j *YAMLJob) { j.Output.FilenamePlot = "" }, "jobs.j.output.filenamePlot"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			yj := validJob()
			c.edit(&yj)
			_, err := MapJob("plots.json", "j", yj)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected %s in error, got %v", c.field, err)
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got %v", err)
			}
		})
	}
}

func TestSchemaValidate(t *testing.T) {
	s, err := NewSchema()
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	raw := map[string]any{
		"comment": "c",
		"inputs": map[string]any{
			"a": map[string]any{"filename": "a.root", "plot": "h", "folder": "", "legendEntry": "A", "label": ""},
		},
		"plot": map[string]any{
			"colorMap": []any{1}, "markerMap": []any{20},
			"legendRange": []any{0.1, 0.1, 0.2, 0.2},
			"option":      "", "x": []any{0, 1, "x"}, "y": []any{0, 1, "y"},
			"logo": []any{"a", "b"}, "caption": "", "legendTitle": "",
		},
		"output": map[string]any{"directory": "out", "filenamePlot": "h", "fileType": []any{"png"}},
	}
	if err := s.Validate(raw); err != nil {
		t.Fatalf("valid job rejected: %v", err)
	}

	delete(raw["plot"].(map[string]any), "caption")
	if err := s.Validate(raw); err == nil {
		t.Fatalf("missing caption must be rejected")
	}
}
