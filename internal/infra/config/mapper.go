package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
)

// MapJob converts a decoded job into the domain model. Inputs are ordered
// by sorted input key.
func MapJob(path, name string, yj YAMLJob) (domain.Job, error) {
	prefix := "jobs." + name
	if len(yj.Inputs) == 0 {
		return domain.Job{}, invalidField(path, prefix+".inputs", "at least one input is required")
	}

	job := domain.Job{
		Name:    name,
		Comment: yj.Comment,
		Inputs:  make([]domain.InputSpec, 0, len(yj.Inputs)),
	}

	keys := make([]string, 0, len(yj.Inputs))
	for k := range yj.Inputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		in := yj.Inputs[k]
		field := fmt.Sprintf("%s.inputs.%s", prefix, k)
		if strings.TrimSpace(in.Filename) == "" {
			return domain.Job{}, invalidField(path, field+".filename", "filename is required")
		}
		if strings.TrimSpace(in.Plot) == "" {
			return domain.Job{}, invalidField(path, field+".plot", "plot is required")
		}
		job.Inputs = append(job.Inputs, domain.InputSpec{
			Key:         k,
			Filename:    in.Filename,
			Plot:        in.Plot,
			Folder:      in.Folder,
			LegendEntry: in.LegendEntry,
			Label:       in.Label,
		})
	}

	plot, err := mapPlot(path, prefix+".plot", yj.Plot)
	if err != nil {
		return domain.Job{}, err
	}
	job.Plot = plot

	out, err := mapOutput(path, prefix+".output", yj.Output)
	if err != nil {
		return domain.Job{}, err
	}
	job.Output = out

	return job, nil
}

func mapPlot(path, prefix string, yp YAMLPlot) (domain.PlotSpec, error) {
	var ps domain.PlotSpec

	for i, c := range yp.ColorMap {
		col, err := parseColor(c)
		if err != nil {
			return ps, invalidField(path, fmt.Sprintf("%s.colorMap[%d]", prefix, i), err.Error())
		}
		ps.ColorMap = append(ps.ColorMap, col)
	}
	for _, m := range yp.MarkerMap {
		ps.MarkerMap = append(ps.MarkerMap, domain.MarkerStyle(m))
	}

	if len(yp.LegendRange) != 4 {
		return ps, invalidField(path, prefix+".legendRange", "expected [x1, y1, x2, y2]")
	}
	copy(ps.LegendRange[:], yp.LegendRange)

	ps.Option = yp.Option

	x, err := mapAxis(yp.X)
	if err != nil {
		return ps, invalidField(path, prefix+".x", err.Error())
	}
	y, err := mapAxis(yp.Y)
	if err != nil {
		return ps, invalidField(path, prefix+".y", err.Error())
	}
	ps.X, ps.Y = x, y

	switch len(yp.Z) {
	case 0:
	case 2:
		ps.Z = &domain.RangeSpec{Min: yp.Z[0], Max: yp.Z[1]}
	default:
		return ps, invalidField(path, prefix+".z", "expected [min, max]")
	}

	if len(yp.Logo) != 2 {
		return ps, invalidField(path, prefix+".logo", "expected two strings")
	}
	ps.Logo = [2]string{yp.Logo[0], yp.Logo[1]}
	ps.Caption = yp.Caption
	ps.LegendTitle = yp.LegendTitle

	return ps, nil
}

func mapAxis(v []any) (domain.AxisSpec, error) {
	if len(v) != 3 {
		return domain.AxisSpec{}, fmt.Errorf("expected [min, max, title]")
	}
	lo, err := toFloat(v[0])
	if err != nil {
		return domain.AxisSpec{}, fmt.Errorf("min: %v", err)
	}
	hi, err := toFloat(v[1])
	if err != nil {
		return domain.AxisSpec{}, fmt.Errorf("max: %v", err)
	}
	title, ok := v[2].(string)
	if !ok {
		return domain.AxisSpec{}, fmt.Errorf("title must be a string")
	}
	return domain.AxisSpec{Min: lo, Max: hi, Title: title}, nil
}

func mapOutput(path, prefix string, yo YAMLOutput) (domain.OutputSpec, error) {
	if strings.TrimSpace(yo.FilenamePlot) == "" {
		return domain.OutputSpec{}, invalidField(path, prefix+".filenamePlot", "filenamePlot is required")
	}
	for i, ft := range yo.FileType {
		if !domain.IsSupportedFileType(ft) {
			return domain.OutputSpec{}, invalidField(path, fmt.Sprintf("%s.fileType[%d]", prefix, i),
				fmt.Sprintf("unsupported file type %q", ft))
		}
	}
	types := make([]string, 0, len(yo.FileType))
	for _, ft := range yo.FileType {
		types = append(types, strings.ToLower(strings.TrimPrefix(ft, ".")))
	}
	return domain.OutputSpec{
		Directory:    yo.Directory,
		FilenamePlot: yo.FilenamePlot,
		FileTypes:    types,
	}, nil
}

func parseColor(v any) (domain.RGBA, error) {
	switch c := v.(type) {
	case int:
		return domain.ColorFromIndex(c)
	case float64:
		if c != float64(int(c)) {
			return domain.RGBA{}, fmt.Errorf("color index must be an integer, got %v", c)
		}
		return domain.ColorFromIndex(int(c))
	case string:
		return domain.ParseColor(c)
	default:
		return domain.RGBA{}, fmt.Errorf("unsupported color value %v", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
