package config

// YAMLJob is one entry of a plot config document.
type YAMLJob struct {
	Comment string               `yaml:"comment"`
	Inputs  map[string]YAMLInput `yaml:"inputs"`
	Plot    YAMLPlot             `yaml:"plot"`
	Output  YAMLOutput           `yaml:"output"`
}

type YAMLInput struct {
	Filename    string `yaml:"filename"`
	Plot        string `yaml:"plot"`
	Folder      string `yaml:"folder"`
	LegendEntry string `yaml:"legendEntry"`
	Label       string `yaml:"label"`
}

type YAMLPlot struct {
	ColorMap    []any     `yaml:"colorMap"`
	MarkerMap   []int     `yaml:"markerMap"`
	LegendRange []float64 `yaml:"legendRange"`
	Option      string    `yaml:"option"`

	// X and Y are [min, max, title].
	X []any     `yaml:"x"`
	Y []any     `yaml:"y"`
	Z []float64 `yaml:"z"`

	Logo        []string `yaml:"logo"`
	Caption     string   `yaml:"caption"`
	LegendTitle string   `yaml:"legendTitle"`
}

type YAMLOutput struct {
	Directory    string   `yaml:"directory"`
	FilenamePlot string   `yaml:"filenamePlot"`
	FileType     []string `yaml:"fileType"`
}
