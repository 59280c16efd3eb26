package domain

// Settings is the project configuration loaded from rootplot.yaml.
type Settings struct {
	Canvas   CanvasSettings
	Paths    PathsSettings
	Defaults DefaultsSettings
}

type CanvasSettings struct {
	Width  int
	Height int
}

type PathsSettings struct {
	// ManifestDir enables run manifests when not empty.
	ManifestDir string
}

type DefaultsSettings struct {
	Verbosity int
}

// DefaultSettings provides sane defaults if rootplot.yaml is missing or
// partial.
func DefaultSettings() Settings {
	return Settings{
		Canvas:   CanvasSettings{Width: 1000, Height: 1000},
		Defaults: DefaultsSettings{Verbosity: 1},
	}
}

// ProjectSpec describes a project directory to initialize.
type ProjectSpec struct {
	Root string
}
