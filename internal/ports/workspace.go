package ports

import "github.com/aalvaropc/rootplot/internal/domain"

// ProjectInitializer writes the files of a new project and returns the
// ones it created.
type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) ([]string, error)
}

// SettingsLoader reads project settings from a project root.
type SettingsLoader interface {
	LoadSettings(root string) (domain.Settings, error)
}
