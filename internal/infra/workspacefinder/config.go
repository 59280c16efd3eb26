package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/rootplot/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadSettings loads rootplot.yaml from the project root and applies defaults.
func LoadSettings(root string) (domain.Settings, error) {
	return loadSettingsFile(filepath.Join(root, SettingsFile))
}

func loadSettingsFile(path string) (domain.Settings, error) {
	cfg := domain.DefaultSettings()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadsettings",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlSettings
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadsettings",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	c := y.Rootplot
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadsettings",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("canvas size must be positive: %w", domain.ErrInvalidConfig),
		}
	}
	if c.Canvas.Width > 0 {
		cfg.Canvas.Width = c.Canvas.Width
	}
	if c.Canvas.Height > 0 {
		cfg.Canvas.Height = c.Canvas.Height
	}
	if c.Paths.ManifestDir != "" {
		dir := c.Paths.ManifestDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(path), dir)
		}
		cfg.Paths.ManifestDir = dir
	}
	if c.Defaults.Verbosity != nil {
		cfg.Defaults.Verbosity = *c.Defaults.Verbosity
	}

	return cfg, nil
}

type yamlSettings struct {
	Rootplot struct {
		Canvas struct {
			Width  int `yaml:"width"`
			Height int `yaml:"height"`
		} `yaml:"canvas"`

		Paths struct {
			ManifestDir string `yaml:"manifest_dir"`
		} `yaml:"paths"`

		Defaults struct {
			Verbosity *int `yaml:"verbosity"`
		} `yaml:"defaults"`
	} `yaml:"rootplot"`
}
