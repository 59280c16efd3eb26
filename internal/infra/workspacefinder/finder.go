package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
)

// SettingsFile marks a rootplot project root.
const SettingsFile = "rootplot.yaml"

// Finder locates a rootplot project root by searching for rootplot.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "rootplot.yaml"
}

var (
	_ ports.WorkspaceLocator = (*Finder)(nil)
	_ ports.SettingsLoader   = (*Finder)(nil)
)

func NewFinder() *Finder {
	return &Finder{ConfigFile: SettingsFile}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// LoadSettings reads the finder's settings file under root.
func (f *Finder) LoadSettings(root string) (domain.Settings, error) {
	return loadSettingsFile(filepath.Join(root, f.ConfigFile))
}

// Resolve finds the project above startDir and loads its settings. Outside
// a project it returns defaults and an empty root.
func (f *Finder) Resolve(startDir string) (string, domain.Settings, error) {
	root, err := f.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", domain.DefaultSettings(), nil
		}
		return "", domain.DefaultSettings(), err
	}
	s, err := f.LoadSettings(root)
	return root, s, err
}
