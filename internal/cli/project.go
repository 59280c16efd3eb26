package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/infra/logger"
	"github.com/aalvaropc/rootplot/internal/infra/workspacefinder"
)

// project is the rootplot.yaml context of a config file. root is empty
// outside a project.
type project struct {
	root     string
	settings domain.Settings
}

// loadProject walks up from the directory of configPath.
func loadProject(configPath string) (project, error) {
	dir := "."
	if configPath != "" {
		dir = filepath.Dir(configPath)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return project{}, fmt.Errorf("resolve %q: %w", dir, err)
	}
	root, s, err := workspacefinder.NewFinder().Resolve(abs)
	if err != nil {
		return project{}, err
	}
	return project{root: root, settings: s}, nil
}

// manifestDir picks the flag, then the project setting relative to the
// project root. "" disables manifests.
func (p project) manifestDir(flag string) string {
	if d := strings.TrimSpace(flag); d != "" {
		return d
	}
	d := strings.TrimSpace(p.settings.Paths.ManifestDir)
	if d == "" || filepath.IsAbs(d) || p.root == "" {
		return d
	}
	return filepath.Join(p.root, d)
}

// verbosity prefers an explicit flag over the project default.
func (p project) verbosity(cmd *cobra.Command, g *globalFlags) int {
	if f := cmd.Flags().Lookup("verbosity"); f != nil && f.Changed {
		return g.verbosity
	}
	if p.root != "" {
		return p.settings.Defaults.Verbosity
	}
	return g.verbosity
}

func setupLogging(cmd *cobra.Command, g *globalFlags, verbosity int) func() {
	return setupLoggingTo(cmd, g, verbosity, cmd.ErrOrStderr())
}

// setupLoggingTo sends text logs to w. Setup failures are reported on
// stderr and leave logging disabled.
func setupLoggingTo(cmd *cobra.Command, g *globalFlags, verbosity int, w io.Writer) func() {
	cleanup, err := logger.Setup(logger.Config{
		Verbosity: verbosity,
		File:      g.logFile,
		Writer:    w,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
		return func() {}
	}
	return func() { _ = cleanup() }
}
