package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/infra/config"
	"github.com/aalvaropc/rootplot/internal/infra/figstore"
	"github.com/aalvaropc/rootplot/internal/infra/hplotrender"
	"github.com/aalvaropc/rootplot/internal/infra/logger"
	"github.com/aalvaropc/rootplot/internal/infra/runstore"
	"github.com/aalvaropc/rootplot/internal/infra/sources"
	"github.com/aalvaropc/rootplot/internal/ports"
	"github.com/aalvaropc/rootplot/internal/usecase"
)

type runOptions struct {
	fast     int
	jobs     []string
	manifest string
	format   string
}

func runPlots(cmd *cobra.Command, g *globalFlags, opts *runOptions, configPath string) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}

	proj, err := loadProject(configPath)
	if err != nil {
		return err
	}
	defer setupLogging(cmd, g, proj.verbosity(cmd, g))()

	renderer, err := hplotrender.New()
	if err != nil {
		return err
	}

	var store ports.ArtifactStore
	if dir := proj.manifestDir(opts.manifest); dir != "" {
		store = runstore.NewJSONStore(dir, runstore.WithIndex(true))
	}

	uc := usecase.NewRunPlots(
		config.NewLoader(),
		sources.NewRegistry(),
		renderer,
		figstore.New(),
		store,
		usecase.WithLogger(logger.L()),
		usecase.WithSettings(proj.settings),
		usecase.WithFast(opts.fast > 0),
		usecase.WithJobFilter(opts.jobs...),
	)

	run, runID, err := uc.Execute(cmd.Context(), configPath)
	if perr := printRun(cmd.OutOrStdout(), run, runID, opts.format); perr != nil && err == nil {
		err = perr
	}
	return err
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	}
	return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
}

func printRun(w io.Writer, run domain.RunArtifact, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"run_id": runID,
			"run":    run,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyRun(w, run, runID)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunArtifact, runID string) {
	total := run.FinishedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.FinishedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Config:   %s\n", run.ConfigPath)
	fmt.Fprintf(w, "Started:  %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", total.Round(time.Millisecond))
	if runID != "" {
		fmt.Fprintf(w, "Run ID:   %s\n", runID)
	}
	fmt.Fprintln(w)

	for _, j := range run.Jobs {
		status := "OK"
		if j.Failed() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "- [%s] %s (%d input(s), %d figure(s))\n", status, j.Name, j.Inputs, len(j.Groups))
		if j.Comment != "" {
			fmt.Fprintf(w, "  %s\n", j.Comment)
		}
		if j.Error != "" {
			fmt.Fprintf(w, "  error: %s\n", j.Error)
		}
		for _, f := range j.Files() {
			fmt.Fprintf(w, "    %s\n", f)
		}
	}

	if len(run.Jobs) > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d file(s) written\n", run.FileCount())
	if run.Error != "" {
		fmt.Fprintf(w, "error: %s\n", run.Error)
	}
}
