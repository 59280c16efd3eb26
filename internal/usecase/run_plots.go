package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aalvaropc/rootplot/internal/app/template"
	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
	"github.com/aalvaropc/rootplot/internal/usecase/compose"
)

// RunPlots executes every job of a config document: fetch, style,
// compose, render and write.
type RunPlots struct {
	jobs     ports.JobLoader
	source   ports.ObjectSource
	renderer ports.Renderer
	figures  ports.FigureStore
	store    ports.ArtifactStore

	log      *slog.Logger
	settings domain.Settings
	skipFits bool
	only     map[string]bool
}

type RunOption func(*RunPlots)

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunPlots) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithSettings sets the canvas size.
func WithSettings(s domain.Settings) RunOption {
	return func(uc *RunPlots) { uc.settings = s }
}

// WithFast skips Gaussian fits.
func WithFast(fast bool) RunOption {
	return func(uc *RunPlots) { uc.skipFits = fast }
}

// WithJobFilter restricts the run to the named jobs. Empty runs all.
func WithJobFilter(names ...string) RunOption {
	return func(uc *RunPlots) {
		if len(names) == 0 {
			return
		}
		uc.only = make(map[string]bool, len(names))
		for _, n := range names {
			uc.only[n] = true
		}
	}
}

// NewRunPlots wires the run. store may be nil, in which case no manifest
// is written.
func NewRunPlots(jl ports.JobLoader, src ports.ObjectSource, r ports.Renderer, fs ports.FigureStore, store ports.ArtifactStore, opts ...RunOption) *RunPlots {
	uc := &RunPlots{
		jobs:     jl,
		source:   src,
		renderer: r,
		figures:  fs,
		store:    store,
		log:      slog.Default(),
		settings: domain.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the config at configPath. The first failing job stops the
// run; files written by earlier jobs are kept. The returned id is the
// manifest id, or "" when no manifest was written.
func (uc *RunPlots) Execute(ctx context.Context, configPath string) (domain.RunArtifact, string, error) {
	run := domain.RunArtifact{
		ConfigPath: configPath,
		StartedAt:  time.Now(),
	}

	jobs, err := uc.jobs.LoadJobs(configPath)
	if err != nil {
		return uc.finish(run, err)
	}
	if err := uc.checkFilter(jobs); err != nil {
		return uc.finish(run, err)
	}

	for _, job := range jobs {
		if len(uc.only) > 0 && !uc.only[job.Name] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return uc.finish(run, err)
		}

		res, err := uc.runJob(ctx, job)
		run.Jobs = append(run.Jobs, res)
		if err != nil {
			return uc.finish(run, err)
		}
	}

	return uc.finish(run, nil)
}

func (uc *RunPlots) checkFilter(jobs []domain.Job) error {
	known := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		known[j.Name] = true
	}
	for name := range uc.only {
		if !known[name] {
			return &domain.OpError{
				Op:   "usecase.run",
				Kind: domain.KindNotFound,
				Path: name,
				Err:  fmt.Errorf("job %q: %w", name, domain.ErrNotFound),
			}
		}
	}
	return nil
}

func (uc *RunPlots) finish(run domain.RunArtifact, runErr error) (domain.RunArtifact, string, error) {
	run.FinishedAt = time.Now()
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if uc.store == nil {
		return run, "", runErr
	}

	id, err := uc.store.SaveRun(run)
	if err != nil {
		if runErr != nil {
			uc.log.Error("manifest.save_failed", "error", err)
			return run, "", runErr
		}
		return run, "", err
	}
	run.ID = id
	return run, id, runErr
}

func (uc *RunPlots) runJob(ctx context.Context, job domain.Job) (domain.JobResult, error) {
	res := domain.JobResult{Name: job.Name, Comment: job.Comment, Inputs: len(job.Inputs)}
	uc.log.Info("job.start", "job", job.Name, "comment", job.Comment, "inputs", len(job.Inputs))

	fail := func(err error) (domain.JobResult, error) {
		res.Error = err.Error()
		uc.log.Error("job.failed", "job", job.Name, "error", err)
		return res, err
	}

	if err := job.CheckStyleMaps(); err != nil {
		return fail(err)
	}

	set, err := FetchObjects(uc.source, job, uc.log)
	if err != nil {
		return fail(err)
	}
	if set.Len() == 0 {
		uc.log.Warn("job.empty", "job", job.Name)
	}

	for _, name := range set.Names() {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		objs := set.Group(name)
		ApplyStyles(job.Plot, objs)

		files, err := uc.drawGroup(job, name, objs)
		res.Groups = append(res.Groups, domain.GroupResult{Name: name, Objects: len(objs), Files: files})
		if err != nil {
			return fail(err)
		}
	}

	uc.log.Info("job.done", "job", job.Name, "groups", len(res.Groups), "files", len(res.Files()))
	return res, nil
}

func (uc *RunPlots) drawGroup(job domain.Job, name string, objs []domain.Object) ([]string, error) {
	fig, err := compose.Figure(job, name, objs, compose.Options{
		Width:    uc.settings.Canvas.Width,
		Height:   uc.settings.Canvas.Height,
		SkipFits: uc.skipFits,
		Logger:   uc.log,
	})
	if err != nil {
		return nil, err
	}

	canvas, err := uc.renderer.Render(fig)
	if err != nil {
		return nil, err
	}

	vars := map[string]string{template.VarJob: job.Name, template.VarName: name}
	dir, err := template.RenderString(job.Output.Directory, vars)
	if err != nil {
		return nil, err
	}
	base := job.Output.FilenamePlot
	if job.Output.UsesObjectName() {
		base = name
	}
	base, err = template.RenderString(base, vars)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("figure.write", "job", job.Name, "dir", dir, "name", base, "types", job.Output.FileTypes)
	files, err := uc.figures.SaveFigure(canvas, dir, base, job.Output.FileTypes)
	for _, f := range files {
		uc.log.Info("figure.saved", "job", job.Name, "file", f)
	}
	return files, err
}
