package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
)

// ValidateConfig checks a config document without rendering: the jobs
// load and map, the styling maps cover every input and every input file
// and folder can be opened.
type ValidateConfig struct {
	jobs   ports.JobLoader
	source ports.ObjectSource
}

func NewValidateConfig(jl ports.JobLoader, src ports.ObjectSource) *ValidateConfig {
	return &ValidateConfig{jobs: jl, source: src}
}

// Execute returns the jobs found and every problem, joined.
func (uc *ValidateConfig) Execute(ctx context.Context, configPath string) ([]domain.Job, error) {
	jobs, err := uc.jobs.LoadJobs(configPath)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return jobs, err
		}
		if err := job.CheckStyleMaps(); err != nil {
			errs = append(errs, err)
		}
		for _, in := range job.Inputs {
			if err := uc.checkInput(in); err != nil {
				errs = append(errs, fmt.Errorf("job %q input %q: %w", job.Name, in.Key, err))
			}
		}
	}
	return jobs, errors.Join(errs...)
}

func (uc *ValidateConfig) checkInput(in domain.InputSpec) error {
	arc, err := uc.source.Open(in.Filename)
	if err != nil {
		return err
	}
	defer arc.Close()

	_, err = arc.Container(in.Folder)
	return err
}
