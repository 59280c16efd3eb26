package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var jobSchema string

// Schema validates raw job documents against the embedded CUE definition.
type Schema struct {
	ctx *cue.Context
	job cue.Value
}

// NewSchema compiles the embedded job schema.
func NewSchema() (*Schema, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(jobSchema, cue.Filename("schema.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile job schema: %w", err)
	}
	job := v.LookupPath(cue.ParsePath("#Job"))
	if err := job.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Job: %w", err)
	}
	return &Schema{ctx: ctx, job: job}, nil
}

// Validate checks one decoded job. The returned message lists every
// violation, one per line.
func (s *Schema) Validate(raw any) error {
	v := s.ctx.Encode(raw)
	if err := v.Err(); err != nil {
		return err
	}
	u := s.job.Unify(v)
	if err := u.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s", strings.TrimSpace(cueerrors.Details(err, nil)))
	}
	return nil
}
