package config

import (
	"fmt"
	"os"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
	"gopkg.in/yaml.v3"
)

// Loader reads plot config documents. JSON is parsed as YAML so job order
// follows the document.
type Loader struct {
	schema   *Schema
	noSchema bool
}

var _ ports.JobLoader = (*Loader)(nil)

type Option func(*Loader)

// WithoutSchema skips CUE validation; the mapper still checks every field.
func WithoutSchema() Option {
	return func(l *Loader) { l.noSchema = true }
}

// WithSchema uses a precompiled schema.
func WithSchema(s *Schema) Option {
	return func(l *Loader) { l.schema = s }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadJobs returns the jobs of the document at path in document order.
func (l *Loader) LoadJobs(path string) ([]domain.Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_jobs",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, invalidDoc(path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, invalidDoc(path, fmt.Errorf("empty document: %w", domain.ErrInvalidConfig))
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, invalidDoc(path, fmt.Errorf("top level must map job names to jobs: %w", domain.ErrInvalidConfig))
	}

	schema, err := l.schemaFor()
	if err != nil {
		return nil, invalidDoc(path, err)
	}

	jobs := make([]domain.Job, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		node := root.Content[i+1]

		if line, dup := seen[name]; dup {
			return nil, invalidField(path, "jobs."+name,
				fmt.Sprintf("duplicate job name (line %d, first defined on line %d)", root.Content[i].Line, line))
		}
		seen[name] = root.Content[i].Line

		if schema != nil {
			var raw any
			if err := node.Decode(&raw); err != nil {
				return nil, invalidField(path, "jobs."+name, err.Error())
			}
			if err := schema.Validate(raw); err != nil {
				return nil, invalidField(path, "jobs."+name, err.Error())
			}
		}

		var yj YAMLJob
		if err := node.Decode(&yj); err != nil {
			return nil, invalidField(path, "jobs."+name, err.Error())
		}
		job, err := MapJob(path, name, yj)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (l *Loader) schemaFor() (*Schema, error) {
	if l.noSchema {
		return nil, nil
	}
	if l.schema == nil {
		s, err := NewSchema()
		if err != nil {
			return nil, err
		}
		l.schema = s
	}
	return l.schema, nil
}

func invalidDoc(path string, err error) error {
	return &domain.OpError{
		Op:   "config.load_jobs",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}
