// Package sources picks the archive reader for a data file by extension.
package sources

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/infra/rootfile"
	"github.com/aalvaropc/rootplot/internal/infra/sqlarchive"
	"github.com/aalvaropc/rootplot/internal/infra/yamlarchive"
	"github.com/aalvaropc/rootplot/internal/ports"
)

// Opener opens one kind of archive.
type Opener func(path string) (ports.Archive, error)

// Registry maps lower-case file extensions to openers.
type Registry struct {
	openers map[string]Opener
}

var _ ports.ObjectSource = (*Registry)(nil)

type Option func(*Registry)

// WithOpener registers or replaces the opener for ext (".root", ".db", ...).
func WithOpener(ext string, o Opener) Option {
	return func(r *Registry) { r.openers[normExt(ext)] = o }
}

// NewRegistry returns a registry with the built-in readers.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{openers: map[string]Opener{}}

	openROOT := func(p string) (ports.Archive, error) {
		a, err := rootfile.Open(p)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
	openYAML := func(p string) (ports.Archive, error) {
		a, err := yamlarchive.Open(p)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
	openSQL := func(p string) (ports.Archive, error) {
		a, err := sqlarchive.Open(p)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	r.openers[".root"] = openROOT
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		r.openers[ext] = openYAML
	}
	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		r.openers[ext] = openSQL
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Supports reports whether path has a registered extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.openers[normExt(filepath.Ext(path))]
	return ok
}

// Extensions lists the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.openers))
	for ext := range r.openers {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Open checks that path exists and dispatches on its extension.
func (r *Registry) Open(path string) (ports.Archive, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &domain.OpError{Op: "sources.open", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	ext := normExt(filepath.Ext(path))
	open, ok := r.openers[ext]
	if !ok {
		return nil, &domain.OpError{
			Op:   "sources.open",
			Kind: domain.KindUnsupported,
			Path: path,
			Err:  fmt.Errorf("no reader for %q files: %w", ext, domain.ErrUnsupported),
		}
	}
	return open(path)
}

func normExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
