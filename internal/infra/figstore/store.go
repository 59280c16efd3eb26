// Package figstore writes rendered canvases to disk, one file per format.
package figstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
)

type Store struct {
	dirMode os.FileMode
}

var _ ports.FigureStore = (*Store)(nil)

type Option func(*Store)

// WithDirMode sets the permissions of created output directories.
func WithDirMode(m os.FileMode) Option {
	return func(s *Store) { s.dirMode = m }
}

func New(opts ...Option) *Store {
	s := &Store{dirMode: 0o755}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveFigure writes <dir>/<name>.<ext> for every file type, creating dir
// if absent. Each file is written to a temporary name and renamed.
func (s *Store) SaveFigure(c ports.Canvas, dir, name string, fileTypes []string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.OpError{
			Op:   "figstore.save",
			Kind: domain.KindInvalidConfig,
			Path: dir,
			Err:  fmt.Errorf("empty output name: %w", domain.ErrInvalidConfig),
		}
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, s.dirMode); err != nil {
		return nil, &domain.OpError{Op: "figstore.mkdir", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	written := make([]string, 0, len(fileTypes))
	for _, ft := range fileTypes {
		ext := strings.ToLower(strings.TrimPrefix(ft, "."))
		path := filepath.Join(dir, name+"."+ext)
		// keep the real extension last so the encoder picks the format
		tmp := filepath.Join(dir, "."+name+".tmp."+ext)

		if err := c.WriteFile(tmp); err != nil {
			_ = os.Remove(tmp)
			return written, &domain.OpError{Op: "figstore.write", Kind: domain.KindExecution, Path: path, Err: err}
		}
		if err := os.Rename(tmp, path); err != nil {
			_ = os.Remove(tmp)
			return written, &domain.OpError{Op: "figstore.rename", Kind: domain.KindExecution, Path: path, Err: err}
		}
		written = append(written, path)
	}
	return written, nil
}
