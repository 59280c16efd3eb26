package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
	"github.com/google/uuid"
)

// JSONStore writes one manifest per run into a directory.
type JSONStore struct {
	dir        string
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: <dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDFunc replaces the random run id generator.
func WithIDFunc(f func() string) Option {
	return func(s *JSONStore) { s.newID = f }
}

func NewJSONStore(dir string, opts ...Option) *JSONStore {
	s := &JSONStore{
		dir:        dir,
		writeIndex: true,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

// SaveRun writes <ts>_<config-slug>.json and returns the run id. Runs
// without an id get a fresh UUID.
func (s *JSONStore) SaveRun(run domain.RunArtifact) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	if strings.TrimSpace(run.ID) == "" {
		run.ID = s.newID()
	}
	ts := run.StartedAt
	if ts.IsZero() {
		ts = s.now()
		run.StartedAt = ts
	}
	ts = ts.UTC()

	slug := slugify(strings.TrimSuffix(filepath.Base(run.ConfigPath), filepath.Ext(run.ConfigPath)))
	if slug == "" {
		slug = "run"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	path := filepath.Join(s.dir, filename)

	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(filename, run)
	}

	return run.ID, nil
}

func (s *JSONStore) appendIndex(filename string, run domain.RunArtifact) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Config    string    `json:"config"`
		StartedAt time.Time `json:"started_at"`
		Jobs      int       `json:"jobs"`
		Files     int       `json:"files"`
		Error     string    `json:"error,omitempty"`
	}
	line, err := json.Marshal(idx{
		ID:        run.ID,
		File:      filename,
		Config:    run.ConfigPath,
		StartedAt: run.StartedAt,
		Jobs:      len(run.Jobs),
		Files:     run.FileCount(),
		Error:     run.Error,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(s.dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
