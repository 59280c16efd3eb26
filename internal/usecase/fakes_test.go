package usecase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
)

// --- fakes shared by the use case tests ---

type fakeEntry struct {
	key domain.KeyInfo
	obj domain.Object
	err error
}

// memSource serves archives from memory: file -> folder -> entries.
type memSource struct {
	files  map[string]map[string][]fakeEntry
	opened []string
}

func (s *memSource) Open(p string) (ports.Archive, error) {
	s.opened = append(s.opened, p)
	folders, ok := s.files[p]
	if !ok {
		return nil, &domain.OpError{Op: "mem.open", Kind: domain.KindNotFound, Path: p, Err: domain.ErrNotFound}
	}
	return memArchive{folders: folders}, nil
}

type memArchive struct {
	folders map[string][]fakeEntry
}

func (a memArchive) Container(p string) (ports.Container, error) {
	entries, ok := a.folders[p]
	if !ok {
		return nil, &domain.OpError{Op: "mem.container", Kind: domain.KindNotFound, Path: p, Err: domain.ErrNotFound}
	}
	return memContainer(entries), nil
}

func (memArchive) Close() error { return nil }

type memContainer []fakeEntry

func (c memContainer) Keys() []domain.KeyInfo {
	out := make([]domain.KeyInfo, 0, len(c))
	for _, e := range c {
		out = append(out, e.key)
	}
	return out
}

func (c memContainer) Object(name string, cycle int) (domain.Object, error) {
	var best *fakeEntry
	for i := range c {
		e := &c[i]
		if e.key.Name != name {
			continue
		}
		if cycle > 0 && e.key.Cycle == cycle {
			best = e
			break
		}
		if cycle <= 0 && (best == nil || e.key.Cycle > best.key.Cycle) {
			best = e
		}
	}
	if best == nil {
		return domain.Object{}, domain.ErrNotFound
	}
	if best.err != nil {
		return domain.Object{}, best.err
	}
	obj := best.obj
	obj.Name = name
	obj.Class = best.key.Class
	return obj, nil
}

func h1(name string, contents ...float64) fakeEntry {
	h := domain.NewHist1D(domain.UniformEdges(len(contents), 0, float64(len(contents))))
	copy(h.Contents, contents)
	return fakeEntry{key: domain.KeyInfo{Name: name, Class: "TH1F", Cycle: 1}, obj: domain.Object{H1: h}}
}

func dirEntry(name string) fakeEntry {
	return fakeEntry{key: domain.KeyInfo{Name: name, Class: domain.ClassDirectory, Cycle: 1}}
}

type fakeJobLoader struct {
	jobs []domain.Job
	err  error
}

func (f fakeJobLoader) LoadJobs(_ string) ([]domain.Job, error) { return f.jobs, f.err }

type fakeCanvas struct{ fig domain.Figure }

func (c fakeCanvas) WriteFile(p string) error {
	return os.WriteFile(p, []byte(c.fig.Name), 0o644)
}

type fakeRenderer struct {
	figs []domain.Figure
}

func (r *fakeRenderer) Render(fig domain.Figure) (ports.Canvas, error) {
	r.figs = append(r.figs, fig)
	return fakeCanvas{fig: fig}, nil
}

// dirStore records the paths it would write under a temp root.
type dirStore struct {
	root string
}

func (s dirStore) SaveFigure(c ports.Canvas, dir, name string, types []string) ([]string, error) {
	full := filepath.Join(s.root, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		return nil, err
	}
	var out []string
	for _, t := range types {
		p := filepath.Join(full, name+"."+t)
		if err := c.WriteFile(p); err != nil {
			return out, fmt.Errorf("write %s: %w", p, err)
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeStore struct {
	saved bool
	last  domain.RunArtifact
}

func (s *fakeStore) SaveRun(run domain.RunArtifact) (string, error) {
	s.saved = true
	s.last = run
	return "run-123", nil
}

// errStore always fails SaveRun.
type errStore struct{ err error }

func (s *errStore) SaveRun(_ domain.RunArtifact) (string, error) { return "", s.err }

var (
	_ ports.ObjectSource  = (*memSource)(nil)
	_ ports.JobLoader     = fakeJobLoader{}
	_ ports.Renderer      = (*fakeRenderer)(nil)
	_ ports.FigureStore   = dirStore{}
	_ ports.ArtifactStore = (*fakeStore)(nil)
)
