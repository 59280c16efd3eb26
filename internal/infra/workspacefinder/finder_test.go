package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/rootplot/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, "rootplot.yaml"), []byte("rootplot:\n  canvas:\n    width: 500\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}

	// A config file path resolves from its directory.
	cfgPath := filepath.Join(nested, "plots.json")
	if err := os.WriteFile(cfgPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write plots: %v", err)
	}
	gotRoot, settings, err := f.Resolve(cfgPath)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if gotRoot != root || settings.Canvas.Width != 500 {
		t.Fatalf("unexpected resolve result %s %+v", gotRoot, settings)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestResolve_DefaultsOutsideProject(t *testing.T) {
	root, settings, err := NewFinder().Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if root != "" {
		t.Fatalf("expected no root, got %s", root)
	}
	if settings != domain.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}
