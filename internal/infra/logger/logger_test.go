package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFor(t *testing.T) {
	cases := map[int]slog.Level{
		-1: slog.LevelWarn,
		0:  slog.LevelWarn,
		1:  slog.LevelInfo,
		2:  slog.LevelDebug,
		5:  slog.LevelDebug,
	}
	for v, want := range cases {
		if got := LevelFor(v); got != want {
			t.Errorf("LevelFor(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Verbosity: 1, Writer: &buf})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer cleanup()

	L().Info("job.start", "job", "eff")
	L().Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "msg=job.start") || !strings.Contains(out, "job=eff") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, "hidden") || strings.Contains(out, "time=") {
		t.Fatalf("debug lines and timestamps must be dropped: %q", out)
	}
	if Path() != "" {
		t.Fatalf("text logging has no file")
	}
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rootplot.log")
	cleanup, err := Setup(Config{Verbosity: 2, File: path})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	L().Info("object.loaded", "name", "effVsPt")
	if Path() != path {
		t.Fatalf("Path() = %q, want %q", Path(), path)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"object.loaded"`) {
		t.Fatalf("expected JSON line, got %s", b)
	}
	if Path() != "" {
		t.Fatalf("cleanup must reset the path")
	}
}
