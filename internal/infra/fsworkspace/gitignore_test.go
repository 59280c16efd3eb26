package fsworkspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureGitignore(t *testing.T) {
	cases := []struct {
		name     string
		existing *string
		want     string
		changed  bool
	}{
		{
			name:    "creates file",
			want:    "# rootplot\nplots/\nruns/\n.rootplot/\n",
			changed: true,
		},
		{
			name:     "appends missing entries once",
			existing: ptr("node_modules/\n# rootplot\nruns/"),
			want:     "node_modules/\n# rootplot\nruns/\n\nplots/\n.rootplot/\n",
			changed:  true,
		},
		{
			name:     "adds header to foreign file",
			existing: ptr("bin/\n"),
			want:     "bin/\n\n# rootplot\nplots/\nruns/\n.rootplot/\n",
			changed:  true,
		},
		{
			name:     "complete file is left alone",
			existing: ptr("plots/\nruns/\n.rootplot/\n"),
			want:     "plots/\nruns/\n.rootplot/\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmp := t.TempDir()
			path := filepath.Join(tmp, ".gitignore")
			if tc.existing != nil {
				if err := os.WriteFile(path, []byte(*tc.existing), 0o644); err != nil {
					t.Fatalf("write .gitignore: %v", err)
				}
			}

			changed, err := ensureGitignore(tmp)
			if err != nil {
				t.Fatalf("ensureGitignore error: %v", err)
			}
			if changed != tc.changed {
				t.Fatalf("changed = %v, want %v", changed, tc.changed)
			}

			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read .gitignore: %v", err)
			}
			if string(b) != tc.want {
				t.Fatalf("got:\n%q\nwant:\n%q", string(b), tc.want)
			}
		})
	}
}

func ptr(s string) *string { return &s }
