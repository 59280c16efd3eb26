// Package fsworkspace lays out a new rootplot project on disk.
package fsworkspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
)

// projectDirs are created even when every template file already exists.
var projectDirs = []string{"data", "plots", filepath.Join(".rootplot", "logs")}

type Initializer struct {
	templates fs.FS
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

func NewInitializer() *Initializer {
	sub, _ := fs.Sub(templatesFS, "templates")
	return &Initializer{templates: sub}
}

// Init writes rootplot.yaml, an example plots.json with its data file and
// the .gitignore entries. Existing files are kept unless force is set. It
// returns the files it wrote, relative to the project root.
func (i *Initializer) Init(spec domain.ProjectSpec, force bool) ([]string, error) {
	root := filepath.Clean(spec.Root)

	for _, d := range projectDirs {
		p := filepath.Join(root, d)
		if err := os.MkdirAll(p, 0o755); err != nil {
			return nil, initErr(p, err)
		}
	}

	var written []string
	changed, err := ensureGitignore(root)
	if err != nil {
		return nil, initErr(root, err)
	}
	if changed {
		written = append(written, ".gitignore")
	}

	err = fs.WalkDir(i.templates, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ok, err := i.writeTemplate(root, p, force)
		if ok {
			written = append(written, p)
		}
		return err
	})
	return written, err
}

// writeTemplate copies one embedded file and reports whether it wrote it.
func (i *Initializer) writeTemplate(root, name string, force bool) (bool, error) {
	dst := filepath.Join(root, filepath.FromSlash(name))
	if _, err := os.Stat(dst); err == nil && !force {
		return false, nil
	}

	b, err := fs.ReadFile(i.templates, name)
	if err != nil {
		return false, initErr(name, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, initErr(dst, err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return false, initErr(dst, err)
	}
	return true, nil
}

func initErr(path string, err error) error {
	return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: path, Err: err}
}

const gitignoreHeader = "# rootplot"

// gitignoreEntries keep rendered figures, manifests and logs out of git.
var gitignoreEntries = []string{"plots/", "runs/", ".rootplot/"}

// ensureGitignore appends the missing entries under a header and reports
// whether the file changed.
func ensureGitignore(root string) (bool, error) {
	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	existing := string(b)

	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			present[t] = true
		}
	}

	var missing []string
	for _, e := range gitignoreEntries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return false, nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	if !present[gitignoreHeader] {
		out.WriteString(gitignoreHeader + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}
	return true, os.WriteFile(path, []byte(out.String()), 0o644)
}
