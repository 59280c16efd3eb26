package sqlarchive

import (
	"database/sql"
	"encoding/json"
	"path"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/infra/objcodec"
	"github.com/aalvaropc/rootplot/internal/ports"
)

// Writer fills an archive database.
type Writer struct {
	db   *sql.DB
	path string
}

var _ ports.ArchiveWriter = (*Writer)(nil)

// Create opens or creates an archive at p and applies the schema.
func Create(p string) (*Writer, error) {
	db, err := sql.Open(driverName, p)
	if err != nil {
		return nil, &domain.OpError{Op: "sqlarchive.create", Kind: domain.KindExecution, Path: p, Err: err}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, &domain.OpError{Op: "sqlarchive.create", Kind: domain.KindExecution, Path: p, Err: err}
	}
	return &Writer{db: db, path: p}, nil
}

// PutFolder records folder and all of its parents.
func (w *Writer) PutFolder(folder string) error {
	folder = cleanFolder(folder)
	for folder != "" {
		parent := path.Dir(folder)
		if parent == "." {
			parent = ""
		}
		if _, err := w.db.Exec(`INSERT OR IGNORE INTO folders (path, parent) VALUES (?, ?)`, folder, parent); err != nil {
			return w.execErr(err)
		}
		folder = parent
	}
	return nil
}

// PutObject stores obj under folder with the given cycle, replacing an
// existing entry of the same cycle.
func (w *Writer) PutObject(folder string, obj domain.Object, cycle int) error {
	folder = cleanFolder(folder)
	if err := w.PutFolder(folder); err != nil {
		return err
	}
	if cycle <= 0 {
		cycle = 1
	}
	b, err := json.Marshal(objcodec.Encode(obj))
	if err != nil {
		return w.execErr(err)
	}
	_, err = w.db.Exec(
		`INSERT OR REPLACE INTO objects (folder, name, cycle, class, payload) VALUES (?, ?, ?, ?, ?)`,
		folder, obj.Name, cycle, obj.Class, string(b),
	)
	if err != nil {
		return w.execErr(err)
	}
	return nil
}

func (w *Writer) Close() error { return w.db.Close() }

func (w *Writer) execErr(err error) error {
	return &domain.OpError{Op: "sqlarchive.write", Kind: domain.KindExecution, Path: w.path, Err: err}
}
