// Package sqlarchive stores histogram archives in SQLite. Folders are rows
// keyed by slash-separated path ("" is the root); objects carry the same
// payload as the YAML archive, serialized as JSON.
package sqlarchive

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/infra/objcodec"
	"github.com/aalvaropc/rootplot/internal/ports"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const driverName = "sqlite"

// Archive is a read-only view of an archive database.
type Archive struct {
	db   *sql.DB
	path string
}

var _ ports.Archive = (*Archive)(nil)

// Open opens an existing archive. A missing file is not created.
func Open(p string) (*Archive, error) {
	if _, err := os.Stat(p); err != nil {
		return nil, &domain.OpError{Op: "sqlarchive.open", Kind: domain.KindNotFound, Path: p, Err: err}
	}
	db, err := sql.Open(driverName, p)
	if err != nil {
		return nil, &domain.OpError{Op: "sqlarchive.open", Kind: domain.KindExecution, Path: p, Err: err}
	}

	var n int
	err = db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN ('folders', 'objects')`).Scan(&n)
	if err == nil && n != 2 {
		err = fmt.Errorf("missing archive tables: %w", domain.ErrInvalidConfig)
	}
	if err != nil {
		_ = db.Close()
		return nil, &domain.OpError{Op: "sqlarchive.open", Kind: domain.KindInvalidConfig, Path: p, Err: err}
	}
	return &Archive{db: db, path: p}, nil
}

func (a *Archive) Close() error { return a.db.Close() }

// Container loads the listing of one folder.
func (a *Archive) Container(folder string) (ports.Container, error) {
	folder = cleanFolder(folder)
	if folder != "" {
		var one int
		err := a.db.QueryRow(`SELECT 1 FROM folders WHERE path = ?`, folder).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.OpError{
				Op:   "sqlarchive.container",
				Kind: domain.KindNotFound,
				Path: a.path + ":" + folder,
				Err:  fmt.Errorf("folder %q: %w", folder, domain.ErrNotFound),
			}
		}
		if err != nil {
			return nil, a.queryErr(err)
		}
	}

	keys, err := a.objectKeys(folder)
	if err != nil {
		return nil, a.queryErr(err)
	}
	subs, err := a.subFolders(folder)
	if err != nil {
		return nil, a.queryErr(err)
	}
	for _, s := range subs {
		keys = append(keys, domain.KeyInfo{Name: path.Base(s), Class: domain.ClassDirectory, Cycle: 1})
	}
	return &container{a: a, folder: folder, keys: keys}, nil
}

func (a *Archive) objectKeys(folder string) ([]domain.KeyInfo, error) {
	rows, err := a.db.Query(`SELECT name, class, cycle FROM objects WHERE folder = ? ORDER BY id`, folder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.KeyInfo
	for rows.Next() {
		var k domain.KeyInfo
		if err := rows.Scan(&k.Name, &k.Class, &k.Cycle); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (a *Archive) subFolders(folder string) ([]string, error) {
	rows, err := a.db.Query(`SELECT path FROM folders WHERE parent = ? AND path <> '' ORDER BY path`, folder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (a *Archive) queryErr(err error) error {
	return &domain.OpError{Op: "sqlarchive.query", Kind: domain.KindExecution, Path: a.path, Err: err}
}

type container struct {
	a      *Archive
	folder string
	keys   []domain.KeyInfo
}

func (c *container) Keys() []domain.KeyInfo { return c.keys }

func (c *container) Object(name string, cycle int) (domain.Object, error) {
	var payload string
	err := c.a.db.QueryRow(
		`SELECT payload FROM objects WHERE folder = ? AND name = ? AND (? <= 0 OR cycle = ?)
		 ORDER BY cycle DESC LIMIT 1`,
		c.folder, name, cycle, cycle,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Object{}, &domain.OpError{
			Op:   "sqlarchive.object",
			Kind: domain.KindNotFound,
			Path: c.a.path,
			Err:  fmt.Errorf("object %q cycle %d: %w", name, cycle, domain.ErrNotFound),
		}
	}
	if err != nil {
		return domain.Object{}, c.a.queryErr(err)
	}

	p, err := objcodec.Parse([]byte(payload))
	if err != nil {
		return domain.Object{}, &domain.OpError{Op: "sqlarchive.object", Kind: domain.KindInvalidConfig, Path: c.a.path, Err: err}
	}
	return objcodec.Decode(name, p)
}

func cleanFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return ""
	}
	return path.Clean(folder)
}
