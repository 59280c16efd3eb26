package ports

import "github.com/aalvaropc/rootplot/internal/domain"

// ObjectSource opens data files holding plottable objects.
type ObjectSource interface {
	Open(path string) (Archive, error)
}

// Archive is an open data file.
type Archive interface {
	// Container looks up a directory-like container; "" is the root.
	Container(path string) (Container, error)
	Close() error
}

// Container lists and decodes the objects of one directory. Objects are
// decoded into memory independent of the archive's lifetime.
type Container interface {
	// Keys lists every cycle of every object, then sub-directories.
	Keys() []domain.KeyInfo
	// Object decodes one cycle of name; cycle <= 0 picks the highest.
	Object(name string, cycle int) (domain.Object, error)
}

// ArchiveWriter stores objects into a new archive.
type ArchiveWriter interface {
	PutFolder(folder string) error
	PutObject(folder string, obj domain.Object, cycle int) error
	Close() error
}
