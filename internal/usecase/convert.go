package usecase

import (
	"log/slog"
	"path"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
)

// ArchiveCreator opens a new archive for writing.
type ArchiveCreator func(path string) (ports.ArchiveWriter, error)

// Convert copies every decodable object of a data file, folder tree
// included, into a new archive.
type Convert struct {
	source ports.ObjectSource
	create ArchiveCreator
	log    *slog.Logger
}

func NewConvert(src ports.ObjectSource, create ArchiveCreator, log *slog.Logger) *Convert {
	if log == nil {
		log = slog.Default()
	}
	return &Convert{source: src, create: create, log: log}
}

// Execute copies src into dst and returns the number of objects written.
func (uc *Convert) Execute(src, dst string) (int, error) {
	arc, err := uc.source.Open(src)
	if err != nil {
		return 0, err
	}
	defer arc.Close()

	w, err := uc.create(dst)
	if err != nil {
		return 0, err
	}

	n, err := uc.copyFolder(arc, w, "")
	if cerr := w.Close(); err == nil && cerr != nil {
		err = cerr
	}
	return n, err
}

func (uc *Convert) copyFolder(arc ports.Archive, w ports.ArchiveWriter, folder string) (int, error) {
	dir, err := arc.Container(folder)
	if err != nil {
		return 0, err
	}
	if folder != "" {
		if err := w.PutFolder(folder); err != nil {
			return 0, err
		}
	}

	n := 0
	for _, key := range dir.Keys() {
		if domain.IsDirectoryClass(key.Class) {
			sub, err := uc.copyFolder(arc, w, path.Join(folder, key.Name))
			n += sub
			if err != nil {
				return n, err
			}
			continue
		}

		obj, err := dir.Object(key.Name, key.Cycle)
		if err != nil {
			if domain.IsKind(err, domain.KindUnsupported) {
				uc.log.Warn("object.skipped", "folder", folder, "object", key.Name, "class", key.Class, "error", err)
				continue
			}
			return n, err
		}
		if err := w.PutObject(folder, obj, key.Cycle); err != nil {
			return n, err
		}
		uc.log.Debug("object.copied", "folder", folder, "object", key.Name)
		n++
	}
	return n, nil
}
