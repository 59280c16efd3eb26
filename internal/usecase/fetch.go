package usecase

import (
	"log/slog"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
)

// FetchObjects loads every object the job's inputs resolve to, grouped by
// logical name. A file or container that cannot be opened is fatal;
// unmatched names are skipped silently and undecodable classes with a
// warning.
func FetchObjects(src ports.ObjectSource, job domain.Job, log *slog.Logger) (*domain.ObjectSet, error) {
	if log == nil {
		log = slog.Default()
	}
	set := domain.NewObjectSet()

	for i, in := range job.Inputs {
		if err := fetchInput(src, job, i, in, set, log); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func fetchInput(src ports.ObjectSource, job domain.Job, i int, in domain.InputSpec, set *domain.ObjectSet, log *slog.Logger) error {
	arc, err := src.Open(in.Filename)
	if err != nil {
		return err
	}
	defer arc.Close()

	dir, err := arc.Container(in.Folder)
	if err != nil {
		return err
	}

	for _, key := range domain.LatestKeys(dir.Keys()) {
		if !in.IsWildcard() && key.Name != in.Plot {
			continue
		}
		if domain.SkipName(key.Name) || domain.IsDirectoryClass(key.Class) {
			continue
		}

		tag := domain.FixedGroup
		if in.IsWildcard() {
			tag = key.Name
		}

		obj, err := dir.Object(key.Name, key.Cycle)
		if err != nil {
			if domain.IsKind(err, domain.KindUnsupported) {
				attrs := []any{
					"job", job.Name,
					"folder", in.Folder,
					"object", key.Name,
					"class", key.Class,
					"error", err,
				}
				if h := domain.SkipHint(key.Class); h != "" {
					attrs = append(attrs, "hint", h)
				}
				log.Warn("object.skipped", attrs...)
				continue
			}
			return err
		}

		obj.Input = i
		set.Add(tag, obj)
		log.Info("object.loaded",
			"job", job.Name,
			"folder", in.Folder,
			"object", key.Name,
			"class", obj.Class,
		)
	}
	return nil
}
