package usecase

import (
	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
)

// ListObjects lists the keys of one container of a data file.
type ListObjects struct {
	source ports.ObjectSource
}

func NewListObjects(src ports.ObjectSource) *ListObjects {
	return &ListObjects{source: src}
}

// Execute lists folder. Only the highest cycle of each object is kept
// unless all is set.
func (uc *ListObjects) Execute(file, folder string, all bool) ([]domain.KeyInfo, error) {
	arc, err := uc.source.Open(file)
	if err != nil {
		return nil, err
	}
	defer arc.Close()

	dir, err := arc.Container(folder)
	if err != nil {
		return nil, err
	}
	if all {
		return dir.Keys(), nil
	}
	return domain.LatestKeys(dir.Keys()), nil
}
