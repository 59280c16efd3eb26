package usecase

import (
	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/ports"
)

type InitProject struct {
	initializer ports.ProjectInitializer
}

func NewInitProject(initializer ports.ProjectInitializer) *InitProject {
	return &InitProject{initializer: initializer}
}

// Execute initializes root and returns the files written, relative to it.
func (uc *InitProject) Execute(root string, force bool) ([]string, error) {
	return uc.initializer.Init(domain.ProjectSpec{Root: root}, force)
}
