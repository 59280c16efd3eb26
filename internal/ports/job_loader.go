package ports

import "github.com/aalvaropc/rootplot/internal/domain"

// JobLoader loads plot jobs from a config document, in document order.
type JobLoader interface {
	LoadJobs(path string) ([]domain.Job, error)
}
