package domain

import "time"

// GroupResult records one written figure.
type GroupResult struct {
	Name    string
	Objects int
	Files   []string
}

// JobResult records the outcome of one job.
type JobResult struct {
	Name    string
	Comment string
	Inputs  int
	Groups  []GroupResult
	Error   string
}

// Failed reports whether the job stopped on an error.
func (r JobResult) Failed() bool { return r.Error != "" }

// Files returns every file written by the job.
func (r JobResult) Files() []string {
	var out []string
	for _, g := range r.Groups {
		out = append(out, g.Files...)
	}
	return out
}

// RunArtifact represents a persisted run for reproducibility.
type RunArtifact struct {
	ID string

	ConfigPath string

	StartedAt  time.Time
	FinishedAt time.Time

	Jobs  []JobResult
	Error string
}

// FileCount is the number of files written across jobs.
func (a RunArtifact) FileCount() int {
	n := 0
	for _, j := range a.Jobs {
		n += len(j.Files())
	}
	return n
}
