package runner

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one example.
type Result struct {
	Path     []string
	Status   Status
	Err      error
	Duration time.Duration
}

// Report collects the results of one plan run.
type Report struct {
	RunID    uuid.UUID
	Spec     string
	Results  []Result
	Duration time.Duration
}

// Count returns how many results ended with status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Counts returns the number of results per final status.
func (r *Report) Counts() map[Status]int {
	counts := make(map[Status]int, len(finalStatuses))
	for _, s := range finalStatuses {
		counts[s] = 0
	}
	for _, res := range r.Results {
		counts[res.Status]++
	}
	return counts
}

// Successful reports whether no example failed.
func (r *Report) Successful() bool {
	for _, res := range r.Results {
		if !res.Status.Successful() {
			return false
		}
	}
	return true
}
