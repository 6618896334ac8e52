package pullrequest

import (
	"github.com/bryanjebyrd/pr-digest/internal/model"
)

// Accumulator merges pull requests from any number of fetch strategies into
// one set keyed by canonical URL. Re-adding a URL replaces the stored record,
// so overlapping strategies stay idempotent without growing the set.
type Accumulator struct {
	limit int
	byURL map[string]model.PullRequest
	order []string
}

// NewAccumulator returns an accumulator that reports Full once limit distinct
// URLs are held. A non-positive limit means unbounded.
func NewAccumulator(limit int) *Accumulator {
	return &Accumulator{
		limit: limit,
		byURL: make(map[string]model.PullRequest),
	}
}

// Add folds one record into the set. The last record wins for a repeated URL;
// records without a URL are dropped.
func (a *Accumulator) Add(pr model.PullRequest) {
	if pr.URL == "" {
		return
	}
	if _, exists := a.byURL[pr.URL]; !exists {
		a.order = append(a.order, pr.URL)
	}
	a.byURL[pr.URL] = pr
}

// Full reports whether the set has reached its limit. Callers check this
// between remote calls to stop fetching work whose results would be dropped.
func (a *Accumulator) Full() bool {
	return a.limit > 0 && len(a.byURL) >= a.limit
}

func (a *Accumulator) Len() int {
	return len(a.byURL)
}

// Records returns the merged set in first-insertion order.
func (a *Accumulator) Records() []model.PullRequest {
	records := make([]model.PullRequest, 0, len(a.order))
	for _, u := range a.order {
		records = append(records, a.byURL[u])
	}
	return records
}
