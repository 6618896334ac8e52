package digest

import (
	"github.com/bryanjebyrd/pr-digest/internal/model"
)

// Classify partitions the merged records by ownership. A record is team-owned
// iff its repository identifier is in the owned set; every record lands in
// exactly one of the two slices, in input order.
func Classify(records []model.PullRequest, owned map[string]bool) (team, other []model.PullRequest) {
	for _, r := range records {
		if owned[r.Repository] {
			team = append(team, r)
		} else {
			other = append(other, r)
		}
	}
	return team, other
}
