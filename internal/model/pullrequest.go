package model

import (
	"time"
)

// PullRequest is one open pull request as collected for the digest. URL is the
// canonical identity: the same PR reached through a repository listing and
// through an author search carries the same URL and collapses to one record.
// Built once by the fetcher, never mutated afterwards.
type PullRequest struct {
	Repository string // owner/name
	Number     int
	Title      string
	Author     string
	URL        string
	AgeDays    int
	Additions  int
	Deletions  int
	Draft      bool
	CreatedAt  time.Time
}
