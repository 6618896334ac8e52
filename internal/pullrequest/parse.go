package pullrequest

import (
	"regexp"
	"strconv"
	"strings"
)

// issueURLPattern matches the canonical resource URL the search endpoint
// returns for a pull request, e.g.
// https://api.github.com/repos/acme/core/issues/7
var issueURLPattern = regexp.MustCompile(`/repos/([^/]+)/([^/]+)/issues/(\d+)$`)

// ParseIssueURL extracts owner, repository and number from a search hit's
// resource URL. ok is false when the URL does not follow the issue grammar.
func ParseIssueURL(raw string) (owner, repo string, number int, ok bool) {
	m := issueURLPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", "", 0, false
	}
	number, err := strconv.Atoi(m[3])
	if err != nil || number <= 0 {
		return "", "", 0, false
	}
	return m[1], m[2], number, true
}

// SplitRepo splits an owner/name entry into its two parts. ok is false unless
// the entry has exactly two non-empty segments.
func SplitRepo(entry string) (owner, name string, ok bool) {
	parts := strings.Split(strings.TrimSpace(entry), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// NormalizeHandle strips whitespace and a leading @ from a user handle.
func NormalizeHandle(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "@")
}
