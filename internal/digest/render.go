package digest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bryanjebyrd/pr-digest/internal/model"
)

// Section titles are shared with the interactive browser's tabs.
const (
	TeamSectionTitle  = "Team repositories"
	OtherSectionTitle = "Other repositories"
)

const emptySection = "  (none)"

var sectionRule = strings.Repeat("=", 40)

// Render assembles the full digest: a dated header, the team-owned section,
// then the non-owned section. perRepo caps how many records each repository
// group may show; records beyond it are dropped silently while the group's
// sub-header still shows the full group size.
func Render(now time.Time, team, other []model.PullRequest, perRepo int) string {
	if perRepo < 0 {
		perRepo = 0
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Open PR digest for %s\n", now.Format("Jan 2, 2006"))
	b.WriteString("\n")
	writeSection(&b, TeamSectionTitle, team, perRepo)
	b.WriteString("\n")
	writeSection(&b, OtherSectionTitle, other, perRepo)
	return b.String()
}

// Ordered returns the records in render order: repository groups ascending
// lexicographically, records inside each group oldest first, equal ages in
// input order. Sorting by age first and repository second, both stable, keeps
// the age order intact within every group.
func Ordered(records []model.PullRequest) []model.PullRequest {
	ordered := make([]model.PullRequest, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AgeDays > ordered[j].AgeDays
	})
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Repository < ordered[j].Repository
	})
	return ordered
}

func writeSection(b *strings.Builder, title string, records []model.PullRequest, perRepo int) {
	b.WriteString(sectionRule + "\n")
	b.WriteString(" " + title + "\n")
	b.WriteString(sectionRule + "\n")
	if len(records) == 0 {
		b.WriteString(emptySection + "\n")
		return
	}

	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.Repository]++
	}

	current := ""
	shown := 0
	for _, r := range Ordered(records) {
		if r.Repository != current {
			current = r.Repository
			shown = 0
			fmt.Fprintf(b, "%s (%d open):\n", current, counts[current])
		}
		if shown >= perRepo {
			continue
		}
		shown++
		marker := ""
		if r.Draft {
			marker = " (draft)"
		}
		fmt.Fprintf(b, "  - [%s](%s)%s\n", r.Title, r.URL, marker)
		fmt.Fprintf(b, "    %dd old · by %s · +%d/-%d\n", r.AgeDays, r.Author, r.Additions, r.Deletions)
	}
}
