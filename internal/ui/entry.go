package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"github.com/bryanjebyrd/pr-digest/internal/digest"
	"github.com/bryanjebyrd/pr-digest/internal/model"
	"github.com/bryanjebyrd/pr-digest/internal/utils"
)

type Entry struct {
	Repository string
	Title      string
	URL        string
	AgeStr     string
	Author     string
	Number     int
	Additions  int
	Deletions  int
	Draft      bool
}

// itemEntry wraps an Entry for the PR List.
type itemEntry struct{ entry Entry }

func (i itemEntry) Title() string {
	title := fmt.Sprintf("%s — %s #%d", i.entry.Repository, i.entry.Title, i.entry.Number)
	if i.entry.Draft {
		title += " (draft)"
	}
	return title
}
func (i itemEntry) Description() string {
	return fmt.Sprintf("Age: %s, Author: %s, +%d/-%d", i.entry.AgeStr, i.entry.Author, i.entry.Additions, i.entry.Deletions)
}
func (i itemEntry) FilterValue() string { return i.entry.Repository + " " + i.entry.Title }

// ItemsFromEntries converts []Entry to []list.Item.
func ItemsFromEntries(entries []Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = itemEntry{entry: e}
	}
	return items
}

// BuildEntries converts records to display entries, in the same order the
// rendered digest uses.
func BuildEntries(records []model.PullRequest, now time.Time) []Entry {
	ordered := digest.Ordered(records)
	entries := make([]Entry, 0, len(ordered))
	for _, r := range ordered {
		entries = append(entries, Entry{
			Repository: r.Repository,
			Title:      r.Title,
			URL:        r.URL,
			AgeStr:     utils.HumanizeDuration(now.Sub(r.CreatedAt)),
			Author:     r.Author,
			Number:     r.Number,
			Additions:  r.Additions,
			Deletions:  r.Deletions,
			Draft:      r.Draft,
		})
	}
	return entries
}
