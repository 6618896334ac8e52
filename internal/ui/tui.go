package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bryanjebyrd/pr-digest/internal/digest"
	"github.com/bryanjebyrd/pr-digest/internal/model"
	"github.com/bryanjebyrd/pr-digest/internal/utils"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("240"))

	selectedTabStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("205")).
				Background(lipgloss.Color("236")).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("205"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Collector produces the classified record sets shown in the two sections.
// *digest.Pipeline satisfies it.
type Collector interface {
	Sections(ctx context.Context) (team, other []model.PullRequest, err error)
}

type ListModel struct {
	Categories    []string
	CategoryIndex int
	Entries       [][]Entry
	List          list.Model

	collector Collector
	log       *zap.SugaredLogger
	err       error
}

type refreshedMsg struct {
	entries [][]Entry
}

type refreshFailedMsg struct {
	err error
}

// NewListModel builds the browser around an initial classified collection.
// Refreshes re-run the collector; fetch failures keep the last good view and
// surface the error instead of quitting.
func NewListModel(collector Collector, log *zap.SugaredLogger, team, other []model.PullRequest) *ListModel {
	now := time.Now()
	entries := [][]Entry{
		BuildEntries(team, now),
		BuildEntries(other, now),
	}

	l := list.New(ItemsFromEntries(entries[0]), list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{Keys.Left, Keys.Right, Keys.Enter, Keys.Refresh}
	}

	return &ListModel{
		Categories: []string{digest.TeamSectionTitle, digest.OtherSectionTitle},
		Entries:    entries,
		List:       l,
		collector:  collector,
		log:        log,
	}
}

func (m *ListModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		team, other, err := m.collector.Sections(context.Background())
		if err != nil {
			return refreshFailedMsg{err: err}
		}
		now := time.Now()
		return refreshedMsg{
			entries: [][]Entry{
				BuildEntries(team, now),
				BuildEntries(other, now),
			},
		}
	}
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		m.Entries = msg.entries
		m.err = nil
		m.List.SetItems(ItemsFromEntries(m.Entries[m.CategoryIndex]))
		return m, nil
	case refreshFailedMsg:
		m.err = errors.Wrap(msg.err, "refresh")
		m.log.Warnw("refresh failed", "error", msg.err)
		return m, nil
	case tea.KeyMsg:
		if m.List.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, Keys.Left):
			m.CategoryIndex = (m.CategoryIndex + len(m.Categories) - 1) % len(m.Categories)
			m.List.SetItems(ItemsFromEntries(m.Entries[m.CategoryIndex]))
		case key.Matches(msg, Keys.Right):
			m.CategoryIndex = (m.CategoryIndex + 1) % len(m.Categories)
			m.List.SetItems(ItemsFromEntries(m.Entries[m.CategoryIndex]))
		case key.Matches(msg, Keys.Enter):
			if item, ok := m.List.SelectedItem().(itemEntry); ok {
				if err := utils.OpenURL(item.entry.URL); err != nil {
					m.err = errors.Wrap(err, "open url")
				}
			}
			return m, nil
		case key.Matches(msg, Keys.Refresh):
			return m, m.refreshCmd()
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.List.SetSize(msg.Width-h, msg.Height-v-3)
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)

	return m, cmd
}

func (m *ListModel) View() string {
	sb := strings.Builder{}

	var tabsView []string
	for i, cat := range m.Categories {
		if i == m.CategoryIndex {
			tabsView = append(tabsView, selectedTabStyle.Render(cat))
		} else {
			tabsView = append(tabsView, tabStyle.Render(cat))
		}
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabsView...))
	sb.WriteString("\n\n")

	if m.err != nil {
		sb.WriteString(errStyle.Render(m.err.Error()))
		sb.WriteString("\n\n")
	}

	if len(m.Entries[m.CategoryIndex]) == 0 {
		emptyMsg := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Render("🥳 Nothing to see here 🎊")
		sb.WriteString(emptyMsg)
	} else {
		sb.WriteString(m.List.View())
	}

	return docStyle.Render(sb.String())
}

// Run starts the interactive browser and blocks until the user quits.
func Run(collector Collector, log *zap.SugaredLogger, team, other []model.PullRequest) error {
	m := NewListModel(collector, log, team, other)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
