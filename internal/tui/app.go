// Package tui implements the live cwatch dashboard.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cwatch/internal/cli"
	"github.com/theirongolddev/cwatch/internal/model"
	"github.com/theirongolddev/cwatch/internal/usage"
)

const refreshEvery = 5 * time.Second

type statsMsg struct {
	weekly  model.WeeklyStats
	session model.SessionStats
}

type tickMsg time.Time

// Model is the bubbletea model for the dashboard.
type Model struct {
	tracker *usage.Tracker
	spinner spinner.Model

	loaded  bool
	weekly  model.WeeklyStats
	session model.SessionStats
	width   int
}

// New returns a dashboard reading from the given Claude data directory.
func New(claudeDir string) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(cli.ColorAccent)

	return Model{
		tracker: usage.NewTracker(claudeDir),
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchStats(m.tracker))
}

// fetchStats reads both aggregates off the UI goroutine; the tracker's
// mutex makes that safe.
func fetchStats(tracker *usage.Tracker) tea.Cmd {
	return func() tea.Msg {
		return statsMsg{
			weekly:  tracker.WeeklyStats(),
			session: tracker.SessionStats(),
		}
	}
}

func scheduleTick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.tracker.Invalidate()
			return m, fetchStats(m.tracker)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case statsMsg:
		m.loaded = true
		m.weekly = msg.weekly
		m.session = msg.session
		return m, scheduleTick()

	case tickMsg:
		return m, fetchStats(m.tracker)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.loaded {
		return "\n  " + m.spinner.View() + " Reading Claude usage...\n"
	}

	weekly := cli.RenderCard("Weekly Usage", cli.WeeklyRows(m.weekly))
	session := cli.RenderCard("Current Session", cli.SessionRows(m.session))

	body := lipgloss.JoinVertical(lipgloss.Left,
		cli.RenderTitle("cwatch"),
		weekly,
		session,
		lipgloss.NewStyle().Foreground(cli.ColorTextDim).Render("  r refresh · q quit"),
	)
	return body + "\n"
}
