package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Amii911/AlgoTrack/internal/api"
)

func (m *Model) newProgressTable() table.Model {
	t := table.New(
		table.WithColumns(m.progressColumns()),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	t.SetStyles(m.tableStyles())
	return t
}

func (m *Model) progressColumns() []table.Column {
	nameWidth := m.width - 64
	if nameWidth < 16 {
		nameWidth = 16
	}
	return []table.Column{
		{Title: "Problem", Width: nameWidth},
		{Title: "Status", Width: 10},
		{Title: "Tries", Width: 5},
		{Title: "Date", Width: 10},
		{Title: "Notes", Width: 28},
	}
}

func (m *Model) syncProgressRows() {
	rows := make([]table.Row, 0, len(m.attemptSnap.Attempts))
	for _, a := range m.attemptSnap.Attempts {
		name := fmt.Sprintf("#%d", a.ProblemID)
		if problem, ok := m.catalogSnap.Lookup(a.ProblemID); ok {
			name = problem.Name
		}
		rows = append(rows, table.Row{
			name,
			string(a.Status),
			strconv.Itoa(a.NumAttempts),
			a.DateAttempted,
			truncate(a.Notes, 28),
		})
	}
	m.progTable.SetRows(rows)
	if m.progTable.Cursor() >= len(rows) && len(rows) > 0 {
		m.progTable.SetCursor(len(rows) - 1)
	}
}

// selectedAttempt returns the attempt under the progress cursor.
func (m *Model) selectedAttempt() (api.Attempt, bool) {
	cursor := m.progTable.Cursor()
	if cursor < 0 || cursor >= len(m.attemptSnap.Attempts) {
		return api.Attempt{}, false
	}
	return m.attemptSnap.Attempts[cursor], true
}

func (m *Model) renderProfile() string {
	if !m.opts.Session.IsAuthenticated() {
		hint := m.styles.Muted.Render("Sign in to track your progress.") + "\n\n" +
			m.styles.Faint.Render("L login  S sign up  b back")
		return m.styles.Box.Width(m.width - 2).Render(hint)
	}

	statsPanel := m.renderStats()
	tableBox := m.styles.FocusBox.Width(m.width - 2).Render(m.progTable.View())
	return lipgloss.JoinVertical(lipgloss.Left, statsPanel, tableBox)
}

// renderStats lays out the statistics panel: totals, completion rate,
// difficulty buckets, top categories.
func (m *Model) renderStats() string {
	s := m.statistics

	totals := strings.Join([]string{
		m.styles.Text.Render(fmt.Sprintf("Total %d", s.Total)),
		m.styles.Status(api.StatusCompleted).Render(fmt.Sprintf("Completed %d", s.Completed)),
		m.styles.Status(api.StatusAttempted).Render(fmt.Sprintf("Attempted %d", s.Attempted)),
		m.styles.Status(api.StatusSkipped).Render(fmt.Sprintf("Skipped %d", s.Skipped)),
	}, "   ")

	rate := fmt.Sprintf("%s %s %d%%",
		m.styles.Muted.Render("Completion"),
		progressBar(s.CompletionRate, 24, m.styles),
		s.CompletionRate)

	var difficulties []string
	for _, d := range api.Difficulties() {
		difficulties = append(difficulties,
			m.styles.Difficulty(d).Render(fmt.Sprintf("%s %d", d, s.ByDifficulty[d])))
	}
	diffLine := m.styles.Muted.Render("By difficulty  ") + strings.Join(difficulties, "  ")

	var categories []string
	for _, cc := range s.TopCategories {
		categories = append(categories,
			m.styles.Text.Render(fmt.Sprintf("%s %d", cc.Category, cc.Count)))
	}
	catLine := ""
	if len(categories) > 0 {
		catLine = m.styles.Muted.Render("Top categories ") + strings.Join(categories, "  ")
	}

	lines := []string{totals, rate, diffLine}
	if catLine != "" {
		lines = append(lines, catLine)
	}
	return m.styles.Box.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

// progressBar renders a filled/empty bar for a 0-100 percentage.
func progressBar(percent, width int, styles Styles) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return styles.Success.Render(strings.Repeat("█", filled)) +
		styles.Faint.Render(strings.Repeat("░", width-filled))
}
