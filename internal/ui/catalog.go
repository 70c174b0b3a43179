package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Amii911/AlgoTrack/internal/api"
)

func (m *Model) newCatalogTable() table.Model {
	t := table.New(
		table.WithColumns(m.catalogColumns()),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	t.SetStyles(m.tableStyles())
	return t
}

func (m *Model) catalogColumns() []table.Column {
	nameWidth := m.width - 46
	if nameWidth < 20 {
		nameWidth = 20
	}
	return []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: nameWidth},
		{Title: "Difficulty", Width: 10},
		{Title: "Category", Width: 18},
		{Title: "Tracked", Width: 8},
	}
}

// syncCatalogRows rebuilds the table rows from the filtered view.
func (m *Model) syncCatalogRows() {
	rows := make([]table.Row, 0, len(m.visible))
	for _, p := range m.visible {
		tracked := ""
		if attempt, ok := m.attemptSnap.Lookup(m.attemptSnap.UserID, p.ID); ok {
			tracked = string(attempt.Status)
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			string(p.Difficulty),
			p.Category,
			tracked,
		})
	}
	m.catTable.SetRows(rows)
	if m.catTable.Cursor() >= len(rows) && len(rows) > 0 {
		m.catTable.SetCursor(len(rows) - 1)
	}
}

// selectedProblem returns the problem under the catalog cursor.
func (m *Model) selectedProblem() (api.Problem, bool) {
	cursor := m.catTable.Cursor()
	if cursor < 0 || cursor >= len(m.visible) {
		return api.Problem{}, false
	}
	return m.visible[cursor], true
}

func (m *Model) renderCatalog() string {
	var filterLine string
	if m.searchMode {
		filterLine = m.search.View()
	} else {
		filterLine = m.renderFilterSummary()
	}

	count := m.styles.Muted.Render(
		fmt.Sprintf("Showing %d of %d problems", len(m.visible), len(m.catalogSnap.Problems)))

	box := m.styles.FocusBox.Width(m.width - 2)
	return lipgloss.JoinVertical(lipgloss.Left,
		filterLine,
		count,
		box.Render(m.catTable.View()),
	)
}

// renderFilterSummary shows the active criteria, or a hint when none.
func (m *Model) renderFilterSummary() string {
	if m.criteria.Empty() {
		return m.styles.Faint.Render("/ search  d difficulty  c category")
	}
	parts := ""
	if m.criteria.SearchText != "" {
		parts += m.styles.Accent.Render("search:") + m.styles.Text.Render(m.criteria.SearchText) + "  "
	}
	if m.criteria.Difficulty != "" {
		parts += m.styles.Accent.Render("difficulty:") +
			m.styles.Difficulty(m.criteria.Difficulty).Render(string(m.criteria.Difficulty)) + "  "
	}
	if m.criteria.Category != "" {
		parts += m.styles.Accent.Render("category:") + m.styles.Text.Render(m.criteria.Category) + "  "
	}
	return parts + m.styles.Faint.Render("(f clears)")
}

func (m *Model) tableHeight() int {
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	if m.opts.PageSize > 0 && h > m.opts.PageSize {
		h = m.opts.PageSize
	}
	return h
}

func (m *Model) tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(lipgloss.Color(m.theme.Accent)).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Bold(true)
	s.Selected = s.Selected.
		Background(lipgloss.Color(m.theme.SelectionBg)).
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Bold(false)
	return s
}

func (m *Model) resizeTables() {
	m.catTable.SetColumns(m.catalogColumns())
	m.catTable.SetHeight(m.tableHeight())
	m.catTable.SetWidth(m.width - 4)
	m.progTable.SetColumns(m.progressColumns())
	m.progTable.SetHeight(m.tableHeight())
	m.progTable.SetWidth(m.width - 4)
}

func (m *Model) restyleTables() {
	m.catTable.SetStyles(m.tableStyles())
	m.progTable.SetStyles(m.tableStyles())
}
