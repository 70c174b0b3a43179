package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Amii911/AlgoTrack/internal/api"
	"github.com/Amii911/AlgoTrack/internal/filter"
	"github.com/Amii911/AlgoTrack/internal/prefs"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.view == viewForm {
		return m.handleFormKey(msg)
	}

	// Search mode owns the keyboard until Enter or Esc.
	if m.searchMode {
		switch msg.Type {
		case tea.KeyEnter:
			m.searchMode = false
			m.search.Blur()
			return m, nil
		case tea.KeyEsc:
			m.searchMode = false
			m.search.Blur()
			m.search.SetValue("")
			m.criteria.SearchText = ""
			m.refreshSnapshots()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.criteria.SearchText = m.search.Value()
		m.refreshSnapshots()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.view == viewProfile {
			m.showCatalogView()
			return m, nil
		}
		if !m.criteria.Empty() {
			m.clearFilters()
		}
		return m, nil
	case "/":
		if m.view == viewCatalog {
			m.searchMode = true
			m.search.Focus()
			return m, nil
		}
	case "d":
		if m.view == viewCatalog {
			m.cycleDifficulty()
			return m, nil
		}
	case "c":
		if m.view == viewCatalog {
			m.cycleCategory()
			return m, nil
		}
	case "f":
		if m.view == viewCatalog {
			m.clearFilters()
			return m, nil
		}
	case "p":
		m.showProfileView()
		return m, nil
	case "b":
		m.showCatalogView()
		return m, nil
	case "a":
		m.openForm(m.newAddProblemForm())
		return m, nil
	case "t", "enter":
		if m.view == viewCatalog {
			if problem, ok := m.selectedProblem(); ok {
				m.openForm(m.newTrackForm(problem))
			}
			return m, nil
		}
		if m.view == viewProfile {
			if attempt, ok := m.selectedAttempt(); ok {
				m.openForm(m.newEditForm(attempt))
			}
			return m, nil
		}
	case "e":
		if m.view == viewProfile {
			if attempt, ok := m.selectedAttempt(); ok {
				m.openForm(m.newEditForm(attempt))
			}
			return m, nil
		}
	case "x":
		if m.view == viewProfile && !m.busy {
			if attempt, ok := m.selectedAttempt(); ok {
				m.busy = true
				return m, m.untrackCmd(attempt.ProblemID)
			}
			return m, nil
		}
	case "L":
		if !m.opts.Session.IsAuthenticated() {
			m.openForm(m.newLoginForm())
		}
		return m, nil
	case "S":
		if !m.opts.Session.IsAuthenticated() {
			m.openForm(m.newRegisterForm())
		}
		return m, nil
	case "O":
		if m.opts.Session.IsAuthenticated() && !m.busy {
			m.busy = true
			return m, m.logoutCmd()
		}
		return m, nil
	case "T":
		m.theme = nextTheme(m.theme.Name)
		m.styles = m.theme.Styles()
		m.restyleTables()
		_ = prefs.Save(m.opts.PrefsPath, prefs.Prefs{Theme: m.theme.Name, PageSize: m.opts.PageSize})
		return m, nil
	}

	// Remaining keys drive the focused table.
	var cmd tea.Cmd
	switch m.view {
	case viewCatalog:
		m.catTable, cmd = m.catTable.Update(msg)
	case viewProfile:
		m.progTable, cmd = m.progTable.Update(msg)
	}
	return m, cmd
}

// cycleDifficulty steps the difficulty filter through
// All -> Easy -> Medium -> Hard -> All.
func (m *Model) cycleDifficulty() {
	order := api.Difficulties()
	switch m.criteria.Difficulty {
	case "":
		m.criteria.Difficulty = order[0]
	case order[len(order)-1]:
		m.criteria.Difficulty = ""
	default:
		for i, d := range order[:len(order)-1] {
			if m.criteria.Difficulty == d {
				m.criteria.Difficulty = order[i+1]
				break
			}
		}
	}
	m.refreshSnapshots()
}

// cycleCategory steps the category filter through the categories
// present in the catalog, then back to All.
func (m *Model) cycleCategory() {
	categories := filter.Categories(m.catalogSnap.Problems)
	if len(categories) == 0 {
		return
	}
	if m.criteria.Category == "" {
		m.criteria.Category = categories[0]
		m.refreshSnapshots()
		return
	}
	for i, c := range categories {
		if m.criteria.Category == c {
			if i == len(categories)-1 {
				m.criteria.Category = ""
			} else {
				m.criteria.Category = categories[i+1]
			}
			m.refreshSnapshots()
			return
		}
	}
	m.criteria.Category = ""
	m.refreshSnapshots()
}

func (m *Model) clearFilters() {
	m.criteria = filter.Criteria{}
	m.search.SetValue("")
	m.refreshSnapshots()
}
