package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) renderHeader() string {
	title := m.styles.Accent.Render("ALGOTRACK")

	var who string
	if user, ok := m.opts.Session.CurrentUser(); ok {
		who = m.styles.Text.Render(user.Name)
	} else {
		who = m.styles.Faint.Render("guest")
	}

	var health string
	switch {
	case m.catalogSnap.IsOffline():
		health = m.styles.Danger.Render("● offline")
	case m.catalogSnap.LastError != nil:
		health = m.styles.Warning.Render("● retrying")
	default:
		health = m.styles.Success.Render("● online")
	}

	updated := ""
	if !m.catalogSnap.LastUpdated.IsZero() {
		updated = m.styles.Faint.Render(m.catalogSnap.LastUpdated.Format("15:04:05"))
	}

	left := strings.Join([]string{title, who, health, updated}, "  ")
	return m.styles.Header.Width(m.width).Render(left)
}

func (m *Model) renderFooter() string {
	var help string
	switch m.view {
	case viewCatalog:
		help = "t track  a add  p profile  / search  d/c filter  T theme  q quit"
	case viewProfile:
		help = "e edit  x untrack  b back  q quit"
	case viewForm:
		help = "tab next field  ←/→ cycle choice  enter submit  esc cancel"
	}

	status := ""
	if m.statusMsg != "" {
		if m.statusBad {
			status = m.styles.Danger.Render(m.statusMsg)
		} else {
			status = m.styles.Success.Render(m.statusMsg)
		}
	}
	if m.busy {
		status = m.styles.Warning.Render("working...")
	}

	line := m.styles.Faint.Render(help)
	if status != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Left, status, "   ", line)
	}
	return m.styles.Footer.Width(m.width).Render(line)
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return fmt.Sprintf("%s…", string(runes[:max-1]))
}
