package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Amii911/AlgoTrack/internal/api"
)

type formKind int

const (
	formLogin formKind = iota
	formRegister
	formAddProblem
	formTrack
	formEdit
)

// form is a small focus-cycled input group. At most one cycled choice
// field sits after the text inputs.
type form struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int

	hasChoice   bool
	choiceLabel string
	difficulty  api.Difficulty
	status      api.Status

	problem api.Problem // context for track/edit
	errMsg  string
}

func newInput(placeholder string, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.SetValue(value)
	return in
}

func (m *Model) newLoginForm() *form {
	f := &form{
		kind:   formLogin,
		title:  "Sign in",
		labels: []string{"Email", "Password"},
		inputs: []textinput.Model{
			newInput("you@example.com", ""),
			newInput("password", ""),
		},
	}
	f.inputs[1].EchoMode = textinput.EchoPassword
	f.inputs[0].Focus()
	return f
}

func (m *Model) newRegisterForm() *form {
	f := &form{
		kind:   formRegister,
		title:  "Create account",
		labels: []string{"Name", "Email", "Password"},
		inputs: []textinput.Model{
			newInput("display name", ""),
			newInput("you@example.com", ""),
			newInput("password", ""),
		},
	}
	f.inputs[2].EchoMode = textinput.EchoPassword
	f.inputs[0].Focus()
	return f
}

func (m *Model) newAddProblemForm() *form {
	f := &form{
		kind:   formAddProblem,
		title:  "Add problem",
		labels: []string{"Name", "Link", "Category"},
		inputs: []textinput.Model{
			newInput("Two Sum", ""),
			newInput("https://leetcode.com/problems/two-sum", ""),
			newInput("Arrays", ""),
		},
		hasChoice:   true,
		choiceLabel: "Difficulty",
		difficulty:  api.DifficultyEasy,
	}
	f.inputs[0].Focus()
	return f
}

func (m *Model) newTrackForm(problem api.Problem) *form {
	f := &form{
		kind:   formTrack,
		title:  "Track " + problem.Name,
		labels: []string{"Attempts", "Date", "Notes"},
		inputs: []textinput.Model{
			newInput("1", "1"),
			newInput("YYYY-MM-DD", time.Now().Format("2006-01-02")),
			newInput("notes", ""),
		},
		hasChoice:   true,
		choiceLabel: "Status",
		status:      api.StatusAttempted,
		problem:     problem,
	}
	f.inputs[0].Focus()
	return f
}

func (m *Model) newEditForm(attempt api.Attempt) *form {
	name := fmt.Sprintf("#%d", attempt.ProblemID)
	if problem, ok := m.catalogSnap.Lookup(attempt.ProblemID); ok {
		name = problem.Name
	}
	f := &form{
		kind:   formEdit,
		title:  "Update " + name,
		labels: []string{"Attempts", "Notes"},
		inputs: []textinput.Model{
			newInput("1", strconv.Itoa(attempt.NumAttempts)),
			newInput("notes", attempt.Notes),
		},
		hasChoice:   true,
		choiceLabel: "Status",
		status:      attempt.Status,
		problem:     api.Problem{ID: attempt.ProblemID, Name: name},
	}
	f.inputs[0].Focus()
	return f
}

// fieldCount includes the trailing choice field when present.
func (f *form) fieldCount() int {
	n := len(f.inputs)
	if f.hasChoice {
		n++
	}
	return n
}

func (f *form) onChoice() bool {
	return f.hasChoice && f.focus == len(f.inputs)
}

func (f *form) setFocus(i int) {
	count := f.fieldCount()
	if count == 0 {
		return
	}
	f.focus = ((i % count) + count) % count
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *form) cycleChoice(dir int) {
	switch f.choiceLabel {
	case "Difficulty":
		order := api.Difficulties()
		for i, d := range order {
			if f.difficulty == d {
				f.difficulty = order[((i+dir)%len(order)+len(order))%len(order)]
				return
			}
		}
		f.difficulty = order[0]
	case "Status":
		order := api.Statuses()
		for i, s := range order {
			if f.status == s {
				f.status = order[((i+dir)%len(order)+len(order))%len(order)]
				return
			}
		}
		f.status = order[0]
	}
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		m.closeForm()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		f.setFocus(f.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.setFocus(f.focus - 1)
		return m, nil
	case tea.KeyLeft:
		if f.onChoice() {
			f.cycleChoice(-1)
			return m, nil
		}
	case tea.KeyRight:
		if f.onChoice() {
			f.cycleChoice(1)
			return m, nil
		}
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		cmd, err := m.submitForm(f)
		if err != nil {
			f.errMsg = err.Error()
			return m, nil
		}
		m.busy = true
		return m, cmd
	}

	if f.focus < len(f.inputs) {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitForm turns the form contents into the matching command. Field
// parse failures stay in the form; invariant violations come back from
// the stores as classified errors.
func (m *Model) submitForm(f *form) (tea.Cmd, error) {
	value := func(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

	switch f.kind {
	case formLogin:
		if value(0) == "" || value(1) == "" {
			return nil, fmt.Errorf("email and password are required")
		}
		return m.loginCmd(value(0), value(1)), nil

	case formRegister:
		if value(0) == "" || value(1) == "" || value(2) == "" {
			return nil, fmt.Errorf("all fields are required")
		}
		return m.registerCmd(value(1), value(2), value(0)), nil

	case formAddProblem:
		draft := api.ProblemDraft{
			Name:       value(0),
			Link:       value(1),
			Category:   value(2),
			Difficulty: f.difficulty,
		}
		return m.addProblemCmd(draft), nil

	case formTrack:
		attempts, err := strconv.Atoi(value(0))
		if err != nil {
			return nil, fmt.Errorf("attempts must be a number")
		}
		date := value(1)
		if date != "" {
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return nil, fmt.Errorf("date must be YYYY-MM-DD")
			}
		}
		draft := api.AttemptDraft{
			ProblemID:     f.problem.ID,
			Status:        f.status,
			NumAttempts:   attempts,
			Notes:         value(2),
			DateAttempted: date,
		}
		return m.trackCmd(draft), nil

	case formEdit:
		attempts, err := strconv.Atoi(value(0))
		if err != nil {
			return nil, fmt.Errorf("attempts must be a number")
		}
		notes := value(1)
		status := f.status
		patch := api.AttemptPatch{
			Status:      &status,
			NumAttempts: &attempts,
			Notes:       &notes,
		}
		return m.updateProgressCmd(f.problem.ID, patch), nil
	}
	return nil, fmt.Errorf("unknown form")
}

func (m *Model) renderForm() string {
	f := m.form
	if f == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Accent.Render(f.title))
	b.WriteString("\n\n")

	for i, in := range f.inputs {
		label := m.styles.Muted.Render(fmt.Sprintf("%-10s", f.labels[i]))
		b.WriteString(label + " " + in.View() + "\n")
	}

	if f.hasChoice {
		label := m.styles.Muted.Render(fmt.Sprintf("%-10s", f.choiceLabel))
		var val string
		if f.choiceLabel == "Difficulty" {
			val = m.styles.Difficulty(f.difficulty).Render(string(f.difficulty))
		} else {
			val = m.styles.Status(f.status).Render(string(f.status))
		}
		marker := "  "
		if f.onChoice() {
			marker = m.styles.Accent.Render("> ")
		}
		b.WriteString(label + " " + marker + "◂ " + val + " ▸\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n" + m.styles.Danger.Render(f.errMsg) + "\n")
	}

	box := m.styles.FocusBox.Width(minInt(m.width-2, 64))
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box.Render(b.String()))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
