package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Amii911/AlgoTrack/internal/api"
	"github.com/Amii911/AlgoTrack/internal/tracker"
)

type authDoneMsg struct {
	user      api.User
	loggedOut bool
	err       error
}

type mutationDoneMsg struct {
	verb    string
	warning string
	err     error
}

type attemptsLoadedMsg struct {
	err error
}

// opContext bounds one remote operation. Mutations get double the
// request timeout because a successful write is followed by a
// reconciling re-fetch before the coordinator reports back.
func (m *Model) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.opts.Context, 2*m.opts.Timeout)
}

func (m *Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		user, err := m.opts.Session.Login(ctx, email, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m *Model) registerCmd(email, password, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		user, err := m.opts.Session.Register(ctx, email, password, name)
		return authDoneMsg{user: user, err: err}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		err := m.opts.Session.Logout(ctx)
		return authDoneMsg{loggedOut: true, err: err}
	}
}

func (m *Model) loadAttemptsCmd() tea.Cmd {
	userID, ok := m.opts.Session.CurrentUserID()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		_, err := m.opts.Attempts.LoadForUser(ctx, userID)
		return attemptsLoadedMsg{err: err}
	}
}

func (m *Model) addProblemCmd(draft api.ProblemDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		_, err := m.opts.Coordinator.AddProblem(ctx, draft)
		return mutationMsg("problem", err)
	}
}

func (m *Model) trackCmd(draft api.AttemptDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		_, err := m.opts.Coordinator.Track(ctx, draft)
		return mutationMsg("progress", err)
	}
}

func (m *Model) updateProgressCmd(problemID int64, patch api.AttemptPatch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		_, err := m.opts.Coordinator.UpdateProgress(ctx, problemID, patch)
		return mutationMsg("progress", err)
	}
}

func (m *Model) untrackCmd(problemID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		err := m.opts.Coordinator.Untrack(ctx, problemID)
		return mutationMsg("removal", err)
	}
}

// mutationMsg folds a StaleDataWarning into a successful result: the
// write happened, the caller just sees that local state may lag.
func mutationMsg(verb string, err error) mutationDoneMsg {
	var stale *tracker.StaleDataWarning
	if errors.As(err, &stale) {
		return mutationDoneMsg{verb: verb, warning: "refresh failed, data may be stale"}
	}
	return mutationDoneMsg{verb: verb, err: err}
}
