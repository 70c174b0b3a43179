package state

import (
	"context"
	"sync"

	"github.com/Amii911/AlgoTrack/internal/api"
)

// fakeGateway is a hand-written api.Gateway double with call counting,
// shared by the store tests and mirrored in the tracker tests.
type fakeGateway struct {
	mu       sync.Mutex
	calls    map[string]int
	problems []api.Problem
	attempts []api.Attempt
	failWith error // when set, every call fails with it
	nextID   int64
}

var _ api.Gateway = (*fakeGateway)(nil)

func (g *fakeGateway) record(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.calls == nil {
		g.calls = make(map[string]int)
	}
	g.calls[name]++
}

func (g *fakeGateway) callCount(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[name]
}

func (g *fakeGateway) totalCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	total := 0
	for _, n := range g.calls {
		total += n
	}
	return total
}

func (g *fakeGateway) FetchProblems(context.Context) ([]api.Problem, error) {
	g.record("FetchProblems")
	if g.failWith != nil {
		return nil, g.failWith
	}
	return append([]api.Problem(nil), g.problems...), nil
}

func (g *fakeGateway) CreateProblem(_ context.Context, draft api.ProblemDraft) (api.Problem, error) {
	g.record("CreateProblem")
	if g.failWith != nil {
		return api.Problem{}, g.failWith
	}
	g.mu.Lock()
	g.nextID++
	id := g.nextID
	g.mu.Unlock()
	created := api.Problem{
		ID:         id,
		Name:       draft.Name,
		Link:       draft.Link,
		Difficulty: draft.Difficulty,
		Category:   draft.Category,
	}
	g.problems = append(g.problems, created)
	return created, nil
}

func (g *fakeGateway) FetchUserAttempts(_ context.Context, userID int64) ([]api.Attempt, error) {
	g.record("FetchUserAttempts")
	if g.failWith != nil {
		return nil, g.failWith
	}
	var out []api.Attempt
	for _, a := range g.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (g *fakeGateway) CreateAttempt(_ context.Context, draft api.AttemptDraft) (api.Attempt, error) {
	g.record("CreateAttempt")
	if g.failWith != nil {
		return api.Attempt{}, g.failWith
	}
	created := api.Attempt{
		UserID:        draft.UserID,
		ProblemID:     draft.ProblemID,
		Status:        draft.Status,
		NumAttempts:   draft.NumAttempts,
		Notes:         draft.Notes,
		DateAttempted: draft.DateAttempted,
	}
	g.attempts = append(g.attempts, created)
	return created, nil
}

func (g *fakeGateway) UpdateAttempt(_ context.Context, userID, problemID int64, patch api.AttemptPatch) (api.Attempt, error) {
	g.record("UpdateAttempt")
	if g.failWith != nil {
		return api.Attempt{}, g.failWith
	}
	for i, a := range g.attempts {
		if a.UserID == userID && a.ProblemID == problemID {
			if patch.Status != nil {
				a.Status = *patch.Status
			}
			if patch.NumAttempts != nil {
				a.NumAttempts = *patch.NumAttempts
			}
			if patch.Notes != nil {
				a.Notes = *patch.Notes
			}
			g.attempts[i] = a
			return a, nil
		}
	}
	updated := api.Attempt{UserID: userID, ProblemID: problemID}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.NumAttempts != nil {
		updated.NumAttempts = *patch.NumAttempts
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}
	return updated, nil
}

func (g *fakeGateway) DeleteAttempt(_ context.Context, userID, problemID int64) error {
	g.record("DeleteAttempt")
	if g.failWith != nil {
		return g.failWith
	}
	kept := g.attempts[:0]
	for _, a := range g.attempts {
		if a.UserID == userID && a.ProblemID == problemID {
			continue
		}
		kept = append(kept, a)
	}
	g.attempts = kept
	return nil
}

// fakeSession is a fixed identity double.
type fakeSession struct {
	userID int64
	authed bool
}

func (s fakeSession) IsAuthenticated() bool { return s.authed }

func (s fakeSession) CurrentUserID() (int64, bool) {
	if !s.authed {
		return 0, false
	}
	return s.userID, true
}
