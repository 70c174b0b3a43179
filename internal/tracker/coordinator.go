// Package tracker coordinates all writes against the catalog and
// attempt stores. Every mutation passes through one gate: the session
// is re-checked per call, at most one operation per record key is in
// flight, and a successful write is followed by a reconciling re-fetch
// before the result is reported.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Amii911/AlgoTrack/internal/api"
	"github.com/Amii911/AlgoTrack/internal/auth"
	"github.com/Amii911/AlgoTrack/internal/state"
)

// ConflictError rejects a mutation while a prior mutation on the same
// record key is still submitting.
type ConflictError struct {
	UserID    int64
	ProblemID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("mutation already in flight for user %d, problem %d", e.UserID, e.ProblemID)
}

// StaleDataWarning reports a mutation that succeeded on the server but
// whose reconciling re-fetch failed: local state may lag the server.
type StaleDataWarning struct {
	Err error
}

func (w *StaleDataWarning) Error() string {
	return fmt.Sprintf("write succeeded but refresh failed: %v", w.Err)
}

func (w *StaleDataWarning) Unwrap() error { return w.Err }

type recordKey struct {
	userID    int64
	problemID int64
}

// Coordinator is the single authorized entry point for writes.
type Coordinator struct {
	session  auth.Session
	catalog  *state.CatalogStore
	attempts *state.AttemptStore
	now      func() time.Time

	mu       sync.Mutex
	inFlight map[recordKey]struct{}
}

// New builds a Coordinator over the given session and stores.
func New(session auth.Session, catalog *state.CatalogStore, attempts *state.AttemptStore) *Coordinator {
	return &Coordinator{
		session:  session,
		catalog:  catalog,
		attempts: attempts,
		now:      time.Now,
		inFlight: make(map[recordKey]struct{}),
	}
}

// AddProblem creates a catalog entry and reconciles the catalog store.
// Creation allocates a fresh identity, so there is no per-record key to
// conflict on.
func (c *Coordinator) AddProblem(ctx context.Context, draft api.ProblemDraft) (api.Problem, error) {
	if !c.session.IsAuthenticated() {
		return api.Problem{}, state.ErrAuthRequired
	}

	created, err := c.catalog.Create(ctx, draft)
	if err != nil {
		return api.Problem{}, err
	}
	if _, err := c.catalog.LoadAll(ctx); err != nil {
		return created, &StaleDataWarning{Err: err}
	}
	return created, nil
}

// Track starts tracking a problem for the session user. Draft defaults
// (status Attempted, one attempt, dated today) are applied before
// validation, and the attempt store is reconciled on success.
func (c *Coordinator) Track(ctx context.Context, draft api.AttemptDraft) (api.Attempt, error) {
	userID, ok := c.currentUser()
	if !ok {
		return api.Attempt{}, state.ErrAuthRequired
	}
	draft.UserID = userID
	draft = draft.WithDefaults(c.now())

	key := recordKey{userID: userID, problemID: draft.ProblemID}
	if !c.acquire(key) {
		return api.Attempt{}, &ConflictError{UserID: userID, ProblemID: draft.ProblemID}
	}
	defer c.release(key)

	created, err := c.attempts.Create(ctx, draft, c.catalog.All())
	if err != nil {
		return api.Attempt{}, err
	}
	if _, err := c.attempts.LoadForUser(ctx, userID); err != nil {
		return created, &StaleDataWarning{Err: err}
	}
	return created, nil
}

// UpdateProgress patches the session user's record for problemID and
// reconciles the attempt store.
func (c *Coordinator) UpdateProgress(ctx context.Context, problemID int64, patch api.AttemptPatch) (api.Attempt, error) {
	userID, ok := c.currentUser()
	if !ok {
		return api.Attempt{}, state.ErrAuthRequired
	}

	key := recordKey{userID: userID, problemID: problemID}
	if !c.acquire(key) {
		return api.Attempt{}, &ConflictError{UserID: userID, ProblemID: problemID}
	}
	defer c.release(key)

	updated, err := c.attempts.Update(ctx, userID, problemID, patch)
	if err != nil {
		return api.Attempt{}, err
	}
	if _, err := c.attempts.LoadForUser(ctx, userID); err != nil {
		return updated, &StaleDataWarning{Err: err}
	}
	return updated, nil
}

// Untrack deletes the session user's record for problemID and
// reconciles the attempt store.
func (c *Coordinator) Untrack(ctx context.Context, problemID int64) error {
	userID, ok := c.currentUser()
	if !ok {
		return state.ErrAuthRequired
	}

	key := recordKey{userID: userID, problemID: problemID}
	if !c.acquire(key) {
		return &ConflictError{UserID: userID, ProblemID: problemID}
	}
	defer c.release(key)

	if err := c.attempts.Delete(ctx, userID, problemID); err != nil {
		return err
	}
	if _, err := c.attempts.LoadForUser(ctx, userID); err != nil {
		return &StaleDataWarning{Err: err}
	}
	return nil
}

// currentUser re-checks the session on every call; cached identity
// would go stale across renders.
func (c *Coordinator) currentUser() (int64, bool) {
	if !c.session.IsAuthenticated() {
		return 0, false
	}
	return c.session.CurrentUserID()
}

func (c *Coordinator) acquire(key recordKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[key]; busy {
		return false
	}
	c.inFlight[key] = struct{}{}
	return true
}

func (c *Coordinator) release(key recordKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, key)
}
