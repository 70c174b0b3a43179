package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Amii911/AlgoTrack/internal/api"
	"github.com/Amii911/AlgoTrack/internal/auth"
)

// AttemptSnapshot is an immutable view of one user's progress records.
type AttemptSnapshot struct {
	UserID              int64
	Attempts            []api.Attempt
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for
// multiple loads.
func (s AttemptSnapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Lookup returns the attempt for the given key when present.
func (s AttemptSnapshot) Lookup(userID, problemID int64) (api.Attempt, bool) {
	for _, a := range s.Attempts {
		if a.UserID == userID && a.ProblemID == problemID {
			return a, true
		}
	}
	return api.Attempt{}, false
}

// AttemptStore holds the current user's progress records. At most one
// record exists per (user, problem) pair; the store enforces this
// locally so the same problem is never tracked twice.
type AttemptStore struct {
	gateway api.Gateway
	session auth.Session

	mu       sync.RWMutex
	snapshot AttemptSnapshot
}

// NewAttemptStore builds a store backed by the given gateway and
// identity collaborator.
func NewAttemptStore(gateway api.Gateway, session auth.Session) *AttemptStore {
	return &AttemptStore{gateway: gateway, session: session}
}

// LoadForUser fetches all progress records for userID, replacing the
// prior contents. The caller must hold an authenticated session for
// that user; otherwise ErrAuthRequired is returned without contacting
// the gateway.
func (s *AttemptStore) LoadForUser(ctx context.Context, userID int64) ([]api.Attempt, error) {
	if current, ok := s.session.CurrentUserID(); !ok || current != userID {
		return nil, ErrAuthRequired
	}
	attempts, err := s.gateway.FetchUserAttempts(ctx, userID)
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.UserID = userID
	s.snapshot.Attempts = cloneAttempts(attempts)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return cloneAttempts(attempts), nil
}

// Create validates a tracking draft, submits it, and appends the
// server record. A second record for an already-tracked problem is
// rejected with DuplicateError before the gateway is contacted. When a
// catalog snapshot is supplied the draft's problem must exist in it.
func (s *AttemptStore) Create(ctx context.Context, draft api.AttemptDraft, catalog []api.Problem) (api.Attempt, error) {
	if verr := validateAttemptDraft(draft, catalog); verr != nil {
		return api.Attempt{}, verr
	}

	s.mu.RLock()
	_, exists := s.snapshot.Lookup(draft.UserID, draft.ProblemID)
	s.mu.RUnlock()
	if exists {
		return api.Attempt{}, &DuplicateError{UserID: draft.UserID, ProblemID: draft.ProblemID}
	}

	created, err := s.gateway.CreateAttempt(ctx, draft)
	if err != nil {
		return api.Attempt{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Attempts = append(s.snapshot.Attempts, created)
	return created, nil
}

// Update patches the mutable fields of an existing record. Key fields
// are immutable; patches naming them fail with ImmutableFieldError.
// The stored record is only replaced after the gateway confirms.
func (s *AttemptStore) Update(ctx context.Context, userID, problemID int64, patch api.AttemptPatch) (api.Attempt, error) {
	if patch.UserID != nil {
		return api.Attempt{}, &ImmutableFieldError{Field: "user_id"}
	}
	if patch.ProblemID != nil {
		return api.Attempt{}, &ImmutableFieldError{Field: "problem_id"}
	}
	if verr := validateAttemptPatch(patch); verr != nil {
		return api.Attempt{}, verr
	}

	s.mu.RLock()
	_, exists := s.snapshot.Lookup(userID, problemID)
	s.mu.RUnlock()
	if !exists {
		return api.Attempt{}, &NotFoundError{UserID: userID, ProblemID: problemID}
	}

	updated, err := s.gateway.UpdateAttempt(ctx, userID, problemID, patch)
	if err != nil {
		return api.Attempt{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.snapshot.Attempts {
		if a.UserID == userID && a.ProblemID == problemID {
			s.snapshot.Attempts[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes the record for the given key after the gateway
// confirms. A key with no local record fails with NotFoundError.
func (s *AttemptStore) Delete(ctx context.Context, userID, problemID int64) error {
	s.mu.RLock()
	_, exists := s.snapshot.Lookup(userID, problemID)
	s.mu.RUnlock()
	if !exists {
		return &NotFoundError{UserID: userID, ProblemID: problemID}
	}

	if err := s.gateway.DeleteAttempt(ctx, userID, problemID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.snapshot.Attempts[:0]
	for _, a := range s.snapshot.Attempts {
		if a.UserID == userID && a.ProblemID == problemID {
			continue
		}
		kept = append(kept, a)
	}
	s.snapshot.Attempts = kept
	return nil
}

// Snapshot returns a copy of the current attempt snapshot.
func (s *AttemptStore) Snapshot() AttemptSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Attempts = cloneAttempts(s.snapshot.Attempts)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// All returns the current attempt list in server order.
func (s *AttemptStore) All() []api.Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAttempts(s.snapshot.Attempts)
}

func (s *AttemptStore) recordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

func validateAttemptDraft(draft api.AttemptDraft, catalog []api.Problem) *ValidationError {
	var fields []FieldError
	if draft.UserID <= 0 {
		fields = append(fields, FieldError{Field: "user_id", Reason: "required"})
	}
	if draft.ProblemID <= 0 {
		fields = append(fields, FieldError{Field: "problem_id", Reason: "required"})
	} else if catalog != nil && !problemInCatalog(catalog, draft.ProblemID) {
		fields = append(fields, FieldError{Field: "problem_id", Reason: "unknown problem"})
	}
	if !draft.Status.Valid() {
		fields = append(fields, FieldError{Field: "status", Reason: "must be Attempted, Completed, or Skipped"})
	}
	if draft.NumAttempts < 1 {
		fields = append(fields, FieldError{Field: "num_attempts", Reason: "must be at least 1"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateAttemptPatch(patch api.AttemptPatch) *ValidationError {
	var fields []FieldError
	if patch.Empty() {
		fields = append(fields, FieldError{Field: "patch", Reason: "no mutable fields set"})
	}
	if patch.Status != nil && !patch.Status.Valid() {
		fields = append(fields, FieldError{Field: "status", Reason: "must be Attempted, Completed, or Skipped"})
	}
	if patch.NumAttempts != nil && *patch.NumAttempts < 1 {
		fields = append(fields, FieldError{Field: "num_attempts", Reason: "must be at least 1"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func problemInCatalog(catalog []api.Problem, problemID int64) bool {
	for _, p := range catalog {
		if p.ID == problemID {
			return true
		}
	}
	return false
}

func cloneAttempts(attempts []api.Attempt) []api.Attempt {
	if len(attempts) == 0 {
		return nil
	}
	dup := make([]api.Attempt, len(attempts))
	copy(dup, attempts)
	return dup
}
