package state

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Amii911/AlgoTrack/internal/api"
)

// CatalogSnapshot is an immutable view of the problem catalog.
type CatalogSnapshot struct {
	Problems            []api.Problem
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive load failures
}

// IsOffline returns true when the API has been unreachable for
// multiple loads.
func (s CatalogSnapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Lookup returns the problem with the given id when present.
func (s CatalogSnapshot) Lookup(problemID int64) (api.Problem, bool) {
	for _, p := range s.Problems {
		if p.ID == problemID {
			return p, true
		}
	}
	return api.Problem{}, false
}

// CatalogStore holds the client-side cache of the shared problem
// catalog. Loads replace the contents wholesale; failed loads keep the
// previous contents and record the error.
type CatalogStore struct {
	gateway api.Gateway

	mu       sync.RWMutex
	snapshot CatalogSnapshot
}

// NewCatalogStore builds a store backed by the given gateway.
func NewCatalogStore(gateway api.Gateway) *CatalogStore {
	return &CatalogStore{gateway: gateway}
}

// LoadAll fetches the full catalog and replaces the prior contents.
// A gateway failure or a malformed record discards the whole result;
// the store keeps reflecting its last successful load.
func (s *CatalogStore) LoadAll(ctx context.Context) ([]api.Problem, error) {
	problems, err := s.gateway.FetchProblems(ctx)
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}
	if err := checkCatalogRecords(problems); err != nil {
		fe := &api.FetchError{Op: "GET /problems", Err: err}
		s.recordFailure(fe)
		return nil, fe
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Problems = cloneProblems(problems)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return cloneProblems(problems), nil
}

// Create validates a catalog draft, submits it, and appends the server
// record to the local cache. Validation failures never reach the
// gateway; gateway failures leave local state unchanged.
func (s *CatalogStore) Create(ctx context.Context, draft api.ProblemDraft) (api.Problem, error) {
	if verr := validateProblemDraft(draft); verr != nil {
		return api.Problem{}, verr
	}
	created, err := s.gateway.CreateProblem(ctx, draft)
	if err != nil {
		return api.Problem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Problems = append(s.snapshot.Problems, created)
	return created, nil
}

// Snapshot returns a copy of the current catalog snapshot.
func (s *CatalogStore) Snapshot() CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Problems = cloneProblems(s.snapshot.Problems)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// All returns the current problem list in server order.
func (s *CatalogStore) All() []api.Problem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProblems(s.snapshot.Problems)
}

func (s *CatalogStore) recordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

// checkCatalogRecords rejects a fetched catalog containing records
// with missing required fields, so a bad payload is never partially
// applied.
func checkCatalogRecords(problems []api.Problem) error {
	for i, p := range problems {
		switch {
		case p.ID <= 0:
			return fmt.Errorf("record %d: missing id", i)
		case strings.TrimSpace(p.Name) == "":
			return fmt.Errorf("record %d (id %d): missing name", i, p.ID)
		case !p.Difficulty.Valid():
			return fmt.Errorf("record %d (id %d): bad difficulty %q", i, p.ID, p.Difficulty)
		case strings.TrimSpace(p.Category) == "":
			return fmt.Errorf("record %d (id %d): missing category", i, p.ID)
		}
	}
	return nil
}

func validateProblemDraft(draft api.ProblemDraft) *ValidationError {
	var fields []FieldError
	if len(strings.TrimSpace(draft.Name)) < 3 {
		fields = append(fields, FieldError{Field: "problem_name", Reason: "must be at least 3 characters"})
	}
	if !isAbsoluteURL(draft.Link) {
		fields = append(fields, FieldError{Field: "problem_link", Reason: "must be an absolute URL"})
	}
	if !draft.Difficulty.Valid() {
		fields = append(fields, FieldError{Field: "difficulty", Reason: "must be Easy, Medium, or Hard"})
	}
	if len(strings.TrimSpace(draft.Category)) < 2 {
		fields = append(fields, FieldError{Field: "category", Reason: "must be at least 2 characters"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && u.IsAbs() && u.Host != ""
}

func cloneProblems(problems []api.Problem) []api.Problem {
	if len(problems) == 0 {
		return nil
	}
	dup := make([]api.Problem, len(problems))
	copy(dup, problems)
	return dup
}
