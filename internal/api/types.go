package api

import "time"

const dateLayout = "2006-01-02"

// Difficulty is a catalog problem's difficulty label.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties returns the enum values in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is one of the enumerated difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Status is a user's progress state on a tracked problem.
type Status string

const (
	StatusAttempted Status = "Attempted"
	StatusCompleted Status = "Completed"
	StatusSkipped   Status = "Skipped"
)

// Statuses returns the enum values in display order.
func Statuses() []Status {
	return []Status{StatusAttempted, StatusCompleted, StatusSkipped}
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAttempted, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// Problem is a shared catalog entry. Identity is server-assigned and
// immutable once created.
type Problem struct {
	ID         int64      `json:"id"`
	Name       string     `json:"problem_name"`
	Link       string     `json:"problem_link"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
}

// ProblemDraft is the client-supplied body for catalog creation.
type ProblemDraft struct {
	Name       string     `json:"problem_name"`
	Link       string     `json:"problem_link"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
}

// problemListEnvelope mirrors the paginated form of GET /problems.
// Pagination metadata is ignored.
type problemListEnvelope struct {
	Problems []Problem `json:"problems"`
}

// Attempt is one user's progress record against one catalog problem.
// The (UserID, ProblemID) pair is the record's key.
type Attempt struct {
	UserID        int64  `json:"user_id"`
	ProblemID     int64  `json:"problem_id"`
	Status        Status `json:"status"`
	NumAttempts   int    `json:"num_attempts"`
	Notes         string `json:"notes"`
	DateAttempted string `json:"date_attempted"`
}

// ParsedDate returns DateAttempted as a time.Time when possible.
func (a Attempt) ParsedDate() time.Time {
	if a.DateAttempted == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, a.DateAttempted)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AttemptDraft is the client-supplied body for POST /user-problems.
type AttemptDraft struct {
	UserID        int64  `json:"user_id"`
	ProblemID     int64  `json:"problem_id"`
	Status        Status `json:"status"`
	NumAttempts   int    `json:"num_attempts"`
	Notes         string `json:"notes"`
	DateAttempted string `json:"date_attempted"`
}

// WithDefaults fills the fields a fresh tracking record starts with:
// status Attempted, a single attempt, dated now.
func (d AttemptDraft) WithDefaults(now time.Time) AttemptDraft {
	if d.Status == "" {
		d.Status = StatusAttempted
	}
	if d.NumAttempts == 0 {
		d.NumAttempts = 1
	}
	if d.DateAttempted == "" {
		d.DateAttempted = now.Format(dateLayout)
	}
	return d
}

// AttemptPatch carries the mutable fields of an update. Nil fields are
// left unchanged. The key fields are present so an attempted key change
// can be rejected explicitly instead of silently dropped; they are
// never legal in a patch.
type AttemptPatch struct {
	Status      *Status `json:"status,omitempty"`
	NumAttempts *int    `json:"num_attempts,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	UserID      *int64  `json:"user_id,omitempty"`
	ProblemID   *int64  `json:"problem_id,omitempty"`
}

// Empty reports whether the patch changes none of the mutable fields.
func (p AttemptPatch) Empty() bool {
	return p.Status == nil && p.NumAttempts == nil && p.Notes == nil
}

// User identifies an authenticated account.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"user_name"`
	Email string `json:"email"`
}
