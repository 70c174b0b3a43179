// Package filter derives filtered catalog views. Filtering is a pure
// function over a catalog snapshot: no state, no side effects, safe to
// recompute on every render.
package filter

import (
	"strings"

	"github.com/Amii911/AlgoTrack/internal/api"
)

// Criteria is a conjunctive predicate set over catalog problems. A
// zero-valued field places no constraint on its axis.
type Criteria struct {
	SearchText string         // case-insensitive substring of the problem name
	Difficulty api.Difficulty // exact match when set
	Category   string         // exact match when set
}

// Empty reports whether the criteria constrain nothing.
func (c Criteria) Empty() bool {
	return strings.TrimSpace(c.SearchText) == "" && c.Difficulty == "" && c.Category == ""
}

// Apply returns the problems matching every set criterion, preserving
// input order. Empty criteria return the input unchanged.
func Apply(problems []api.Problem, c Criteria) []api.Problem {
	if c.Empty() {
		return problems
	}
	search := strings.ToLower(strings.TrimSpace(c.SearchText))
	out := make([]api.Problem, 0, len(problems))
	for _, p := range problems {
		if matches(p, search, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p api.Problem, search string, c Criteria) bool {
	if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
		return false
	}
	if c.Difficulty != "" && p.Difficulty != c.Difficulty {
		return false
	}
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	return true
}

// Categories returns the distinct categories of the given problems in
// first-encountered order, for building filter choices.
func Categories(problems []api.Problem) []string {
	seen := make(map[string]struct{}, len(problems))
	var out []string
	for _, p := range problems {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
