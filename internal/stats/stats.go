// Package stats reduces a user's progress records into aggregate
// statistics. Aggregation is a pure function over store snapshots and
// is deterministic: the same inputs always yield the same result,
// including category ordering.
package stats

import (
	"math"
	"sort"

	"github.com/Amii911/AlgoTrack/internal/api"
)

// topCategoryLimit caps the category leaderboard.
const topCategoryLimit = 5

// CategoryCount pairs a category label with its frequency.
type CategoryCount struct {
	Category string
	Count    int
}

// Statistics summarizes one user's tracked progress joined against the
// catalog. Derived, never persisted.
type Statistics struct {
	Total     int
	Completed int
	Attempted int
	Skipped   int

	ByDifficulty map[api.Difficulty]int

	// TopCategories is sorted descending by count, ties broken by
	// first-encountered order, truncated to the top five.
	TopCategories []CategoryCount

	// CompletionRate is completed/total as a rounded percentage,
	// zero when nothing is tracked.
	CompletionRate int
}

// Aggregate reduces attempts joined against the catalog snapshot.
// Attempts referencing a problem absent from the snapshot (removed
// from the catalog since tracking began) still count toward status
// totals but are skipped for difficulty and category attribution.
func Aggregate(attempts []api.Attempt, problems []api.Problem) Statistics {
	s := Statistics{
		ByDifficulty: map[api.Difficulty]int{},
	}
	for _, d := range api.Difficulties() {
		s.ByDifficulty[d] = 0
	}

	byID := make(map[int64]api.Problem, len(problems))
	for _, p := range problems {
		byID[p.ID] = p
	}

	counts := make(map[string]int)
	var order []string

	for _, a := range attempts {
		s.Total++
		switch a.Status {
		case api.StatusCompleted:
			s.Completed++
		case api.StatusAttempted:
			s.Attempted++
		case api.StatusSkipped:
			s.Skipped++
		}

		problem, ok := byID[a.ProblemID]
		if !ok {
			continue
		}
		s.ByDifficulty[problem.Difficulty]++
		if counts[problem.Category] == 0 {
			order = append(order, problem.Category)
		}
		counts[problem.Category]++
	}

	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}

	s.TopCategories = topCategories(counts, order)
	return s
}

// topCategories orders categories by descending count. Iterating the
// first-encountered order and sorting stably keeps ties deterministic.
func topCategories(counts map[string]int, order []string) []CategoryCount {
	if len(order) == 0 {
		return nil
	}
	out := make([]CategoryCount, 0, len(order))
	for _, category := range order {
		out = append(out, CategoryCount{Category: category, Count: counts[category]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > topCategoryLimit {
		out = out[:topCategoryLimit]
	}
	return out
}
