package filter

import (
	"reflect"
	"testing"

	"github.com/Amii911/AlgoTrack/internal/api"
)

func testProblems() []api.Problem {
	return []api.Problem{
		{ID: 1, Name: "Two Sum", Difficulty: api.DifficultyEasy, Category: "Arrays"},
		{ID: 2, Name: "Add Two Numbers", Difficulty: api.DifficultyMedium, Category: "Linked Lists"},
		{ID: 3, Name: "Course Schedule", Difficulty: api.DifficultyMedium, Category: "Graphs"},
		{ID: 4, Name: "Word Ladder", Difficulty: api.DifficultyHard, Category: "Graphs"},
	}
}

func TestApply_EmptyCriteriaIsIdentity(t *testing.T) {
	problems := testProblems()
	got := Apply(problems, Criteria{})
	if !reflect.DeepEqual(got, problems) {
		t.Fatalf("empty criteria must return the input unchanged, got %#v", got)
	}

	// Whitespace-only search is still no constraint.
	got = Apply(problems, Criteria{SearchText: "   "})
	if !reflect.DeepEqual(got, problems) {
		t.Fatalf("blank search must be identity, got %#v", got)
	}
}

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Apply(testProblems(), Criteria{SearchText: "two"})
	if len(got) != 2 {
		t.Fatalf("matches = %#v, want Two Sum and Add Two Numbers", got)
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("matches = %#v, input order must be preserved", got)
	}
}

func TestApply_DifficultyIsExactMatch(t *testing.T) {
	problems := testProblems()
	got := Apply(problems, Criteria{Difficulty: api.DifficultyEasy})
	if len(got) > len(problems) {
		t.Fatal("filtered view cannot exceed the input")
	}
	for _, p := range got {
		if p.Difficulty != api.DifficultyEasy {
			t.Fatalf("got %#v, want only Easy records", got)
		}
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got %#v, want only Two Sum", got)
	}
}

func TestApply_CriteriaAreConjunctive(t *testing.T) {
	got := Apply(testProblems(), Criteria{
		SearchText: "o",
		Difficulty: api.DifficultyMedium,
		Category:   "Graphs",
	})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("got %#v, want only Course Schedule", got)
	}
}

func TestApply_IsDeterministic(t *testing.T) {
	problems := testProblems()
	criteria := Criteria{Category: "Graphs"}
	first := Apply(problems, criteria)
	second := Apply(problems, criteria)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls diverged: %#v vs %#v", first, second)
	}
}

func TestCategories_FirstEncounteredOrder(t *testing.T) {
	got := Categories(testProblems())
	want := []string{"Arrays", "Linked Lists", "Graphs"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories = %#v, want %#v", got, want)
	}
}
