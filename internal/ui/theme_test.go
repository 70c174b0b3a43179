package ui

import (
	"strings"
	"testing"

	"github.com/Amii911/AlgoTrack/internal/api"
)

func TestThemeByName(t *testing.T) {
	if got := themeByName("Dracula"); got.Name != "Dracula" {
		t.Fatalf("themeByName(Dracula).Name = %q, want Dracula", got.Name)
	}
	if got := themeByName("Gruvbox"); got.Name != "Gruvbox" {
		t.Fatalf("themeByName(Gruvbox).Name = %q, want Gruvbox", got.Name)
	}
	if got := themeByName("Unknown"); got.Name != "Dracula" {
		t.Fatalf("themeByName(Unknown).Name = %q, want Dracula (fallback)", got.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	if got := nextTheme("Dracula"); got.Name != "Gruvbox" {
		t.Fatalf("nextTheme(Dracula) = %q, want Gruvbox", got.Name)
	}
	if got := nextTheme("Gruvbox"); got.Name != "Dracula" {
		t.Fatalf("nextTheme(Gruvbox) = %q, want Dracula", got.Name)
	}
	if got := nextTheme("Unknown"); got.Name != "Dracula" {
		t.Fatalf("nextTheme(Unknown) = %q, want Dracula", got.Name)
	}
}

func TestThemesCoverAllEnumValues(t *testing.T) {
	for _, th := range themes {
		for _, d := range api.Difficulties() {
			if _, ok := th.DifficultyColors[d]; !ok {
				t.Errorf("theme %s missing difficulty color for %s", th.Name, d)
			}
		}
		for _, s := range api.Statuses() {
			if _, ok := th.StatusColors[s]; !ok {
				t.Errorf("theme %s missing status color for %s", th.Name, s)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate(short, 10) = %q, want unchanged", got)
	}
	if got := truncate("longer text", 7); got != "longer…" {
		t.Fatalf("truncate = %q, want %q", got, "longer…")
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("truncate with max 0 = %q, want empty", got)
	}
	if got := truncate("ab", 1); got != "…" {
		t.Fatalf("truncate with max 1 = %q, want ellipsis", got)
	}
}

func TestProgressBarWidth(t *testing.T) {
	styles := themeByName("Dracula").Styles()
	for _, percent := range []int{-10, 0, 33, 100, 150} {
		bar := progressBar(percent, 20, styles)
		filled := strings.Count(bar, "█")
		empty := strings.Count(bar, "░")
		if filled+empty != 20 {
			t.Fatalf("progressBar(%d, 20) has %d cells, want 20", percent, filled+empty)
		}
	}
	if bar := progressBar(50, 20, styles); strings.Count(bar, "█") != 10 {
		t.Fatalf("progressBar(50, 20) filled = %d, want 10", strings.Count(bar, "█"))
	}
}
