package plan

import (
	"strings"
	"testing"
)

func TestWeekPlanMarkdown(t *testing.T) {
	planner := newTestPlanner(t)

	week, err := planner.ComposeWeek(t.Context(), validProfile())
	if err != nil {
		t.Fatalf("compose week: %v", err)
	}
	markdown := week.Markdown()

	for _, want := range []string{
		"# Workout Plan for Maija",
		"**Assessed risk level:** None",
		"## Monday — Core",
		"## Wednesday — Legs",
		"### Warm-up",
		"### Main exercises",
		"### Cool-down",
		"## Progression",
	} {
		if !strings.Contains(markdown, want) {
			t.Errorf("markdown is missing %q", want)
		}
	}

	if strings.Contains(markdown, "generic selection") {
		t.Error("safety disclaimer rendered although no day used the fallback")
	}
}

func TestWeekPlanMarkdown_narrativeReplacesLocalSections(t *testing.T) {
	planner := newTestPlanner(t)

	week, err := planner.ComposeWeek(t.Context(), validProfile())
	if err != nil {
		t.Fatalf("compose week: %v", err)
	}
	week.Days[0].Narrative = "## Remote workout\n\nDo the thing."
	markdown := week.Markdown()

	if !strings.Contains(markdown, "Remote workout") {
		t.Error("narrative not rendered")
	}
	// The narrative day keeps its heading but drops the local sections, so
	// the local section headings appear once per remaining local day.
	if got, want := strings.Count(markdown, "### Main exercises"), len(week.Days)-1; got != want {
		t.Errorf("got %d local main sections, want %d", got, want)
	}
}

func TestWeekPlanMarkdown_safetyFallbackDisclaimer(t *testing.T) {
	planner := newTestPlanner(t)

	week, err := planner.ComposeWeek(t.Context(), validProfile())
	if err != nil {
		t.Fatalf("compose week: %v", err)
	}
	week.Days[1].SafetyFallback = true
	markdown := week.Markdown()

	if !strings.Contains(markdown, "could be verified") {
		t.Error("week-level safety disclaimer missing")
	}
	if !strings.Contains(markdown, "> Generic selection") {
		t.Error("day-level fallback note missing")
	}
}
