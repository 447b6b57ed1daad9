package plan

import (
	"fmt"
	"strings"
)

var progressionTips = []string{
	"Add one rep per set each week before adding weight.",
	"A session should feel challenging, not exhausting. Leave one or two reps in reserve.",
	"Repeat the week at the same loads whenever sleep or recovery was poor.",
	"Re-run the intake form after four weeks so the plan follows your progress.",
}

// Markdown renders the plan as a deterministic Markdown document. It is both
// the download format and the input for HTML rendering.
func (w WeekPlan) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Workout Plan for %s\n\n", w.Profile.Name)
	fmt.Fprintf(&b, "- **Training days:** %s\n", strings.Join(w.Profile.SelectedDays, ", "))
	fmt.Fprintf(&b, "- **Session length:** %d minutes\n", w.Profile.SessionMinutes)
	fmt.Fprintf(&b, "- **Focus areas:** %s\n", strings.Join(w.Profile.TargetAreas, ", "))
	fmt.Fprintf(&b, "- **Location:** %s\n", w.Profile.Location)
	fmt.Fprintf(&b, "- **Assessed risk level:** %s\n", w.Risk)
	if len(w.ExclusionTags) > 0 {
		fmt.Fprintf(&b, "- **Movement cautions:** %s\n", strings.Join(w.ExclusionTags, ", "))
	}
	b.WriteString("\n")

	if w.SafetyFallback() {
		b.WriteString("> **Note:** for at least one day no exercise in our catalog could be verified " +
			"safe for your reported conditions, so a generic selection is shown. " +
			"Please review it with a medical professional before training.\n\n")
	}

	for _, day := range w.Days {
		b.WriteString(day.markdown())
	}

	b.WriteString("## Progression\n\n")
	for _, tip := range progressionTips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	if len(w.Advisories) > 0 {
		b.WriteString("\n## Condition guidelines\n\n")
		for _, advisory := range w.Advisories {
			fmt.Fprintf(&b, "- %s\n", advisory)
		}
	}

	return b.String()
}

func (d DayPlan) markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s — %s\n\n", d.DayName, d.FocusArea)

	if d.Narrative != "" {
		b.WriteString(strings.TrimSpace(d.Narrative))
		b.WriteString("\n\n")
		return b.String()
	}

	if d.SafetyFallback {
		b.WriteString("> Generic selection, see the note above.\n\n")
	}

	b.WriteString("### Warm-up\n\n")
	for _, m := range d.WarmUp {
		fmt.Fprintf(&b, "- %s (%s)\n", m.Name, m.Duration)
	}
	b.WriteString("\n### Main exercises\n\n")
	for i, ex := range d.Main {
		fmt.Fprintf(&b, "%d. **%s** — %s, %s, rest %s\n", i+1, ex.Name, ex.Reps, ex.Intensity, ex.Rest)
		if ex.SafetyNote != "" {
			fmt.Fprintf(&b, "   - Safety: %s\n", ex.SafetyNote)
		}
	}
	b.WriteString("\n### Cool-down\n\n")
	for _, m := range d.CoolDown {
		fmt.Fprintf(&b, "- %s (%s)\n", m.Name, m.Duration)
	}
	b.WriteString("\n")

	return b.String()
}
