package plan

import (
	"fmt"
	"strings"
)

// buildDayPrompt formats the chat-completion prompt for one training day. It
// is pure string construction over the profile and carries no selection logic;
// the deterministic engine is the authority on which exercises are safe.
func buildDayPrompt(profile Profile, dayName string, dayIndex int) string {
	focus := focusArea(profile, dayIndex)
	risk := AssessRisk(profile.MedicalConditions, profile.PhysicalLimitations)

	var b strings.Builder
	fmt.Fprintf(&b, "Write a %d-minute %s workout for %s for one training day (%s).\n\n",
		profile.SessionMinutes, focus, profile.Name, dayName)

	fmt.Fprintf(&b, "Profile:\n")
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	if profile.Gender != "" {
		fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender)
	}
	fmt.Fprintf(&b, "- Fitness level: %d of %d\n", profile.FitnessLevel, MaxFitnessLevel)
	fmt.Fprintf(&b, "- Location: %s\n", profile.Location)
	if profile.Location == LocationLargeGym {
		b.WriteString("- Equipment: full commercial gym\n")
	} else if len(profile.Equipment) > 0 {
		fmt.Fprintf(&b, "- Equipment: %s\n", strings.Join(profile.Equipment, ", "))
	} else {
		b.WriteString("- Equipment: bodyweight only\n")
	}
	fmt.Fprintf(&b, "- Medical conditions: %s\n", strings.Join(profile.MedicalConditions, ", "))
	if profile.PhysicalLimitations != "" {
		fmt.Fprintf(&b, "- Physical limitations: %s\n", profile.PhysicalLimitations)
	}
	fmt.Fprintf(&b, "- Assessed risk level: %s\n", risk)
	if tags := ExclusionTags(profile.MedicalConditions, profile.PhysicalLimitations); len(tags) > 0 {
		fmt.Fprintf(&b, "- Movement cautions: %s\n", strings.Join(tags, ", "))
	}

	fmt.Fprintf(&b, "\nRules:\n")
	fmt.Fprintf(&b, "- Exactly %d main exercises with sets, reps, intensity (RPE) and rest.\n",
		mainExerciseCount(profile.SessionMinutes))
	b.WriteString("- Start with a short mobility-only warm-up and end with a stretching cool-down.\n")
	b.WriteString("- Never prescribe an exercise that conflicts with the listed medical conditions.\n")
	b.WriteString("- Answer in Markdown with a heading per section.\n")
	return b.String()
}
