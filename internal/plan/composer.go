package plan

import (
	"context"
	"fmt"
	"log/slog"
)

// Fixed warm-up and cool-down templates. Deliberately not drawn from the
// catalog: warm-ups are mobility-only and cool-downs are stretch/breathing
// only, regardless of the day's focus area, and neither may overlap a main
// exercise by name.
var (
	warmUpTemplate = []Movement{
		{Name: "Arm circles", Duration: "1 minute"},
		{Name: "Hip circles", Duration: "1 minute"},
		{Name: "Leg swings", Duration: "1 minute per leg"},
		{Name: "March in place", Duration: "2 minutes"},
	}
	coolDownTemplate = []Movement{
		{Name: "Standing quad stretch", Duration: "30 seconds per leg"},
		{Name: "Hamstring stretch", Duration: "30 seconds per leg"},
		{Name: "Chest doorway stretch", Duration: "30 seconds"},
		{Name: "Child's pose", Duration: "1 minute"},
		{Name: "Deep slow breathing", Duration: "1 minute"},
	}
)

// Planner is the deterministic local plan engine. It holds only read-only
// state and is safe for concurrent use.
type Planner struct {
	catalog *Catalog
	logger  *slog.Logger
}

// NewPlanner wires a planner over the given catalog.
func NewPlanner(catalog *Catalog, logger *slog.Logger) *Planner {
	return &Planner{catalog: catalog, logger: logger}
}

// focusArea returns the focus for a day index, rotating cyclically through the
// profile's target areas.
func focusArea(profile Profile, dayIndex int) string {
	return profile.TargetAreas[dayIndex%len(profile.TargetAreas)]
}

// ComposeDay builds one training day deterministically from the catalog.
// The day index selects the focus area by cyclic rotation over the profile's
// target areas. It never fails for a valid profile.
func (p *Planner) ComposeDay(ctx context.Context, profile Profile, dayName string, dayIndex int) DayPlan {
	focus := focusArea(profile, dayIndex)
	exercises, safetyFallback := p.catalog.selectForDay(profile, focus)
	if safetyFallback {
		p.logger.LogAttrs(ctx, slog.LevelWarn,
			"no medically safe exercise found, using generic fallback",
			slog.String("day", dayName),
			slog.String("focusArea", focus),
			slog.Any("conditions", profile.MedicalConditions))
	}
	return DayPlan{
		DayName:        dayName,
		FocusArea:      focus,
		WarmUp:         warmUpTemplate,
		Main:           exercises,
		CoolDown:       coolDownTemplate,
		SafetyFallback: safetyFallback,
	}
}

// ComposeWeek builds the full plan locally, one day per selected day in order.
// The only failure mode is a malformed profile.
func (p *Planner) ComposeWeek(ctx context.Context, profile Profile) (WeekPlan, error) {
	if err := profile.Validate(); err != nil {
		return WeekPlan{}, fmt.Errorf("compose week: %w", err)
	}
	week := WeekPlan{
		Profile:       profile,
		Risk:          AssessRisk(profile.MedicalConditions, profile.PhysicalLimitations),
		ExclusionTags: ExclusionTags(profile.MedicalConditions, profile.PhysicalLimitations),
	}
	for i, dayName := range profile.SelectedDays {
		week.Days = append(week.Days, p.ComposeDay(ctx, profile, dayName, i))
	}
	return week, nil
}
