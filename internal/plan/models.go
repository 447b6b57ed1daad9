// Package plan generates personalized multi-day workout plans from an intake
// profile. Each training day is generated remote-first through a chat-completion
// model and composed by the deterministic local engine whenever the remote call
// is unavailable or fails.
package plan

import (
	"errors"
	"fmt"
	"strings"
)

// Location describes where the user trains. A large gym is assumed to have
// unlimited equipment, which disables the equipment filter entirely.
type Location string

// Workout location constants.
const (
	LocationHome     Location = "Home"
	LocationSmallGym Location = "Small Gym"
	LocationLargeGym Location = "Large Gym"
	LocationOutdoor  Location = "Outdoor"
	LocationMixed    Location = "Mixed"
)

// Locations lists all valid workout locations in display order.
func Locations() []Location {
	return []Location{LocationHome, LocationSmallGym, LocationLargeGym, LocationOutdoor, LocationMixed}
}

// RiskLevel is the derived medical risk classification for a profile. It is
// recomputed from the profile whenever needed, never stored independently.
type RiskLevel int

// Risk levels ordered from no reported conditions to high risk.
const (
	RiskNone RiskLevel = iota
	RiskLow
	RiskModerate
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskNone:
		return "None"
	case RiskLow:
		return "Low"
	case RiskModerate:
		return "Moderate"
	case RiskHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Exercise is an immutable catalog entry. Prescription fields (Reps, Intensity,
// Rest) are opaque display text and are never parsed numerically.
type Exercise struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Level             string   `json:"level"`
	Equipment         []string `json:"equipment"`
	TargetAreas       []string `json:"target_areas"`
	Contraindications []string `json:"contraindications"`
	Reps              string   `json:"reps"`
	Intensity         string   `json:"intensity"`
	Rest              string   `json:"rest"`
	Rating            float64  `json:"rating"`
	Steps             []string `json:"steps"`
	SafetyNote        string   `json:"safety_note"`
}

// NoConditions is the sentinel condition entry meaning "no medical conditions
// reported". A conditions slice equal to [NoConditions] must never match any
// contraindication.
const NoConditions = "None"

// FullBodyArea is the wildcard target area that matches the entire catalog.
const FullBodyArea = "Full Body"

// Session duration bands in minutes.
const (
	SessionThirtyMinutes = 30
	SessionFortyFiveMin  = 45
	SessionOneHour       = 60
	SessionNinetyMinutes = 90
)

// SessionDurations lists the allowed session duration bands in minutes.
func SessionDurations() []int {
	return []int{SessionThirtyMinutes, SessionFortyFiveMin, SessionOneHour, SessionNinetyMinutes}
}

// Fitness level bounds (1 = lowest function, 5 = most advanced).
const (
	MinFitnessLevel = 1
	MaxFitnessLevel = 5
)

// Profile is the structured result of the intake form. The form collaborator is
// responsible for producing it; the engine validates it before any generation.
type Profile struct {
	Name                string   `json:"name"`
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	MedicalConditions   []string `json:"medical_conditions"`
	PhysicalLimitations string   `json:"physical_limitations"`
	TargetAreas         []string `json:"target_areas"`
	Location            Location `json:"location"`
	Equipment           []string `json:"equipment"`
	FitnessLevel        int      `json:"fitness_level"`
	SessionMinutes      int      `json:"session_minutes"`
	SelectedDays        []string `json:"selected_days"`
}

// HasNoConditions reports whether the profile carries the "no conditions"
// sentinel or an empty condition list.
func (p Profile) HasNoConditions() bool {
	if len(p.MedicalConditions) == 0 {
		return true
	}
	return len(p.MedicalConditions) == 1 && strings.EqualFold(p.MedicalConditions[0], NoConditions)
}

// Validate rejects malformed profiles with a descriptive error. Safety-relevant
// fields are never defaulted: a profile without an explicit medical condition
// answer (the sentinel counts as an answer) is invalid.
func (p Profile) Validate() error {
	var errs []error

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if p.Age < 0 {
		errs = append(errs, fmt.Errorf("age must not be negative, got %d", p.Age))
	}
	if p.MedicalConditions == nil {
		errs = append(errs, errors.New("medical conditions must be answered explicitly, use the sentinel \"None\" for none"))
	}
	if len(p.TargetAreas) == 0 {
		errs = append(errs, errors.New("at least one target area is required"))
	}
	if len(p.SelectedDays) == 0 {
		errs = append(errs, errors.New("at least one training day is required"))
	}
	seenDays := make(map[string]struct{}, len(p.SelectedDays))
	for _, day := range p.SelectedDays {
		if _, ok := seenDays[day]; ok {
			errs = append(errs, fmt.Errorf("duplicate training day: %s", day))
		}
		seenDays[day] = struct{}{}
	}
	if !validLocation(p.Location) {
		errs = append(errs, fmt.Errorf("unknown workout location: %q", p.Location))
	}
	if p.FitnessLevel < MinFitnessLevel || p.FitnessLevel > MaxFitnessLevel {
		errs = append(errs, fmt.Errorf("fitness level must be between %d and %d, got %d",
			MinFitnessLevel, MaxFitnessLevel, p.FitnessLevel))
	}
	if !validSessionMinutes(p.SessionMinutes) {
		errs = append(errs, fmt.Errorf("unknown session duration: %d minutes", p.SessionMinutes))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid profile: %w", errors.Join(errs...))
	}
	return nil
}

func validLocation(loc Location) bool {
	for _, l := range Locations() {
		if l == loc {
			return true
		}
	}
	return false
}

func validSessionMinutes(minutes int) bool {
	for _, d := range SessionDurations() {
		if d == minutes {
			return true
		}
	}
	return false
}

// Movement is a single warm-up or cool-down entry. Warm-ups are mobility-only
// and cool-downs are stretch/breathing-only, regardless of focus area.
type Movement struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// DayPlan is one training day. It has no persisted identity and is regenerated
// on each request.
type DayPlan struct {
	DayName   string     `json:"day_name"`
	FocusArea string     `json:"focus_area"`
	WarmUp    []Movement `json:"warm_up"`
	Main      []Exercise `json:"main"`
	CoolDown  []Movement `json:"cool_down"`
	// SafetyFallback is set when no exercise passed the contraindication
	// filter and the plan fell back to a generic catalog subset. Callers must
	// be able to distinguish this day from a medically verified one.
	SafetyFallback bool `json:"safety_fallback"`
	// Narrative holds the remote model's text for this day when the remote
	// path succeeded. The deterministic engine never sets it.
	Narrative string `json:"narrative,omitempty"`
}

// WeekPlan is the full generated plan. It is ephemeral: it exists for the
// duration of a single generation request and is handed off for rendering.
type WeekPlan struct {
	Profile       Profile   `json:"profile"`
	Risk          RiskLevel `json:"risk"`
	ExclusionTags []string  `json:"exclusion_tags"`
	Days          []DayPlan `json:"days"`
	Advisories    []string  `json:"advisories"`
}

// SafetyFallback reports whether any day required the "no safe exercise"
// fallback.
func (w WeekPlan) SafetyFallback() bool {
	for _, day := range w.Days {
		if day.SafetyFallback {
			return true
		}
	}
	return false
}
