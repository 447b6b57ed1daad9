package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/mlintula/fitplan/internal/plan"
)

const (
	sessionKeyIntake    = "intake"
	sessionKeyPlanToken = "planToken"
)

// Wizard steps in order. The last step submits the whole profile for
// generation.
const (
	stepAbout     = "about"
	stepMedical   = "medical"
	stepEquipment = "equipment"
	stepSchedule  = "schedule"
)

func intakeSteps() []string {
	return []string{stepAbout, stepMedical, stepEquipment, stepSchedule}
}

// intakeState accumulates the intake answers across wizard steps. It is
// serialized to JSON in the session between requests.
type intakeState struct {
	Name                string   `json:"name"`
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	MedicalConditions   []string `json:"medical_conditions"`
	PhysicalLimitations string   `json:"physical_limitations"`
	Location            string   `json:"location"`
	Equipment           []string `json:"equipment"`
	FitnessLevel        int      `json:"fitness_level"`
	TargetAreas         []string `json:"target_areas"`
	SessionMinutes      int      `json:"session_minutes"`
	SelectedDays        []string `json:"selected_days"`
}

// HasEquipment reports whether the named equipment is selected. Used by the
// equipment step template to restore checkbox state.
func (s intakeState) HasEquipment(name string) bool {
	return slices.Contains(s.Equipment, name)
}

// HasTargetArea reports whether the named target area is selected.
func (s intakeState) HasTargetArea(name string) bool {
	return slices.Contains(s.TargetAreas, name)
}

// HasDay reports whether the named weekday is selected.
func (s intakeState) HasDay(name string) bool {
	return slices.Contains(s.SelectedDays, name)
}

// MedicalConditionsText renders the conditions list back into the free-text
// form field, hiding the "None" sentinel from the user.
func (s intakeState) MedicalConditionsText() string {
	if len(s.MedicalConditions) == 1 && strings.EqualFold(s.MedicalConditions[0], plan.NoConditions) {
		return ""
	}
	return strings.Join(s.MedicalConditions, ", ")
}

// profile converts the accumulated state into a profile for generation. An
// empty conditions answer becomes the explicit "None" sentinel so that the
// engine sees an answered question rather than a missing one.
func (s intakeState) profile() plan.Profile {
	conditions := s.MedicalConditions
	if len(conditions) == 0 {
		conditions = []string{plan.NoConditions}
	}
	return plan.Profile{
		Name:                s.Name,
		Age:                 s.Age,
		Gender:              s.Gender,
		MedicalConditions:   conditions,
		PhysicalLimitations: s.PhysicalLimitations,
		TargetAreas:         s.TargetAreas,
		Location:            plan.Location(s.Location),
		Equipment:           s.Equipment,
		FitnessLevel:        s.FitnessLevel,
		SessionMinutes:      s.SessionMinutes,
		SelectedDays:        s.SelectedDays,
	}
}

type durationOption struct {
	Value int
	Label string
}

func durationOptions() []durationOption {
	return []durationOption{
		{Value: plan.SessionThirtyMinutes, Label: "30 minutes"},
		{Value: plan.SessionFortyFiveMin, Label: "45 minutes"},
		{Value: plan.SessionOneHour, Label: "1 hour"},
		{Value: plan.SessionNinetyMinutes, Label: "1.5 hours"},
	}
}

func genderOptions() []string {
	return []string{"Female", "Male", "Other", "Prefer not to say"}
}

// equipmentOptions lists the selectable equipment. The names match the
// exercise catalog vocabulary so that selections filter it directly.
func equipmentOptions() []string {
	return []string{
		"Dumbbell",
		"Barbell",
		"Bench",
		"Kettlebell",
		"Resistance Band",
		"Cable Machine",
		"Leg Press Machine",
		"Exercise Bike",
		"Mat",
	}
}

func targetAreaOptions() []string {
	return []string{
		"Core",
		"Legs",
		"Glutes",
		"Back",
		"Chest",
		"Shoulders",
		"Arms",
		"Cardio",
		plan.FullBodyArea,
	}
}

func dayOptions() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

type intakeTemplateData struct {
	BaseTemplateData
	Step              string
	State             intakeState
	Error             string
	GenderOptions     []string
	LocationOptions   []plan.Location
	EquipmentOptions  []string
	TargetAreaOptions []string
	DurationOptions   []durationOption
	DayOptions        []string
	FitnessLevels     []int
}

func (app *application) newIntakeTemplateData(r *http.Request, step string, state intakeState) intakeTemplateData {
	return intakeTemplateData{
		BaseTemplateData:  newBaseTemplateData(r),
		Step:              step,
		State:             state,
		Error:             "",
		GenderOptions:     genderOptions(),
		LocationOptions:   plan.Locations(),
		EquipmentOptions:  equipmentOptions(),
		TargetAreaOptions: targetAreaOptions(),
		DurationOptions:   durationOptions(),
		DayOptions:        dayOptions(),
		FitnessLevels:     []int{1, 2, 3, 4, 5},
	}
}

// intakeState loads the wizard state from the session. A missing or corrupt
// session entry starts the wizard from scratch.
func (app *application) intakeState(r *http.Request) intakeState {
	var state intakeState
	raw := app.sessionManager.GetBytes(r.Context(), sessionKeyIntake)
	if len(raw) == 0 {
		return state
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return intakeState{}
	}
	return state
}

func (app *application) saveIntakeState(r *http.Request, state intakeState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal intake state: %w", err)
	}
	app.sessionManager.Put(r.Context(), sessionKeyIntake, raw)
	return nil
}

// planToken returns the visitor's plan token, or empty when no plan has been
// generated in this session.
func (app *application) planToken(r *http.Request) string {
	return app.sessionManager.GetString(r.Context(), sessionKeyPlanToken)
}

func validStep(step string) bool {
	return slices.Contains(intakeSteps(), step)
}

func nextStep(step string) string {
	steps := intakeSteps()
	i := slices.Index(steps, step)
	if i < 0 || i == len(steps)-1 {
		return ""
	}
	return steps[i+1]
}

// intakeGET renders a single wizard step with previously saved answers filled
// in.
func (app *application) intakeGET(w http.ResponseWriter, r *http.Request) {
	step := r.PathValue("step")
	if !validStep(step) {
		app.notFound(w, r)
		return
	}

	data := app.newIntakeTemplateData(r, step, app.intakeState(r))
	app.render(w, r, http.StatusOK, "intake-"+step, data)
}

// intakePOST stores the answers of one wizard step and advances to the next.
// The final step assembles the profile and generates the plan.
func (app *application) intakePOST(w http.ResponseWriter, r *http.Request) {
	step := r.PathValue("step")
	if !validStep(step) {
		app.notFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	state := app.intakeState(r)

	switch step {
	case stepAbout:
		state.Name = strings.TrimSpace(r.PostForm.Get("name"))
		state.Age = parseBoundedInt(r.PostForm.Get("age"), 0, 120, 0)
		state.Gender = r.PostForm.Get("gender")
	case stepMedical:
		state.MedicalConditions = parseCommaList(r.PostForm.Get("medical_conditions"))
		if len(state.MedicalConditions) == 0 {
			state.MedicalConditions = []string{plan.NoConditions}
		}
		state.PhysicalLimitations = strings.TrimSpace(r.PostForm.Get("physical_limitations"))
	case stepEquipment:
		state.Location = r.PostForm.Get("location")
		state.Equipment = r.PostForm["equipment"]
		state.FitnessLevel = parseBoundedInt(
			r.PostForm.Get("fitness_level"), plan.MinFitnessLevel, plan.MaxFitnessLevel, 0)
	case stepSchedule:
		state.TargetAreas = r.PostForm["target_areas"]
		state.SessionMinutes = parseBoundedInt(r.PostForm.Get("session_minutes"), 0, plan.SessionNinetyMinutes, 0)
		state.SelectedDays = r.PostForm["days"]
	}

	if err := app.saveIntakeState(r, state); err != nil {
		app.serverError(w, r, err)
		return
	}

	if next := nextStep(step); next != "" {
		redirect(w, r, "/intake/"+next)
		return
	}

	app.finishIntake(w, r, state)
}

// finishIntake validates the assembled profile and generates the plan. A
// validation failure re-renders the final step so that the user can fix the
// answers without losing them.
func (app *application) finishIntake(w http.ResponseWriter, r *http.Request, state intakeState) {
	profile := state.profile()
	if err := profile.Validate(); err != nil {
		data := app.newIntakeTemplateData(r, stepSchedule, state)
		data.Error = err.Error()
		app.render(w, r, http.StatusUnprocessableEntity, "intake-"+stepSchedule, data)
		return
	}

	token := app.planToken(r)
	if token == "" {
		token = rand.Text()
		app.sessionManager.Put(r.Context(), sessionKeyPlanToken, token)
	}

	if _, err := app.planService.GenerateWeek(r.Context(), token, profile); err != nil {
		app.serverError(w, r, fmt.Errorf("generate week: %w", err))
		return
	}

	redirect(w, r, "/plan")
}

// parseCommaList splits a free-text comma separated answer into trimmed
// non-empty entries.
func parseCommaList(text string) []string {
	var entries []string
	for _, entry := range strings.Split(text, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseBoundedInt parses an integer form value and returns the fallback when
// the value is missing, malformed or out of bounds.
func parseBoundedInt(value string, minimum, maximum, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < minimum || n > maximum {
		return fallback
	}
	return n
}
