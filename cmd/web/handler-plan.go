package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mlintula/fitplan/internal/plan"
)

type planTemplateData struct {
	BaseTemplateData
	Week plan.WeekPlan
	// Markdown is the rendered plan document, converted to HTML in the
	// template.
	Markdown string
}

// planGET shows the generated plan. Visitors without a plan are sent to the
// start of the intake wizard.
func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	week, ok := app.lookupPlan(w, r)
	if !ok {
		return
	}

	data := planTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Week:             week,
		Markdown:         week.Markdown(),
	}

	app.render(w, r, http.StatusOK, "plan", data)
}

// planDownloadGET serves the plan as a downloadable Markdown document.
func (app *application) planDownloadGET(w http.ResponseWriter, r *http.Request) {
	week, ok := app.lookupPlan(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="workout-plan.md"`)
	_, _ = w.Write([]byte(week.Markdown()))
}

// planRegeneratePOST re-runs generation with the profile of the stored plan.
func (app *application) planRegeneratePOST(w http.ResponseWriter, r *http.Request) {
	token := app.planToken(r)
	if token == "" {
		redirect(w, r, "/intake/about")
		return
	}

	if _, err := app.planService.RegenerateWeek(r.Context(), token); err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			redirect(w, r, "/intake/about")
			return
		}
		app.serverError(w, r, fmt.Errorf("regenerate week: %w", err))
		return
	}

	redirect(w, r, "/plan")
}

// lookupPlan fetches the visitor's stored plan. When there is none it
// redirects to the intake wizard and reports false.
func (app *application) lookupPlan(w http.ResponseWriter, r *http.Request) (plan.WeekPlan, bool) {
	token := app.planToken(r)
	if token == "" {
		redirect(w, r, "/intake/about")
		return plan.WeekPlan{}, false
	}

	week, err := app.planService.GetWeek(r.Context(), token)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			redirect(w, r, "/intake/about")
			return plan.WeekPlan{}, false
		}
		app.serverError(w, r, fmt.Errorf("get week: %w", err))
		return plan.WeekPlan{}, false
	}
	return week, true
}
