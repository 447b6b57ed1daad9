package main

import (
	"net/http"
)

type homeTemplateData struct {
	BaseTemplateData
	// HasPlan indicates whether the visitor has a generated plan to view.
	HasPlan bool
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		HasPlan:          false,
	}

	if token := app.planToken(r); token != "" {
		if _, err := app.planService.GetWeek(r.Context(), token); err == nil {
			data.HasPlan = true
		}
	}

	app.render(w, r, http.StatusOK, "home", data)
}
