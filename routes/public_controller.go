package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mbolis/survei-haji/app"
	"github.com/mbolis/survei-haji/httpx"
	"github.com/mbolis/survei-haji/log"
	"github.com/mbolis/survei-haji/survey"
)

// StepResult tells the client which step to show after a successful check.
type StepResult struct {
	Next  survey.Step `json:"next"`
	Total int         `json:"total"`
	Last  bool        `json:"last"`
}

type SubmitResult struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidateStep checks the fields of one wizard step without storing anything.
// With action=prev it moves back one step without validating.
func ValidateStep(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := currentConfig(r.Context(), app)
		if err != nil {
			httpx.Fail(w, r, "db.read_config", err)
			return
		}

		wizard := survey.NewWizard(cfg, app.Validator)
		step, err := strconv.Atoi(chi.URLParam(r, "step"))
		if err != nil || step < 1 || step > wizard.Total {
			httpx.LogStatus(w, r, http.StatusNotFound, log.DebugLevel, "request.get_url_param.step")
			return
		}
		wizard.Goto(step)

		if r.URL.Query().Get("action") == "prev" {
			wizard.Prev()
			render.JSON(w, r, stepResult(wizard))
			return
		}

		var form survey.Form
		if err := render.DecodeJSON(r.Body, &form); err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "survey.decode", "invalid body: %s", err)
			return
		}

		if errs := wizard.Next(form); len(errs) > 0 {
			httpx.Fail(w, r, "survey.step", errs)
			return
		}

		render.JSON(w, r, stepResult(wizard))
	}
}

func stepResult(wizard *survey.Wizard) StepResult {
	return StepResult{
		Next:  wizard.Current(),
		Total: wizard.Total,
		Last:  wizard.Last(),
	}
}

func SubmitSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form survey.Form
		if err := render.DecodeJSON(r.Body, &form); err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "survey.decode", "invalid body: %s", err)
			return
		}

		cfg, err := currentConfig(r.Context(), app)
		if err != nil {
			httpx.Fail(w, r, "db.read_config", err)
			return
		}

		sub, err := survey.NewPipeline(app, app.Validator).Submit(r.Context(), cfg, form)
		if err != nil {
			httpx.Fail(w, r, "db.insert_submission", err)
			return
		}
		log.WithFields(log.Fields{"id": sub.ID}).Info("survey.submitted")

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SubmitResult{ID: sub.ID, CreatedAt: sub.CreatedAt})
	}
}
