// Package planner exposes the scheduling engine over a thin JSON HTTP
// surface. Handlers only decode, delegate and encode; all logic stays in
// the core.
package planner

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campsched/campsched/core/logger"
	"github.com/campsched/campsched/core/model"
	coreplanner "github.com/campsched/campsched/core/planner"
	"github.com/campsched/campsched/core/planview"
	"github.com/campsched/campsched/source"
)

// PlanResponse is the payload of POST /api/plan.
type PlanResponse struct {
	Options []model.ScheduleOption `json:"options"`
	// Plan is the display projection of the first option, the default
	// selection, or null when nothing matched.
	Plan *planview.PlanState `json:"plan,omitempty"`
}

// NewPlanHandler returns the handler for POST /api/plan. The request body
// is a planning document (form state plus candidate pool); the response
// carries the ranked schedule options and the default display plan.
func NewPlanHandler(gen *coreplanner.Generator, weeks []model.WeekSlot, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var doc source.File
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		sess := doc.Session(weeks)
		pool := source.DecodeCandidates(doc.Candidates, log)

		options, err := gen.Generate(r.Context(), sess, pool, doc.Locks)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, model.ErrNoChildren) || errors.Is(err, model.ErrNoWeeks) || errors.Is(err, model.ErrMissingGrade) {
				status = http.StatusUnprocessableEntity
			}
			http.Error(w, err.Error(), status)
			return
		}
		resp := PlanResponse{Options: options}
		if len(options) > 0 {
			plan := planview.FromOption(options[0], sess.Children)
			resp.Plan = &plan
		}
		writeJSON(w, resp)
	})
}

// SuggestionRequest is the payload of POST /api/plan/suggestions: the same
// planning document plus the currently selected schedule and the number of
// suggestions wanted.
type SuggestionRequest struct {
	source.File
	Selected model.ScheduleOption `json:"selected"`
	N        int                  `json:"n"`
}

// SuggestionRecorder counts returned suggestions; a nil recorder disables
// counting.
type SuggestionRecorder interface {
	RecordSuggestions(count int) error
}

// NewSuggestionHandler returns the handler for POST /api/plan/suggestions.
func NewSuggestionHandler(eng coreplanner.SuggestionEngine, weeks []model.WeekSlot, rec SuggestionRecorder, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req SuggestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		sess := req.Session(weeks)
		pool := source.DecodeCandidates(req.Candidates, log)
		suggestions := eng.Suggest(sess, pool, req.Selected, req.N)
		if rec != nil {
			_ = rec.RecordSuggestions(len(suggestions))
		}
		writeJSON(w, suggestions)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
