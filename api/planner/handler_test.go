package planner

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campsched/campsched/core/model"
	coreplanner "github.com/campsched/campsched/core/planner"
)

func testWeekTable() []model.WeekSlot {
	out := make([]model.WeekSlot, 0, 2)
	for i := 0; i < 2; i++ {
		start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*i)
		out = append(out, model.WeekSlot{ID: i, Label: "W", Start: start, End: start.AddDate(0, 0, 6)})
	}
	return out
}

const planRequest = `{
  "children": [{"name": "Ada", "grade": "3rd Grade", "interests": ["science"]}],
  "weeks": [true, true],
  "weekly_budget": "$300",
  "candidates": [
    {
      "id": "camp-1", "name": "Science Camp", "price": 200, "categories": ["science"],
      "grade_min": 1, "grade_max": 5,
      "sessions": [{"start_date": "2025-06-01", "end_date": "2025-08-01"}]
    }
  ]
}`

func newPlanTestHandler() http.Handler {
	gen := coreplanner.NewGenerator(coreplanner.Config{}, nil, nil)
	return NewPlanHandler(gen, testWeekTable(), nil)
}

func TestPlanHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(planRequest))
	newPlanTestHandler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Options, 4)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, resp.Options[0].OptimizationFocus, resp.Plan.OptimizationFocus)
	assert.Len(t, resp.Plan.Children, 1)
}

func TestPlanHandler_MethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plan", nil)
	newPlanTestHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestPlanHandler_BadBody(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(`{"children": [`))
	newPlanTestHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPlanHandler_ValidationFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	body := `{"children": [], "weeks": [true], "candidates": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
	newPlanTestHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestPlanHandler_UnknownGrade(t *testing.T) {
	rr := httptest.NewRecorder()
	body := `{"children": [{"name": "Ada", "grade": "Sophomore"}], "weeks": [true], "candidates": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
	newPlanTestHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestPlanHandler_NoMatchesReturnsEmptyOptions(t *testing.T) {
	rr := httptest.NewRecorder()
	body := `{"children": [{"name": "Ada", "grade": "3rd Grade"}], "weeks": [true], "candidates": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
	newPlanTestHandler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Options)
	assert.Nil(t, resp.Plan)
}

type countingRecorder struct{ counts []int }

func (r *countingRecorder) RecordSuggestions(count int) error {
	r.counts = append(r.counts, count)
	return nil
}

func TestSuggestionHandler(t *testing.T) {
	rec := &countingRecorder{}
	eng := coreplanner.NewSuggestionEngine(coreplanner.Config{})
	h := NewSuggestionHandler(eng, testWeekTable(), rec, nil)

	body := `{
	  "children": [{"name": "Ada", "grade": "3rd Grade", "interests": ["science"]}],
	  "weeks": [true, true],
	  "candidates": [
	    {"id": "camp-1", "name": "Science Camp", "price": 200, "categories": ["science"],
	     "grade_min": 1, "grade_max": 5,
	     "sessions": [{"start_date": "2025-06-01", "end_date": "2025-08-01"}]},
	    {"id": "camp-2", "name": "Art Camp", "price": 150, "categories": ["art"],
	     "grade_min": 1, "grade_max": 5,
	     "sessions": [{"start_date": "2025-06-01", "end_date": "2025-08-01"}]}
	  ],
	  "selected": {"schedule_id": "s", "optimization_focus": "Balanced"},
	  "n": 5
	}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plan/suggestions", strings.NewReader(body))
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var suggestions []model.CampCandidate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &suggestions))
	require.Len(t, suggestions, 2)
	require.Len(t, rec.counts, 1)
	assert.Equal(t, 2, rec.counts[0])
}

func TestSuggestionHandler_MethodNotAllowed(t *testing.T) {
	eng := coreplanner.NewSuggestionEngine(coreplanner.Config{})
	h := NewSuggestionHandler(eng, testWeekTable(), nil, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plan/suggestions", nil)
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
