// Package source is the boundary adapter between the pure scheduling core
// and the upstream data layer. It loads a planning session and its camp
// candidate pool from a JSON document, normalizing the loosely-shaped form
// data the upstream API produces. The core itself never fetches anything.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/campsched/campsched/core/logger"
	"github.com/campsched/campsched/core/model"
)

// ErrUnavailable marks a failed or empty candidate fetch, so callers can
// distinguish "we couldn't load data" from "your criteria matched nothing".
var ErrUnavailable = errors.New("candidate data unavailable")

// File is the on-disk planning document: the user's form state plus the
// pre-filtered candidate pool supplied by the upstream API.
type File struct {
	Children           []childJSON            `json:"children"`
	Weeks              []bool                 `json:"weeks"`
	WeeklyBudget       string                 `json:"weekly_budget"`
	TotalBudget        string                 `json:"budget"`
	Home               *model.Coordinates     `json:"home,omitempty"`
	DistanceMiles      float64                `json:"distance_miles"`
	TimePreference     model.TimeOfDay        `json:"time_preference"`
	Transportation     model.Transport        `json:"transportation"`
	Priorities         []model.PriorityFactor `json:"priorities"`
	RequiredActivities []string               `json:"required_activities"`
	Candidates         []json.RawMessage      `json:"candidates"`
	Locks              model.LockSet          `json:"locks,omitempty"`
}

type childJSON struct {
	Name      string           `json:"name"`
	Grade     string           `json:"grade"`
	Interests []model.Interest `json:"interests"`
}

// Load reads a planning document and converts it into a session and
// candidate pool. weekTable is the configured week calendar the document's
// week booleans select from. Malformed candidate entries are skipped with a
// logged reason; a file that cannot be read or parsed at all is reported as
// ErrUnavailable.
func Load(path string, weekTable []model.WeekSlot, log logger.Logger) (model.PlanningSession, []model.CampCandidate, model.LockSet, error) {
	if log == nil {
		log = logger.Nop{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PlanningSession{}, nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return model.PlanningSession{}, nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	sess := f.Session(weekTable)
	pool := DecodeCandidates(f.Candidates, log)
	return sess, pool, f.Locks, nil
}

// Session converts the form fields into a PlanningSession. Grade labels the
// mapping does not know yield GradeUnset, which Validate rejects later with
// a descriptive error.
func (f File) Session(weekTable []model.WeekSlot) model.PlanningSession {
	sess := model.PlanningSession{
		Home:               f.Home,
		RadiusMiles:        f.DistanceMiles,
		TimePreference:     f.TimePreference,
		Transport:          f.Transportation,
		Priorities:         f.Priorities,
		RequiredActivities: f.RequiredActivities,
	}
	for i, c := range f.Children {
		grade, ok := model.GradeFromLabel(c.Grade)
		if !ok {
			grade = model.GradeUnset
		}
		sess.Children = append(sess.Children, model.Child{
			ID:        i,
			Name:      c.Name,
			Grade:     grade,
			Interests: c.Interests,
		})
	}
	for i, selected := range f.Weeks {
		if selected && i < len(weekTable) {
			sess.Weeks = append(sess.Weeks, weekTable[i])
		}
	}
	if v, ok := model.ParseDollar(f.WeeklyBudget); ok {
		sess.WeeklyBudget = v
	}
	if v, ok := model.ParseDollar(f.TotalBudget); ok {
		sess.TotalBudget = v
	}
	return sess
}

type candidateJSON struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Organization string          `json:"organization"`
	Price        json.RawMessage `json:"price"`
	Categories   []string        `json:"categories"`
	GradeMin     int             `json:"grade_min"`
	GradeMax     int             `json:"grade_max"`
	BusService   bool            `json:"bus_service"`
	Sessions     []sessionJSON   `json:"sessions"`
}

type sessionJSON struct {
	ID        string             `json:"id"`
	Location  string             `json:"location"`
	Coords    *model.Coordinates `json:"coords,omitempty"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Times     string             `json:"times"`
	Days      string             `json:"days"`
	TimeOfDay model.TimeOfDay    `json:"time_of_day"`
}

// DecodeCandidates converts raw candidate entries, skipping malformed ones
// with a logged reason instead of failing the whole run.
func DecodeCandidates(raw []json.RawMessage, log logger.Logger) []model.CampCandidate {
	if log == nil {
		log = logger.Nop{}
	}
	var pool []model.CampCandidate
	for i, entry := range raw {
		camp, err := decodeCandidate(entry)
		if err != nil {
			log.Warnf("skipping candidate %d: %v", i, err)
			continue
		}
		pool = append(pool, camp)
	}
	return pool
}

func decodeCandidate(raw json.RawMessage) (model.CampCandidate, error) {
	var c candidateJSON
	if err := json.Unmarshal(raw, &c); err != nil {
		return model.CampCandidate{}, err
	}
	if c.ID == "" || c.Name == "" {
		return model.CampCandidate{}, errors.New("missing id or name")
	}
	price, err := parsePrice(c.Price)
	if err != nil {
		return model.CampCandidate{}, fmt.Errorf("camp %s: %w", c.ID, err)
	}
	if len(c.Categories) == 0 {
		return model.CampCandidate{}, fmt.Errorf("camp %s: no categories", c.ID)
	}
	if len(c.Sessions) == 0 {
		return model.CampCandidate{}, fmt.Errorf("camp %s: no sessions", c.ID)
	}
	camp := model.CampCandidate{
		ID:           c.ID,
		Name:         c.Name,
		Organization: c.Organization,
		Price:        price,
		Categories:   c.Categories,
		GradeMin:     c.GradeMin,
		GradeMax:     c.GradeMax,
		BusService:   c.BusService,
	}
	for j, s := range c.Sessions {
		start, err := model.ParseDate(s.StartDate)
		if err != nil {
			return model.CampCandidate{}, fmt.Errorf("camp %s session %d: bad start date %q", c.ID, j, s.StartDate)
		}
		end, err := model.ParseDate(s.EndDate)
		if err != nil {
			return model.CampCandidate{}, fmt.Errorf("camp %s session %d: bad end date %q", c.ID, j, s.EndDate)
		}
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("%s-s%d", c.ID, j+1)
		}
		camp.Sessions = append(camp.Sessions, model.Session{
			ID:        id,
			Location:  s.Location,
			Coords:    s.Coords,
			StartDate: start,
			EndDate:   end,
			Times:     s.Times,
			Days:      s.Days,
			TimeOfDay: s.TimeOfDay,
		})
	}
	return camp, nil
}

// parsePrice accepts both the numeric and the user-entered string shape
// ("$1,200") the upstream data mixes.
func parsePrice(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, errors.New("missing price")
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return 0, errors.New("negative price")
		}
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, errors.New("unparseable price")
	}
	if v, ok := model.ParseDollar(s); ok {
		return v, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	return 0, fmt.Errorf("unparseable price %q", s)
}
