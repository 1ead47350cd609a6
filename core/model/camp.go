package model

import (
	"strconv"
	"strings"
	"time"
)

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TimeOfDay classifies when a session runs during the day.
type TimeOfDay string

const (
	FullDay   TimeOfDay = "full-day"
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Extended  TimeOfDay = "extended"
)

// Session is one bookable run of a camp: a location, a date range and the
// daily hours. Coordinates are optional; when absent the distance factor
// stays neutral.
type Session struct {
	ID        string       `json:"id"`
	Location  string       `json:"location"`
	Coords    *Coordinates `json:"coords,omitempty"`
	StartDate time.Time    `json:"start_date"`
	EndDate   time.Time    `json:"end_date"`
	Times     string       `json:"times"`
	Days      string       `json:"days"`
	TimeOfDay TimeOfDay    `json:"time_of_day,omitempty"`
}

// Overlaps reports whether the session's date range intersects [start, end].
func (s Session) Overlaps(start, end time.Time) bool {
	return !s.StartDate.After(end) && !start.After(s.EndDate)
}

// CampCandidate is a camp eligible for consideration, as supplied by the
// upstream data layer. The pool arrives pre-filtered by interest, week
// window and rough distance; the engine re-verifies grade range and hard
// budget bounds itself.
type CampCandidate struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Organization string    `json:"organization"`
	Price        float64   `json:"price"`
	Categories   []string  `json:"categories"`
	GradeMin     int       `json:"grade_min"`
	GradeMax     int       `json:"grade_max"`
	BusService   bool      `json:"bus_service"`
	Sessions     []Session `json:"sessions"`
}

// FitsGrade reports whether the child's grade falls inside the camp's range.
func (c CampCandidate) FitsGrade(grade int) bool {
	return grade >= c.GradeMin && grade <= c.GradeMax
}

// HasCategory reports whether the camp carries the named category tag,
// case-insensitively.
func (c CampCandidate) HasCategory(name string) bool {
	for _, cat := range c.Categories {
		if strings.EqualFold(cat, name) {
			return true
		}
	}
	return false
}

// ParseDollar extracts a numeric amount from a user-entered dollar string
// such as "$1,200.50". The second return value is false when no number is
// present.
func ParseDollar(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
