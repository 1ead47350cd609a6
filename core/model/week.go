package model

import "time"

// DateLayout is the calendar-date format used at the data boundary.
const DateLayout = "2006-01-02"

// ParseDate parses a boundary date such as "2025-06-03".
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// WeekSlot is the unit of assignment: one camp match (or none) per child per
// week. ID is stable within a planning session.
type WeekSlot struct {
	ID    int       `json:"id"`
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
