package config

import (
	"fmt"

	"github.com/campsched/campsched/core/model"
)

// WeekEntry is one plannable week in the configuration file.
type WeekEntry struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeksConfig defines the calendar of plannable weeks the form's week
// booleans select from.
type WeeksConfig struct {
	Table []WeekEntry `json:"table"`
}

// defaultWeeks is the stock eight-week summer calendar.
var defaultWeeks = []WeekEntry{
	{Label: "June 3 - June 9", Start: "2025-06-03", End: "2025-06-09"},
	{Label: "June 10 - June 16", Start: "2025-06-10", End: "2025-06-16"},
	{Label: "June 17 - June 23", Start: "2025-06-17", End: "2025-06-23"},
	{Label: "June 24 - June 30", Start: "2025-06-24", End: "2025-06-30"},
	{Label: "July 1 - July 7", Start: "2025-07-01", End: "2025-07-07"},
	{Label: "July 8 - July 14", Start: "2025-07-08", End: "2025-07-14"},
	{Label: "July 15 - July 21", Start: "2025-07-15", End: "2025-07-21"},
	{Label: "July 22 - July 28", Start: "2025-07-22", End: "2025-07-28"},
}

// SetDefaults fills in the stock summer calendar when the file defines no
// weeks.
func (c *WeeksConfig) SetDefaults() {
	if len(c.Table) == 0 {
		c.Table = append([]WeekEntry(nil), defaultWeeks...)
	}
}

// Validate checks every entry parses and spans a positive range.
func (c WeeksConfig) Validate() error {
	for i, w := range c.Table {
		start, err := model.ParseDate(w.Start)
		if err != nil {
			return fmt.Errorf("week %d: bad start date %q", i, w.Start)
		}
		end, err := model.ParseDate(w.End)
		if err != nil {
			return fmt.Errorf("week %d: bad end date %q", i, w.End)
		}
		if end.Before(start) {
			return fmt.Errorf("week %d: end before start", i)
		}
	}
	return nil
}

// Slots converts the table into model week slots, IDs following table
// order.
func (c WeeksConfig) Slots() []model.WeekSlot {
	out := make([]model.WeekSlot, 0, len(c.Table))
	for i, w := range c.Table {
		start, err := model.ParseDate(w.Start)
		if err != nil {
			continue
		}
		end, err := model.ParseDate(w.End)
		if err != nil {
			continue
		}
		out = append(out, model.WeekSlot{ID: i, Label: w.Label, Start: start, End: end})
	}
	return out
}
