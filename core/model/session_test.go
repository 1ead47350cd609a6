package model

import (
	"errors"
	"testing"
	"time"
)

func testWeek(id int) WeekSlot {
	start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*id)
	return WeekSlot{ID: id, Label: "week", Start: start, End: start.AddDate(0, 0, 6)}
}

func TestPlanningSessionValidate(t *testing.T) {
	valid := PlanningSession{
		Children: []Child{{ID: 0, Name: "Ava", Grade: 3}},
		Weeks:    []WeekSlot{testWeek(0)},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid session rejected: %v", err)
	}

	noChildren := valid
	noChildren.Children = nil
	if err := noChildren.Validate(); !errors.Is(err, ErrNoChildren) {
		t.Errorf("want ErrNoChildren, got %v", err)
	}

	noWeeks := valid
	noWeeks.Weeks = nil
	if err := noWeeks.Validate(); !errors.Is(err, ErrNoWeeks) {
		t.Errorf("want ErrNoWeeks, got %v", err)
	}

	badGrade := valid
	badGrade.Children = []Child{{ID: 0, Name: "Ben", Grade: GradeUnset}}
	if err := badGrade.Validate(); !errors.Is(err, ErrMissingGrade) {
		t.Errorf("want ErrMissingGrade, got %v", err)
	}
}

func TestPriorityRank(t *testing.T) {
	sess := PlanningSession{
		Priorities: []PriorityFactor{PriorityLocation, PriorityPrice, PriorityActivities, PrioritySchedule},
	}
	if got := sess.PriorityRank(PriorityLocation); got != 0 {
		t.Errorf("location rank = %d", got)
	}
	if got := sess.PriorityRank(PriorityPrice); got != 1 {
		t.Errorf("price rank = %d", got)
	}

	// Empty priority list falls back to the default order.
	var def PlanningSession
	if got := def.PriorityRank(PriorityPrice); got != 0 {
		t.Errorf("default price rank = %d", got)
	}
	if got := def.PriorityRank(PrioritySchedule); got != 3 {
		t.Errorf("default schedule rank = %d", got)
	}
}
