package model

import (
	"errors"
	"fmt"
)

// Validation failures for malformed planner input. They are reported before
// any scoring happens so the caller can prompt the user instead of silently
// producing an empty plan.
var (
	ErrNoChildren   = errors.New("planning session has no children")
	ErrNoWeeks      = errors.New("planning session has no selected weeks")
	ErrMissingGrade = errors.New("child grade is missing or unknown")
)

// PriorityFactor is one of the four rankable optimization criteria.
type PriorityFactor string

const (
	PriorityPrice      PriorityFactor = "price"
	PriorityLocation   PriorityFactor = "location"
	PriorityActivities PriorityFactor = "activities"
	PrioritySchedule   PriorityFactor = "schedule"
)

// DefaultPriorities is the rank order assumed when the form omits one.
var DefaultPriorities = []PriorityFactor{
	PriorityPrice, PriorityLocation, PriorityActivities, PrioritySchedule,
}

// Transport is the family's transportation preference.
type Transport string

const (
	TransportParent Transport = "parent"
	TransportBus    Transport = "bus"
	TransportEither Transport = "either"
)

// PlanningSession is the full user input for one optimization pass: the
// children, the selected weeks and every preference the scoring factors
// consume. It replaces the original product's global form state; the engine
// holds no state between calls beyond what the caller threads through.
type PlanningSession struct {
	Children           []Child          `json:"children"`
	Weeks              []WeekSlot       `json:"weeks"`
	WeeklyBudget       float64          `json:"weekly_budget"`
	TotalBudget        float64          `json:"total_budget"`
	Home               *Coordinates     `json:"home,omitempty"`
	RadiusMiles        float64          `json:"radius_miles"`
	TimePreference     TimeOfDay        `json:"time_preference"`
	Transport          Transport        `json:"transportation"`
	Priorities         []PriorityFactor `json:"priorities"`
	RequiredActivities []string         `json:"required_activities"`
}

// Validate rejects malformed input: empty children or weeks, or a child
// whose grade is outside Pre-K..12.
func (s PlanningSession) Validate() error {
	if len(s.Children) == 0 {
		return ErrNoChildren
	}
	if len(s.Weeks) == 0 {
		return ErrNoWeeks
	}
	for _, c := range s.Children {
		if c.Grade < GradePreK || c.Grade > GradeMax {
			return fmt.Errorf("%w: %s", ErrMissingGrade, c.DisplayName())
		}
	}
	return nil
}

// PriorityRank returns the 0-based rank of the factor in the session's
// priority order, falling back to the default order when the form omitted
// one. Unknown factors rank last.
func (s PlanningSession) PriorityRank(f PriorityFactor) int {
	order := s.Priorities
	if len(order) == 0 {
		order = DefaultPriorities
	}
	for i, p := range order {
		if p == f {
			return i
		}
	}
	return len(order)
}
