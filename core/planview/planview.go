// Package planview projects a ScheduleOption into the denormalized,
// mutable PlanState the display layer interacts with. The projection is
// pure: mutating a PlanState never touches the option it came from.
package planview

import (
	"fmt"

	"github.com/campsched/campsched/core/model"
)

// childColors is the fixed display palette, cycled by child index.
var childColors = []string{
	"#4CAF50", "#2196F3", "#FF5722", "#9C27B0", "#FFC107", "#795548",
}

// Match score bands for display.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandBasic     = "basic"
)

// ScoreBand buckets a match score for display emphasis.
func ScoreBand(score float64) string {
	switch {
	case score > 150:
		return BandExcellent
	case score > 100:
		return BandGood
	case score > 50:
		return BandFair
	default:
		return BandBasic
	}
}

// ChildInPlan is a child as shown in the plan grid.
type ChildInPlan struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Grade string `json:"grade"`
	Color string `json:"color"`
}

// CampInPlan is one assigned camp cell, carrying everything the calendar
// grid renders plus the lock flag the user toggles.
type CampInPlan struct {
	CampID       string   `json:"camp_id"`
	SessionID    string   `json:"session_id"`
	ChildID      int      `json:"child_id"`
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	Times        string   `json:"times"`
	Price        float64  `json:"price"`
	Locked       bool     `json:"locked"`
	MatchScore   float64  `json:"match_score"`
	MatchBand    string   `json:"match_band"`
	MatchReasons []string `json:"match_reasons"`
}

// WeekInPlan groups the assigned camps of one week.
type WeekInPlan struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Camps []CampInPlan `json:"camps"`
}

// PlanState is the display-layer copy of one ScheduleOption. It persists
// client-side until the user starts over or regenerates.
type PlanState struct {
	ScheduleID        string             `json:"schedule_id"`
	OptimizationFocus string             `json:"optimization_focus"`
	Children          []ChildInPlan      `json:"children"`
	Weeks             []WeekInPlan       `json:"weeks"`
	TotalCost         float64            `json:"total_cost"`
	Summary           model.MatchSummary `json:"match_summary"`
}

// FromOption builds the display plan for a schedule option. Unfilled slots
// simply have no cell.
func FromOption(opt model.ScheduleOption, children []model.Child) PlanState {
	plan := PlanState{
		ScheduleID:        opt.ScheduleID,
		OptimizationFocus: opt.OptimizationFocus,
		TotalCost:         opt.TotalCost,
		Summary:           opt.Summary,
	}
	for i, c := range children {
		plan.Children = append(plan.Children, ChildInPlan{
			ID:    c.ID,
			Name:  c.DisplayName(),
			Grade: model.GradeLabel(c.Grade),
			Color: childColors[i%len(childColors)],
		})
	}
	for _, ws := range opt.Weeks {
		week := WeekInPlan{ID: ws.Week.ID, Name: ws.Week.Label}
		for _, ca := range ws.Children {
			if ca.Match == nil {
				continue
			}
			m := ca.Match
			week.Camps = append(week.Camps, CampInPlan{
				CampID:       m.CampID,
				SessionID:    m.Session.ID,
				ChildID:      ca.ChildID,
				Name:         m.CampName,
				Organization: m.Organization,
				Location:     m.Session.Location,
				Times:        m.Session.Times,
				Price:        m.Price,
				Locked:       m.Locked,
				MatchScore:   m.Score,
				MatchBand:    ScoreBand(m.Score),
				MatchReasons: append([]string(nil), m.Reasons...),
			})
		}
		plan.Weeks = append(plan.Weeks, week)
	}
	return plan
}

// CostTotals returns the plan's total cost and the per-child breakdown.
func (p PlanState) CostTotals() (float64, map[int]float64) {
	perChild := make(map[int]float64, len(p.Children))
	var total float64
	for _, w := range p.Weeks {
		for _, c := range w.Camps {
			total += c.Price
			perChild[c.ChildID] += c.Price
		}
	}
	return total, perChild
}

// String renders a short one-line description, handy in logs.
func (p PlanState) String() string {
	return fmt.Sprintf("%s plan %s: %d weeks, $%.2f", p.OptimizationFocus, p.ScheduleID, len(p.Weeks), p.TotalCost)
}
