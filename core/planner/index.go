package planner

import (
	"sort"

	"github.com/campsched/campsched/core/model"
)

// Candidate is a camp+session pair eligible for one specific week.
type Candidate struct {
	Camp    model.CampCandidate
	Session model.Session
}

// CandidateIndex organizes the supplied pool into per-week candidate lists.
// The pool arrives pre-filtered by interest, week window and rough distance;
// the index re-applies the hard gates it can verify itself: a session must
// overlap the week and the price must not exceed the weekly budget. Grade
// compatibility is per child and checked by Feasible.
type CandidateIndex struct {
	weeks  []model.WeekSlot
	byWeek map[int][]Candidate
}

// NewCandidateIndex builds the index. Candidates within each week are kept
// in candidate-ID order so downstream iteration is deterministic. A weekly
// budget of zero means no budget ceiling.
func NewCandidateIndex(pool []model.CampCandidate, weeks []model.WeekSlot, weeklyBudget float64) *CandidateIndex {
	ix := &CandidateIndex{weeks: weeks, byWeek: make(map[int][]Candidate, len(weeks))}
	for _, week := range weeks {
		var list []Candidate
		for _, camp := range pool {
			if weeklyBudget > 0 && camp.Price > weeklyBudget {
				continue
			}
			for _, sess := range camp.Sessions {
				if sess.Overlaps(week.Start, week.End) {
					list = append(list, Candidate{Camp: camp, Session: sess})
				}
			}
		}
		sort.Slice(list, func(i, j int) bool {
			if list[i].Camp.ID != list[j].Camp.ID {
				return list[i].Camp.ID < list[j].Camp.ID
			}
			return list[i].Session.ID < list[j].Session.ID
		})
		ix.byWeek[week.ID] = list
	}
	return ix
}

// Weeks returns the weeks the index was built for.
func (ix *CandidateIndex) Weeks() []model.WeekSlot { return ix.weeks }

// ForWeek returns all budget- and date-eligible candidates for the week.
func (ix *CandidateIndex) ForWeek(weekID int) []Candidate { return ix.byWeek[weekID] }

// Feasible returns the week's candidates whose grade range covers the child.
func (ix *CandidateIndex) Feasible(child model.Child, weekID int) []Candidate {
	var out []Candidate
	for _, c := range ix.byWeek[weekID] {
		if c.Camp.FitsGrade(child.Grade) {
			out = append(out, c)
		}
	}
	return out
}

// Lookup finds the exact camp+session pair within a week. It is used to
// reproduce locked assignments verbatim.
func (ix *CandidateIndex) Lookup(weekID int, campID, sessionID string) (Candidate, bool) {
	for _, c := range ix.byWeek[weekID] {
		if c.Camp.ID == campID && c.Session.ID == sessionID {
			return c, true
		}
	}
	return Candidate{}, false
}
