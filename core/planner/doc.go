// Package planner implements the core scheduling/matching engine for summer
// camp planning.
//
// Given a pre-filtered pool of camp candidates, it scores every feasible
// (child, week, camp-session) triple, assigns the best feasible session per
// child per week, builds several whole-schedule variants each tuned to a
// different optimization focus, and re-optimizes incrementally around
// user-locked slots.
//
// Key components:
//   - CandidateIndex: per-week feasible candidate lists with hard grade and
//     budget gates re-verified on the supplied pool.
//   - Scorer: additive multi-criteria score plus human-readable reasons for a
//     single triple, parameterized by a WeightProfile.
//   - BuildProfiles: derives weight profiles from the user's ranked priority
//     list, one balanced plus dominant-factor foci.
//   - AssignWeek: best feasible candidate per child for one week, honoring
//     locks.
//   - Builder: runs AssignWeek across all weeks and aggregates cost and the
//     match summary into a ScheduleOption.
//   - Generator: one ScheduleOption per profile, priority-ranked.
//   - Suggestions: ranks unused candidates against the aggregate of all
//     children's interests.
//
// The engine is synchronous, allocation-light and fully deterministic: ties
// are broken by explicit secondary keys (score, price, session start,
// candidate ID), never by map iteration order. The only suspension point is
// the candidate fetch, which lives outside this package.
package planner
