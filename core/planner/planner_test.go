package planner

import (
	"time"

	"github.com/campsched/campsched/core/model"
)

// testWeeks returns n consecutive week slots starting June 3rd 2025.
func testWeeks(n int) []model.WeekSlot {
	out := make([]model.WeekSlot, 0, n)
	for i := 0; i < n; i++ {
		start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*i)
		out = append(out, model.WeekSlot{
			ID:    i,
			Label: "Week " + string(rune('A'+i)),
			Start: start,
			End:   start.AddDate(0, 0, 6),
		})
	}
	return out
}

// summerCamp builds a camp with a single session spanning the whole summer,
// so it is eligible for every test week.
func summerCamp(id, name string, price float64, gradeMin, gradeMax int, categories ...string) model.CampCandidate {
	return model.CampCandidate{
		ID:           id,
		Name:         name,
		Organization: name + " Org",
		Price:        price,
		Categories:   categories,
		GradeMin:     gradeMin,
		GradeMax:     gradeMax,
		Sessions: []model.Session{{
			ID:        id + "-s1",
			Location:  name + " Center",
			StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			Times:     "9:00 AM - 3:00 PM",
			Days:      "Mon-Fri",
		}},
	}
}

func testSession(weeks int, children ...model.Child) model.PlanningSession {
	return model.PlanningSession{
		Children: children,
		Weeks:    testWeeks(weeks),
	}
}

func child(id int, name string, grade int, interests ...model.Interest) model.Child {
	return model.Child{ID: id, Name: name, Grade: grade, Interests: interests}
}

func loves(name string) model.Interest { return model.Interest{Name: name, Strength: model.StrengthLove} }
func likes(name string) model.Interest { return model.Interest{Name: name, Strength: model.StrengthLike} }
func tries(name string) model.Interest { return model.Interest{Name: name, Strength: model.StrengthTry} }
