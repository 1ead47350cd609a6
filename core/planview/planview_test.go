package planview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campsched/campsched/core/model"
)

func testOption() model.ScheduleOption {
	week := model.WeekSlot{
		ID:    0,
		Label: "Week 1",
		Start: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
	}
	match := &model.CampMatch{
		CampID:       "art",
		CampName:     "Art Camp",
		Organization: "Arts Org",
		Price:        210,
		Session:      model.Session{ID: "art-s1", Location: "Studio A", Times: "9:00 AM - 3:00 PM"},
		Score:        120,
		Reasons:      []string{"Fits grade range (1st to 5th)"},
	}
	return model.ScheduleOption{
		ScheduleID:        "sched-1",
		OptimizationFocus: "Balanced",
		TotalCost:         210,
		Weeks: []model.WeekSchedule{{
			Week: week,
			Children: []model.ChildAssignment{
				{ChildID: 0, ChildName: "Ada", Grade: 3, Match: match},
				{ChildID: 1, ChildName: "Ben", Grade: 5, Match: nil},
			},
		}},
	}
}

func testChildren() []model.Child {
	return []model.Child{
		{ID: 0, Name: "Ada", Grade: 3},
		{ID: 1, Name: "Ben", Grade: 5},
	}
}

func TestFromOption(t *testing.T) {
	plan := FromOption(testOption(), testChildren())

	require.Len(t, plan.Children, 2)
	assert.Equal(t, "3rd Grade", plan.Children[0].Grade)
	assert.Equal(t, childColors[0], plan.Children[0].Color)
	assert.Equal(t, childColors[1], plan.Children[1].Color)

	require.Len(t, plan.Weeks, 1)
	// Ben's unfilled slot produces no cell.
	require.Len(t, plan.Weeks[0].Camps, 1)
	cell := plan.Weeks[0].Camps[0]
	assert.Equal(t, "art", cell.CampID)
	assert.Equal(t, "art-s1", cell.SessionID)
	assert.Equal(t, 0, cell.ChildID)
	assert.Equal(t, BandGood, cell.MatchBand)
	assert.Equal(t, 210.0, plan.TotalCost)
}

func TestFromOption_ColorPaletteCycles(t *testing.T) {
	children := make([]model.Child, len(childColors)+1)
	for i := range children {
		children[i] = model.Child{ID: i, Grade: 3}
	}
	plan := FromOption(model.ScheduleOption{}, children)
	assert.Equal(t, plan.Children[0].Color, plan.Children[len(childColors)].Color)
}

func TestScoreBand(t *testing.T) {
	assert.Equal(t, BandExcellent, ScoreBand(151))
	assert.Equal(t, BandGood, ScoreBand(150))
	assert.Equal(t, BandGood, ScoreBand(101))
	assert.Equal(t, BandFair, ScoreBand(100))
	assert.Equal(t, BandFair, ScoreBand(51))
	assert.Equal(t, BandBasic, ScoreBand(50))
	assert.Equal(t, BandBasic, ScoreBand(0))
}

func TestToggleLock_FlipsOnlyTargetCell(t *testing.T) {
	plan := FromOption(testOption(), testChildren())

	locked := ToggleLock(plan, 0, "art")
	assert.True(t, locked.Weeks[0].Camps[0].Locked)

	unlocked := ToggleLock(locked, 0, "art")
	assert.False(t, unlocked.Weeks[0].Camps[0].Locked)
}

func TestToggleLock_DoesNotMutateInput(t *testing.T) {
	plan := FromOption(testOption(), testChildren())

	_ = ToggleLock(plan, 0, "art")
	assert.False(t, plan.Weeks[0].Camps[0].Locked, "input plan was mutated")
}

func TestToggleLock_UnknownCellIsNoop(t *testing.T) {
	plan := FromOption(testOption(), testChildren())

	out := ToggleLock(plan, 0, "no-such-camp")
	assert.Equal(t, plan, out)
}

func TestLocks(t *testing.T) {
	plan := FromOption(testOption(), testChildren())
	assert.Empty(t, Locks(plan))

	locked := ToggleLock(plan, 0, "art")
	ls := Locks(locked)
	require.Len(t, ls, 1)
	assert.Equal(t, model.Lock{ChildID: 0, WeekID: 0, CampID: "art", SessionID: "art-s1"}, ls[0])
}

func TestCostTotals(t *testing.T) {
	plan := FromOption(testOption(), testChildren())
	total, perChild := plan.CostTotals()
	assert.Equal(t, 210.0, total)
	assert.Equal(t, 210.0, perChild[0])
	assert.Zero(t, perChild[1])
}
