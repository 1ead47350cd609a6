package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campsched/campsched/core/model"
)

func newTestGenerator() *Generator {
	return NewGenerator(Config{}, nil, nil)
}

func TestGenerate_RejectsInvalidSession(t *testing.T) {
	g := newTestGenerator()
	pool := []model.CampCandidate{summerCamp("c1", "Camp", 200, 1, 5)}

	_, err := g.Generate(context.Background(), model.PlanningSession{Weeks: testWeeks(1)}, pool, nil)
	assert.ErrorIs(t, err, model.ErrNoChildren)

	_, err = g.Generate(context.Background(), model.PlanningSession{Children: []model.Child{child(0, "Ada", 3)}}, pool, nil)
	assert.ErrorIs(t, err, model.ErrNoWeeks)

	bad := testSession(1, model.Child{ID: 0, Name: "Ada", Grade: model.GradeUnset})
	_, err = g.Generate(context.Background(), bad, pool, nil)
	assert.ErrorIs(t, err, model.ErrMissingGrade)
}

func TestGenerate_EmptyPoolYieldsNoOptions(t *testing.T) {
	g := newTestGenerator()
	sess := testSession(2, child(0, "Ada", 3))

	options, err := g.Generate(context.Background(), sess, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestGenerate_AllSlotsInfeasibleYieldsNoOptions(t *testing.T) {
	g := newTestGenerator()
	sess := testSession(2, child(0, "Ada", 3))
	// Only camp is grade-incompatible with the only child.
	pool := []model.CampCandidate{summerCamp("teen", "Teens Only", 200, 9, 12)}

	options, err := g.Generate(context.Background(), sess, pool, nil)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestGenerate_OneOptionPerProfile(t *testing.T) {
	g := newTestGenerator()
	sess := testSession(2, child(0, "Ada", 3))
	pool := []model.CampCandidate{
		summerCamp("a", "Alpha", 200, 1, 5, "science"),
		summerCamp("b", "Beta", 150, 1, 5, "art"),
	}

	options, err := g.Generate(context.Background(), sess, pool, nil)
	require.NoError(t, err)
	require.Len(t, options, 4)
	assert.Equal(t, FocusBalanced, options[0].OptimizationFocus)

	seen := map[string]bool{}
	for _, opt := range options {
		assert.NotEmpty(t, opt.ScheduleID)
		assert.False(t, seen[opt.OptimizationFocus], "duplicate focus %s", opt.OptimizationFocus)
		seen[opt.OptimizationFocus] = true
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	sess := testSession(3, child(0, "Ada", 3, loves("science")), child(1, "Ben", 5, likes("art")))
	sess.WeeklyBudget = 400
	pool := []model.CampCandidate{
		summerCamp("a", "Alpha Science", 200, 1, 5, "science"),
		summerCamp("b", "Beta Arts", 150, 1, 6, "art"),
		summerCamp("c", "Gamma Games", 300, 2, 8, "games"),
	}

	first, err := newTestGenerator().Generate(context.Background(), sess, pool, nil)
	require.NoError(t, err)
	second, err := newTestGenerator().Generate(context.Background(), sess, pool, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_TotalCostSumsMatchPrices(t *testing.T) {
	sess := testSession(2, child(0, "Ada", 3), child(1, "Ben", 5))
	pool := []model.CampCandidate{
		summerCamp("a", "Alpha", 225, 1, 6, "science"),
		summerCamp("b", "Beta", 175, 1, 6, "art"),
	}

	options, err := newTestGenerator().Generate(context.Background(), sess, pool, nil)
	require.NoError(t, err)
	for _, opt := range options {
		var total float64
		slots := 0
		opt.Matches(func(_, _ int, m *model.CampMatch) {
			total += m.Price
			slots++
		})
		assert.InDelta(t, total, opt.TotalCost, 1e-9, opt.OptimizationFocus)
		assert.LessOrEqual(t, slots, len(sess.Weeks)*len(sess.Children))
		assert.LessOrEqual(t, opt.Summary.WeeksCovered, len(sess.Weeks))
	}
}

func TestGenerate_PriorityOrderChangesWinningCamp(t *testing.T) {
	home := model.Coordinates{Lat: 33.0, Lon: -96.7}
	sess := testSession(1, child(0, "Ada", 3))
	sess.WeeklyBudget = 250
	sess.Home = &home
	sess.RadiusMiles = 10

	cheapFar := summerCamp("cheap", "Cheap Far Camp", 100, 1, 5)
	cheapFar.Sessions[0].Coords = &model.Coordinates{Lat: 33.13, Lon: -96.7}
	priceyNear := summerCamp("near", "Pricey Near Camp", 240, 1, 5)
	priceyNear.Sessions[0].Coords = &model.Coordinates{Lat: 33.005, Lon: -96.7}
	pool := []model.CampCandidate{cheapFar, priceyNear}

	options, err := newTestGenerator().Generate(context.Background(), sess, pool, nil)
	require.NoError(t, err)

	byFocus := map[string]model.ScheduleOption{}
	for _, opt := range options {
		byFocus[opt.OptimizationFocus] = opt
	}
	require.Contains(t, byFocus, FocusBudget)
	require.Contains(t, byFocus, FocusLocation)

	budgetMatch := byFocus[FocusBudget].Weeks[0].Children[0].Match
	locationMatch := byFocus[FocusLocation].Weeks[0].Children[0].Match
	require.NotNil(t, budgetMatch)
	require.NotNil(t, locationMatch)
	assert.Equal(t, "cheap", budgetMatch.CampID)
	assert.Equal(t, "near", locationMatch.CampID)
}

func TestGenerate_LocksHeldAcrossAllOptions(t *testing.T) {
	sess := testSession(2, child(0, "Ada", 3))
	pool := []model.CampCandidate{
		summerCamp("a", "Alpha", 100, 1, 5, "science"),
		summerCamp("b", "Beta", 200, 1, 5, "art"),
	}
	locks := model.LockSet{{ChildID: 0, WeekID: 1, CampID: "b", SessionID: "b-s1"}}

	options, err := newTestGenerator().Generate(context.Background(), sess, pool, locks)
	require.NoError(t, err)
	require.NotEmpty(t, options)

	for _, opt := range options {
		match := opt.Weeks[1].Children[0].Match
		require.NotNil(t, match, opt.OptimizationFocus)
		assert.Equal(t, "b", match.CampID, opt.OptimizationFocus)
		assert.True(t, match.Locked, opt.OptimizationFocus)
	}
}

func TestGenerate_HonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sess := testSession(1, child(0, "Ada", 3))
	pool := []model.CampCandidate{summerCamp("a", "Alpha", 100, 1, 5)}

	_, err := newTestGenerator().Generate(ctx, sess, pool, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
