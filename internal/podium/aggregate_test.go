package podium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/podium-cli/internal/comp"
	"github.com/sells-group/podium-cli/internal/model"
	"github.com/sells-group/podium-cli/internal/scoring"
)

var testLimits = scoring.Limits{TimeLimitS: 60}

// res builds a single-query result row with sane defaults.
func res(solver, division, logic string, answer comp.Answer, opts ...func(*model.Result)) model.Result {
	r := model.Result{
		Solver:    comp.Solver(solver),
		Division:  comp.Division(division),
		Logic:     comp.Logic(logic),
		Track:     comp.TrackSingleQuery,
		Answer:    answer,
		CPUTimeS:  1,
		WallTimeS: 1,
	}
	if answer.Solved() {
		r.CorrectScore = 1
	}
	r.CPUScore = -r.CPUTimeS
	r.WallScore = -r.WallTimeS
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func sel(division, logic string, selected bool) model.Selection {
	return model.Selection{
		Division: comp.Division(division),
		Logic:    comp.Logic(logic),
		Selected: selected,
	}
}

func TestBuildTotalsByDivision(t *testing.T) {
	selection := []model.Selection{
		sel("Arith", "LIA", true),
		sel("Arith", "LIA", true),
		sel("Arith", "LRA", true),
		sel("Arith", "NRA", false),
		sel("Bitvec", "BV", true),
	}

	totals := BuildTotals(ByDivision, selection)
	assert.Equal(t, map[string]int{"Arith": 3, "Bitvec": 1}, totals.Totals)
	assert.Equal(t, map[string]int{"LIA": 2, "LRA": 1}, totals.Logics["Arith"])
}

func TestBuildTotalsByLogicHasNoBreakdown(t *testing.T) {
	totals := BuildTotals(ByLogic, []model.Selection{
		sel("Arith", "LIA", true),
		sel("Arith", "LRA", true),
	})
	assert.Equal(t, map[string]int{"LIA": 1, "LRA": 1}, totals.Totals)
	assert.Nil(t, totals.Logics)
}

// The reference scenario: two selected benchmarks in Arith, solver A solves
// both (one sat, one unsat), solver B produces nothing eligible.
func TestAggregateReferenceScenario(t *testing.T) {
	selection := []model.Selection{
		sel("Arith", "LIA", true),
		sel("Arith", "LRA", true),
	}
	rows := []model.Result{
		res("A", "Arith", "LIA", comp.AnswerSat),
		res("A", "Arith", "LRA", comp.AnswerUnsat),
		// B's only run blew the cpu budget; ineligible sequentially.
		res("B", "Arith", "LIA", comp.AnswerTimeout, func(r *model.Result) {
			r.CPUTimeS = 120
			r.WallTimeS = 120
		}),
	}

	ranked, err := Aggregate(scoring.Seq, testLimits, rows, BuildTotals(ByDivision, selection))
	require.NoError(t, err)

	list := ranked["Arith"]
	require.Len(t, list, 2)

	assert.Equal(t, comp.Solver("A"), list[0].Solver)
	assert.Equal(t, 2, list[0].Solved)
	assert.Equal(t, 1, list[0].SolvedSat)
	assert.Equal(t, 1, list[0].SolvedUnsat)
	assert.Equal(t, 0, list[0].Abstained)
	assert.Equal(t, 2.0, list[0].CorrectScore)

	assert.Equal(t, comp.Solver("B"), list[1].Solver)
	assert.Equal(t, 0, list[1].Solved)
	assert.Equal(t, 2, list[1].Abstained)
	assert.Equal(t, 0.0, list[1].CorrectScore)
}

// Outcome counts plus abstentions must account for every selected benchmark,
// for every variant and every solver.
func TestAggregateCountsSumToTotal(t *testing.T) {
	selection := []model.Selection{
		sel("Arith", "LIA", true),
		sel("Arith", "LRA", true),
		sel("Arith", "NIA", true),
	}
	rows := []model.Result{
		res("A", "Arith", "LIA", comp.AnswerSat),
		res("A", "Arith", "LRA", comp.AnswerTimeout, func(r *model.Result) { r.CPUTimeS = 60; r.WallTimeS = 60 }),
		res("A", "Arith", "NIA", comp.AnswerMemout),
		res("B", "Arith", "LIA", comp.AnswerUnsat),
		res("B", "Arith", "LRA", comp.AnswerUnknown, func(r *model.Result) { r.WallTimeS = 30 }),
	}
	totals := BuildTotals(ByDivision, selection)

	for _, kind := range scoring.Kinds() {
		ranked, err := Aggregate(kind, testLimits, rows, totals)
		require.NoError(t, err)

		for group, list := range ranked {
			total := totals.Totals[group]
			for _, s := range list {
				sum := s.Solved + s.Unsolved + s.Timeout + s.Memout + s.Abstained
				assert.Equal(t, total, sum, "kind %s group %s solver %s", kind, group, s.Solver)
				assert.LessOrEqual(t, s.SolvedSat+s.SolvedUnsat, s.Solved)
			}
		}
	}
}

// Identical scores must still produce a strict order: solver name descending.
func TestAggregateTieBreakIsDescendingRawName(t *testing.T) {
	selection := []model.Selection{sel("Arith", "LIA", true)}
	rows := []model.Result{
		res("alpha", "Arith", "LIA", comp.AnswerSat),
		res("Beta", "Arith", "LIA", comp.AnswerSat),
		res("beta", "Arith", "LIA", comp.AnswerSat),
	}

	ranked, err := Aggregate(scoring.Par, testLimits, rows, BuildTotals(ByDivision, selection))
	require.NoError(t, err)

	list := ranked["Arith"]
	require.Len(t, list, 3)
	// Raw byte order, not case-normalized: 'b' > 'a' > 'B'.
	assert.Equal(t, comp.Solver("beta"), list[0].Solver)
	assert.Equal(t, comp.Solver("alpha"), list[1].Solver)
	assert.Equal(t, comp.Solver("Beta"), list[2].Solver)
}

func TestAggregateOrdersByScoreTuple(t *testing.T) {
	selection := []model.Selection{
		sel("Arith", "LIA", true),
		sel("Arith", "LRA", true),
	}
	rows := []model.Result{
		// Same correctness, A is faster than B on cpu.
		res("A", "Arith", "LIA", comp.AnswerSat, func(r *model.Result) { r.CPUScore = -1 }),
		res("B", "Arith", "LIA", comp.AnswerSat, func(r *model.Result) { r.CPUScore = -5 }),
		// C made an error: error score dominates everything else.
		res("C", "Arith", "LIA", comp.AnswerSat, func(r *model.Result) { r.ErrorScore = -1 }),
		res("C", "Arith", "LRA", comp.AnswerSat),
	}

	ranked, err := Aggregate(scoring.Par, testLimits, rows, BuildTotals(ByDivision, selection))
	require.NoError(t, err)

	list := ranked["Arith"]
	require.Len(t, list, 3)
	assert.Equal(t, comp.Solver("A"), list[0].Solver)
	assert.Equal(t, comp.Solver("B"), list[1].Solver)
	assert.Equal(t, comp.Solver("C"), list[2].Solver, "error score outweighs two solved benchmarks")
}

func TestAggregateNegativeAbstainedIsFatal(t *testing.T) {
	selection := []model.Selection{sel("Arith", "LIA", true)}
	rows := []model.Result{
		res("A", "Arith", "LIA", comp.AnswerSat),
		res("A", "Arith", "LIA", comp.AnswerSat),
	}

	_, err := Aggregate(scoring.Par, testLimits, rows, BuildTotals(ByDivision, selection))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selected benchmarks")
}

func TestAggregateRestrictsTrackAndSelection(t *testing.T) {
	selection := []model.Selection{sel("Arith", "LIA", true)}
	rows := []model.Result{
		res("A", "Arith", "LIA", comp.AnswerSat),
		// Wrong track.
		res("A", "Arith", "LIA", comp.AnswerSat, func(r *model.Result) { r.Track = comp.TrackIncremental }),
		// Division not in the selection.
		res("A", "Strings", "S", comp.AnswerSat),
	}

	ranked, err := Aggregate(scoring.Par, testLimits, rows, BuildTotals(ByDivision, selection))
	require.NoError(t, err)
	require.Len(t, ranked, 1)

	list := ranked["Arith"]
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Solved)
	assert.Equal(t, 0, list[0].Abstained)
}

func TestAggregateEmptyResults(t *testing.T) {
	selection := []model.Selection{sel("Arith", "LIA", true)}

	ranked, err := Aggregate(scoring.Par, testLimits, nil, BuildTotals(ByDivision, selection))
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
