package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/podium-cli/internal/comp"
	"github.com/sells-group/podium-cli/internal/model"
)

func row(answer comp.Answer, cpu, wall float64) model.Result {
	return model.Result{
		Solver:    "s",
		Answer:    answer,
		CPUTimeS:  cpu,
		WallTimeS: wall,
	}
}

func TestKindsOrder(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 5)
	assert.Equal(t, []Kind{Seq, Par, Sat, Unsat, Twentyfour}, kinds)

	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	assert.Equal(t, []string{"sequential", "parallel", "sat", "unsat", "twentyfour"}, names)
}

func TestFilterFor(t *testing.T) {
	limits := Limits{TimeLimitS: 60}
	rows := []model.Result{
		row(comp.AnswerSat, 10, 8),      // fast sat
		row(comp.AnswerUnsat, 70, 40),   // cpu over limit, wall over 24s
		row(comp.AnswerUnknown, 20, 23), // unknown under 24s
		row(comp.AnswerTimeout, 60, 60), // at cpu limit
	}

	tests := []struct {
		kind Kind
		want int
	}{
		{Seq, 3},        // drops the 70s cpu row
		{Par, 4},        // keeps everything
		{Sat, 3},        // drops the unsat-solved row
		{Unsat, 3},      // drops the sat-solved row
		{Twentyfour, 2}, // keeps wall <= 24s only
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := FilterFor(tt.kind, limits, rows)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFilterForDoesNotMutateInput(t *testing.T) {
	rows := []model.Result{row(comp.AnswerSat, 1, 1), row(comp.AnswerUnsat, 2, 2)}
	FilterFor(Sat, Limits{TimeLimitS: 60}, rows)
	assert.Equal(t, comp.AnswerUnsat, rows[1].Answer)
	assert.Len(t, rows, 2)
}

func TestScoresOrder(t *testing.T) {
	r := model.Result{ErrorScore: -1, CorrectScore: 2, CPUScore: -3.5, WallScore: -4.5}
	assert.Equal(t, [4]float64{-1, 2, -3.5, -4.5}, Scores(r))
}

func TestPredicatesPartition(t *testing.T) {
	answers := []comp.Answer{
		comp.AnswerSat, comp.AnswerUnsat, comp.AnswerUnknown,
		comp.AnswerTimeout, comp.AnswerMemout,
	}

	for _, a := range answers {
		r := row(a, 1, 1)
		n := 0
		for _, pred := range []func(model.Result) bool{Solved, Unsolved, Timeout, Memout} {
			if pred(r) {
				n++
			}
		}
		assert.Equal(t, 1, n, "answer %s must match exactly one outcome class", a)
	}
}

func TestSatUnsatPredicates(t *testing.T) {
	assert.True(t, SolvedSat(row(comp.AnswerSat, 1, 1)))
	assert.False(t, SolvedSat(row(comp.AnswerUnsat, 1, 1)))
	assert.True(t, SolvedUnsat(row(comp.AnswerUnsat, 1, 1)))
	assert.False(t, SolvedUnsat(row(comp.AnswerUnknown, 1, 1)))
}
