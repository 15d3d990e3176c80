// Package scoring defines the five ranking variants and the row predicates
// the aggregation pipeline is parameterized by. Variants are a closed set of
// named strategies; aggregation never inspects variant identity beyond this
// package's functions.
package scoring

import (
	"github.com/sells-group/podium-cli/internal/comp"
	"github.com/sells-group/podium-cli/internal/model"
)

// Kind is one of the five scoring variants.
type Kind int

const (
	// Seq ranks by sequential performance: only runs whose cpu time fits the
	// benchmark time limit are eligible.
	Seq Kind = iota
	// Par ranks by parallel (wall-clock) performance over all runs.
	Par
	// Sat ranks sat-solving only: runs solved with an unsat answer are ineligible.
	Sat
	// Unsat ranks unsat-solving only: runs solved with a sat answer are ineligible.
	Unsat
	// Twentyfour ranks performance under a 24 second wall-clock cutoff.
	Twentyfour
)

// twentyfourCutoffS is the wall-clock eligibility cutoff for the 24s variant.
const twentyfourCutoffS = 24.0

// Kinds returns the five variants in their fixed publication order.
func Kinds() []Kind {
	return []Kind{Seq, Par, Sat, Unsat, Twentyfour}
}

var kindNames = map[Kind]string{
	Seq:        "sequential",
	Par:        "parallel",
	Sat:        "sat",
	Unsat:      "unsat",
	Twentyfour: "twentyfour",
}

func (k Kind) String() string { return kindNames[k] }

// Limits carries the run limits variant filters depend on.
type Limits struct {
	TimeLimitS float64
}

// FilterFor returns the subset of rows eligible for the variant. Rows a
// variant drops still count against the solver as abstentions downstream.
func FilterFor(kind Kind, limits Limits, rows []model.Result) []model.Result {
	eligible := func(r model.Result) bool {
		switch kind {
		case Seq:
			return r.CPUTimeS <= limits.TimeLimitS
		case Par:
			return true
		case Sat:
			return r.Answer != comp.AnswerUnsat
		case Unsat:
			return r.Answer != comp.AnswerSat
		case Twentyfour:
			return r.WallTimeS <= twentyfourCutoffS
		default:
			return false
		}
	}

	out := make([]model.Result, 0, len(rows))
	for _, r := range rows {
		if eligible(r) {
			out = append(out, r)
		}
	}
	return out
}

// Scores returns the row's score fields in the fixed ordering used for both
// aggregation and ranking: error, correct, cpu, wall.
func Scores(r model.Result) [4]float64 {
	return [4]float64{r.ErrorScore, r.CorrectScore, r.CPUScore, r.WallScore}
}

// Answer-classification predicates. Exactly one of Solved/Unsolved/Timeout/
// Memout holds for every row.

// Solved reports a definite answer.
func Solved(r model.Result) bool { return r.Answer.Solved() }

// SolvedSat reports a definite sat answer.
func SolvedSat(r model.Result) bool { return r.Answer == comp.AnswerSat }

// SolvedUnsat reports a definite unsat answer.
func SolvedUnsat(r model.Result) bool { return r.Answer == comp.AnswerUnsat }

// Unsolved reports a run that finished without an answer.
func Unsolved(r model.Result) bool { return r.Answer == comp.AnswerUnknown }

// Timeout reports a run killed on the time limit.
func Timeout(r model.Result) bool { return r.Answer == comp.AnswerTimeout }

// Memout reports a run killed on the memory limit.
func Memout(r model.Result) bool { return r.Answer == comp.AnswerMemout }
