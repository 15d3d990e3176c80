package podium

import (
	"fmt"

	"github.com/sells-group/podium-cli/internal/scoring"
)

// competingFlag reports whether a ranked solver counts as a competing entry.
// TODO: exclude demonstration-only entries once the participation rule for
// non-competing solvers is decided; until then every listed solver is "yes".
func competingFlag(SolverAggregate) string {
	return "yes"
}

// winner returns the name of the variant winner: the top-ranked solver,
// unless the list is empty or the top entry solved nothing correctly, in
// which case the NoWinner sentinel is returned.
func winner(list []SolverAggregate) string {
	if len(list) == 0 || list[0].CorrectScore == 0 {
		return NoWinner
	}
	return string(list[0].Solver)
}

// steps converts ranked aggregates to their published form. Error score is
// stored as a negated magnitude and flipped back to a positive count here.
func steps(list []SolverAggregate) []PodiumStep {
	out := make([]PodiumStep, 0, len(list))
	for _, s := range list {
		out = append(out, PodiumStep{
			Name:         string(s.Solver),
			Competing:    competingFlag(s),
			ErrorScore:   int(-s.ErrorScore),
			CorrectScore: int(s.CorrectScore),
			CPUScore:     s.CPUScore,
			WallScore:    s.WallScore,
			Solved:       s.Solved,
			SolvedSat:    s.SolvedSat,
			SolvedUnsat:  s.SolvedUnsat,
			Unsolved:     s.Unsolved,
			Abstained:    s.Abstained,
			Timeout:      s.Timeout,
			Memout:       s.Memout,
		})
	}
	return out
}

// Assemble joins the five ranked lists of one group value into its record.
// logics is the division's per-logic benchmark breakdown; it is nil when
// grouping by logic and is published as an empty map then.
func Assemble(
	meta Meta,
	group string,
	total int,
	logics map[string]int,
	ranked map[scoring.Kind][]SolverAggregate,
) *PodiumDivision {
	if logics == nil {
		logics = map[string]int{}
	}

	return &PodiumDivision{
		ResultDate:    meta.ResultDate,
		Year:          meta.Year,
		Divisions:     fmt.Sprintf("divisions_%d", meta.Year),
		Participants:  fmt.Sprintf("participants_%d", meta.Year),
		Disagreements: fmt.Sprintf("disagreements_%d", meta.Year),
		Division:      group,
		Track:         meta.Track.Label(),
		NBenchmarks:   total,
		TimeLimit:     meta.TimeLimitS,
		MemLimit:      meta.MemLimitM,
		Logics:        logics,
		WinnerSeq:     winner(ranked[scoring.Seq]),
		WinnerPar:     winner(ranked[scoring.Par]),
		WinnerSat:     winner(ranked[scoring.Sat]),
		WinnerUnsat:   winner(ranked[scoring.Unsat]),
		Winner24s:     winner(ranked[scoring.Twentyfour]),
		Sequential:    steps(ranked[scoring.Seq]),
		Parallel:      steps(ranked[scoring.Par]),
		Sat:           steps(ranked[scoring.Sat]),
		Unsat:         steps(ranked[scoring.Unsat]),
		TwentyFour:    steps(ranked[scoring.Twentyfour]),
		Layout:        "result",
	}
}
