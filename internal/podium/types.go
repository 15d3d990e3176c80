// Package podium turns raw evaluation results into ranked competition
// records: it groups results by division or logic, aggregates per-solver
// scores for each scoring variant, ranks the solvers, and assembles one
// publishable record per group.
package podium

import (
	"github.com/sells-group/podium-cli/internal/comp"
)

// GroupKey selects which identity column groups the results.
type GroupKey int

const (
	// ByDivision groups results by their division.
	ByDivision GroupKey = iota
	// ByLogic groups results by their logic.
	ByLogic
)

func (k GroupKey) String() string {
	if k == ByDivision {
		return "division"
	}
	return "logic"
}

// NoWinner is the sentinel published when a variant has no meaningful winner.
const NoWinner = "-"

// SolverAggregate is one solver's aggregated standing within one group for
// one scoring variant: summed score fields plus outcome counters.
type SolverAggregate struct {
	Solver comp.Solver

	ErrorScore   float64
	CorrectScore float64
	CPUScore     float64
	WallScore    float64

	Solved      int
	SolvedSat   int
	SolvedUnsat int
	Unsolved    int
	Timeout     int
	Memout      int
	Abstained   int
}

// PodiumStep is one ranked entry as published. Field names follow the
// destination format (Hugo lowercases dict keys; these tags are what its
// templates expect).
type PodiumStep struct {
	Name         string  `json:"name"`
	Competing    string  `json:"competing"` // yes or no
	ErrorScore   int     `json:"errorScore"`
	CorrectScore int     `json:"correctScore"`
	CPUScore     float64 `json:"CPUScore"`
	WallScore    float64 `json:"WallScore"`
	Solved       int     `json:"solved"`
	SolvedSat    int     `json:"solved_sat"`
	SolvedUnsat  int     `json:"solved_unsat"`
	Unsolved     int     `json:"unsolved"`
	Abstained    int     `json:"abstained"`
	Timeout      int     `json:"timeout"`
	Memout       int     `json:"memout"`
}

// PodiumDivision is the full ranking record for one group value: display
// metadata, the five ranked lists, and one declared winner per variant.
type PodiumDivision struct {
	ResultDate    string         `json:"resultdate"`
	Year          int            `json:"year"`
	Divisions     string         `json:"divisions"`     // divisions_<year>
	Participants  string         `json:"participants"`  // participants_<year>
	Disagreements string         `json:"disagreements"` // disagreements_<year>
	Division      string         `json:"division"`
	Track         string         `json:"track"`
	NBenchmarks   int            `json:"n_benchmarks"`
	TimeLimit     int            `json:"time_limit"`
	MemLimit      int            `json:"mem_limit"`
	Logics        map[string]int `json:"logics"`
	WinnerSeq     string         `json:"winner_seq"`
	WinnerPar     string         `json:"winner_par"`
	WinnerSat     string         `json:"winner_sat"`
	WinnerUnsat   string         `json:"winner_unsat"`
	Winner24s     string         `json:"winner_24s"`

	Sequential []PodiumStep `json:"sequential"`
	Parallel   []PodiumStep `json:"parallel"`
	Sat        []PodiumStep `json:"sat"`
	Unsat      []PodiumStep `json:"unsat"`
	TwentyFour []PodiumStep `json:"twentyfour"`

	Layout string `json:"layout"`
}

// Meta carries the static configuration echoed into every record of one
// export run. Values are display-only; aggregation never computes with them.
type Meta struct {
	Year       int
	ResultDate string
	TimeLimitS int
	MemLimitM  int
	Track      comp.Track
}
