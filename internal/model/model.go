// Package model holds the tabular records the ranking pipeline consumes.
package model

import (
	"github.com/sells-group/podium-cli/internal/comp"
)

// Result is one solver run on one benchmark: identity columns, the outcome
// classification, raw run times, and the four pre-computed score fields.
// Score fields follow the published ordering convention: error and time scores
// are stored as negated magnitudes so that a descending sort ranks better
// solvers first. Rows are immutable once loaded.
type Result struct {
	Solver       comp.Solver   `json:"solver"`
	Division     comp.Division `json:"division"`
	Logic        comp.Logic    `json:"logic"`
	Track        comp.Track    `json:"track"`
	Disagreement bool          `json:"disagreement"`
	Answer       comp.Answer   `json:"answer"`

	CPUTimeS  float64 `json:"cpu_time_s"`
	WallTimeS float64 `json:"wallclock_time_s"`

	ErrorScore   float64 `json:"error_score"`
	CorrectScore float64 `json:"correctly_solved_score"`
	CPUScore     float64 `json:"cpu_time_score"`
	WallScore    float64 `json:"wallclock_time_score"`
}

// Selection marks whether one benchmark slice was drawn into the scored set.
// The count of selected rows per group is the denominator for abstentions.
type Selection struct {
	Division comp.Division `json:"division"`
	Logic    comp.Logic    `json:"logic"`
	Selected bool          `json:"selected"`
}
