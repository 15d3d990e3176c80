// Package comp defines the competition vocabulary: divisions, logics,
// tracks, and solver answers.
package comp

import (
	"github.com/rotisserie/eris"
)

// Division is a top-level benchmark category (e.g. "Arith", "QF_LinearIntArith").
type Division string

// Logic is an SMT logic fragment identifier (e.g. "QF_LIA"), finer-grained
// than a division.
type Logic string

// Solver identifies a submitted solver by its raw display name.
type Solver string

// Track is a competition track identifier.
type Track string

// Tracks recognized in result tables. Only the single-query track is ranked.
const (
	TrackSingleQuery Track = "single_query"
	TrackIncremental Track = "incremental"
	TrackModelVal    Track = "model_validation"
	TrackUnsatCore   Track = "unsat_core"
)

// Label returns the track label used in published ranking records.
func (t Track) Label() string {
	return "track_" + string(t)
}

// Answer classifies the outcome of one solver run on one benchmark.
// The classes are mutually exclusive.
type Answer int

const (
	// AnswerUnknown means the solver gave no usable answer within limits.
	AnswerUnknown Answer = iota
	// AnswerSat means the solver reported satisfiable and was not refuted.
	AnswerSat
	// AnswerUnsat means the solver reported unsatisfiable and was not refuted.
	AnswerUnsat
	// AnswerTimeout means the run exceeded the time limit.
	AnswerTimeout
	// AnswerMemout means the run exceeded the memory limit.
	AnswerMemout
)

var answerNames = map[Answer]string{
	AnswerUnknown: "unknown",
	AnswerSat:     "sat",
	AnswerUnsat:   "unsat",
	AnswerTimeout: "timeout",
	AnswerMemout:  "memout",
}

func (a Answer) String() string {
	if s, ok := answerNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseAnswer maps a raw answer cell to an Answer. Unrecognized values are a
// hard error: a malformed results table must not be scored.
func ParseAnswer(s string) (Answer, error) {
	switch s {
	case "sat":
		return AnswerSat, nil
	case "unsat":
		return AnswerUnsat, nil
	case "unknown":
		return AnswerUnknown, nil
	case "timeout":
		return AnswerTimeout, nil
	case "memout":
		return AnswerMemout, nil
	default:
		return AnswerUnknown, eris.Errorf("comp: unrecognized answer %q", s)
	}
}

// Solved reports whether the answer is a definite sat or unsat result.
func (a Answer) Solved() bool {
	return a == AnswerSat || a == AnswerUnsat
}
