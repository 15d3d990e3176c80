package podium

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/sells-group/podium-cli/internal/comp"
	"github.com/sells-group/podium-cli/internal/model"
	"github.com/sells-group/podium-cli/internal/scoring"
)

// GroupTotals holds the selected-benchmark denominator per group value and,
// when grouping by division, the per-logic benchmark breakdown.
type GroupTotals struct {
	Key    GroupKey
	Totals map[string]int
	// Logics maps division → logic → selected-benchmark count. Populated only
	// for ByDivision.
	Logics map[string]map[string]int
}

// BuildTotals derives GroupTotals from the selection table, counting only
// selected benchmarks.
func BuildTotals(key GroupKey, selection []model.Selection) *GroupTotals {
	t := &GroupTotals{
		Key:    key,
		Totals: make(map[string]int),
	}
	if key == ByDivision {
		t.Logics = make(map[string]map[string]int)
	}

	for _, s := range selection {
		if !s.Selected {
			continue
		}
		group := groupOfSelection(key, s)
		t.Totals[group]++
		if key == ByDivision {
			if t.Logics[group] == nil {
				t.Logics[group] = make(map[string]int)
			}
			t.Logics[group][string(s.Logic)]++
		}
	}
	return t
}

type cell struct {
	group  string
	solver comp.Solver
}

// Aggregate produces the ranked per-solver aggregates of one scoring variant
// for every group value, keyed by group. Rows outside the single-query track
// or outside the selection (no totals entry) are dropped. The solver roster
// of a group is fixed before the variant filter runs, so a solver whose runs
// are all ineligible for the variant still appears, fully abstained. The
// roster is derived from the result rows alone: a solver with no rows at all
// in a group is unknown to the pipeline and cannot be listed. Returned group
// keys are always a subset of the totals keys.
func Aggregate(
	kind scoring.Kind,
	limits scoring.Limits,
	rows []model.Result,
	totals *GroupTotals,
) (map[string][]SolverAggregate, error) {
	tracked := make([]model.Result, 0, len(rows))
	roster := make(map[cell]struct{})
	for _, r := range rows {
		if r.Track != comp.TrackSingleQuery {
			continue
		}
		group := groupOfResult(totals.Key, r)
		if _, ok := totals.Totals[group]; !ok {
			// Benchmark outside the current selection.
			continue
		}
		tracked = append(tracked, r)
		roster[cell{group: group, solver: r.Solver}] = struct{}{}
	}

	eligible := scoring.FilterFor(kind, limits, tracked)

	buckets := make(map[cell]*SolverAggregate, len(roster))
	contributed := make(map[cell]int, len(roster))

	for _, r := range eligible {
		c := cell{group: groupOfResult(totals.Key, r), solver: r.Solver}
		agg := buckets[c]
		if agg == nil {
			agg = &SolverAggregate{Solver: r.Solver}
			buckets[c] = agg
		}

		agg.ErrorScore += r.ErrorScore
		agg.CorrectScore += r.CorrectScore
		agg.CPUScore += r.CPUScore
		agg.WallScore += r.WallScore

		switch {
		case scoring.SolvedSat(r):
			agg.Solved++
			agg.SolvedSat++
		case scoring.SolvedUnsat(r):
			agg.Solved++
			agg.SolvedUnsat++
		case scoring.Unsolved(r):
			agg.Unsolved++
		case scoring.Timeout(r):
			agg.Timeout++
		case scoring.Memout(r):
			agg.Memout++
		}
		contributed[c]++
	}

	out := make(map[string][]SolverAggregate, len(totals.Totals))
	for c := range roster {
		agg := buckets[c]
		if agg == nil {
			agg = &SolverAggregate{Solver: c.solver}
		}

		total := totals.Totals[c.group]
		agg.Abstained = total - contributed[c]
		if agg.Abstained < 0 {
			return nil, eris.Errorf(
				"podium: solver %q has %d results for %s %q but only %d selected benchmarks",
				c.solver, contributed[c], totals.Key, c.group, total,
			)
		}
		out[c.group] = append(out[c.group], *agg)
	}

	for group := range out {
		sortRanked(out[group])
	}
	return out, nil
}

// sortRanked orders a group's solvers descending by the fixed score tuple,
// tie-broken descending by raw solver name. The ordering is a strict total
// order: no two entries of one list compare equal.
func sortRanked(list []SolverAggregate) {
	sort.Slice(list, func(i, j int) bool {
		a, b := &list[i], &list[j]
		for _, s := range [][2]float64{
			{a.ErrorScore, b.ErrorScore},
			{a.CorrectScore, b.CorrectScore},
			{a.CPUScore, b.CPUScore},
			{a.WallScore, b.WallScore},
		} {
			if s[0] != s[1] {
				return s[0] > s[1]
			}
		}
		return a.Solver > b.Solver
	})
}

func groupOfResult(key GroupKey, r model.Result) string {
	if key == ByDivision {
		return string(r.Division)
	}
	return string(r.Logic)
}

func groupOfSelection(key GroupKey, s model.Selection) string {
	if key == ByDivision {
		return string(s.Division)
	}
	return string(s.Logic)
}
