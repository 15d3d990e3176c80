package podium

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/podium-cli/internal/model"
	"github.com/sells-group/podium-cli/internal/scoring"
)

// Writer receives one assembled record per group value. Names are already
// lowercased; the destination format treats identifiers case-insensitively.
type Writer interface {
	WriteRecord(name string, record *PodiumDivision) error
}

// Export runs the full pipeline: disagreement rows are dropped once up
// front, then for each grouping key the five variant aggregations are joined
// into one record per group value and handed to w. Records of one grouping
// key are fully assembled before any write happens; writes of different
// groups run concurrently.
func Export(meta Meta, results []model.Result, selection []model.Selection, w Writer) error {
	clean := dropDisagreements(results)
	limits := limitsOf(meta)

	for _, key := range []GroupKey{ByDivision, ByLogic} {
		records, err := generate(meta, key, limits, clean, selection)
		if err != nil {
			return err
		}

		var g errgroup.Group
		for name, record := range records {
			name, record := name, record
			g.Go(func() error {
				if err := w.WriteRecord(name, record); err != nil {
					return eris.Wrapf(err, "podium: write %s record %q", key, name)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		zap.L().Info("podium: export pass complete",
			zap.String("group_key", key.String()),
			zap.Int("records", len(records)),
		)
	}
	return nil
}

// Records computes every record of both grouping keys without writing
// anything, keyed by grouping key name then lowercased group name.
func Records(meta Meta, results []model.Result, selection []model.Selection) (map[string]map[string]*PodiumDivision, error) {
	clean := dropDisagreements(results)
	limits := limitsOf(meta)

	out := make(map[string]map[string]*PodiumDivision, 2)
	for _, key := range []GroupKey{ByDivision, ByLogic} {
		records, err := generate(meta, key, limits, clean, selection)
		if err != nil {
			return nil, err
		}
		out[key.String()] = records
	}
	return out, nil
}

func dropDisagreements(results []model.Result) []model.Result {
	clean := make([]model.Result, 0, len(results))
	for _, r := range results {
		if !r.Disagreement {
			clean = append(clean, r)
		}
	}
	if n := len(results) - len(clean); n > 0 {
		zap.L().Info("podium: excluded disagreement rows", zap.Int("rows", n))
	}
	return clean
}

// generate computes every record of one grouping key, keyed by lowercased
// group name. Every aggregation restricts itself to groups in the totals, so
// the join below iterates the totals alone: a group absent from a variant's
// aggregation gets an empty ranked list for that variant.
func generate(
	meta Meta,
	key GroupKey,
	limits scoring.Limits,
	results []model.Result,
	selection []model.Selection,
) (map[string]*PodiumDivision, error) {
	totals := BuildTotals(key, selection)

	perKind := make(map[scoring.Kind]map[string][]SolverAggregate, len(scoring.Kinds()))
	for _, kind := range scoring.Kinds() {
		agg, err := Aggregate(kind, limits, results, totals)
		if err != nil {
			return nil, eris.Wrapf(err, "podium: aggregate %s by %s", kind, key)
		}
		perKind[kind] = agg
	}

	records := make(map[string]*PodiumDivision, len(totals.Totals))
	for _, group := range sortedGroups(totals.Totals) {
		ranked := make(map[scoring.Kind][]SolverAggregate, len(perKind))
		for kind, agg := range perKind {
			ranked[kind] = agg[group]
		}

		var logics map[string]int
		if key == ByDivision {
			logics = totals.Logics[group]
		}

		name := strings.ToLower(group)
		if _, dup := records[name]; dup {
			return nil, eris.Errorf("podium: %s names %q collide after lowercasing", key, group)
		}
		records[name] = Assemble(meta, group, totals.Totals[group], logics, ranked)
	}
	return records, nil
}

func limitsOf(meta Meta) scoring.Limits {
	return scoring.Limits{TimeLimitS: float64(meta.TimeLimitS)}
}

func sortedGroups(totals map[string]int) []string {
	groups := make([]string, 0, len(totals))
	for g := range totals {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}
