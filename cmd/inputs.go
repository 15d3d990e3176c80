package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/podium-cli/internal/comp"
	"github.com/sells-group/podium-cli/internal/model"
	"github.com/sells-group/podium-cli/internal/podium"
	"github.com/sells-group/podium-cli/internal/store"
)

// loadInputs reads the results and selection tables, preferring explicit CSV
// paths over the local store.
func loadInputs(ctx context.Context, resultsCSV, selectionCSV string) ([]model.Result, []model.Selection, error) {
	if resultsCSV != "" || selectionCSV != "" {
		if resultsCSV == "" || selectionCSV == "" {
			return nil, nil, eris.New("both --results and --selection are required when reading from CSV")
		}

		results, err := model.ReadResultsCSV(resultsCSV)
		if err != nil {
			return nil, nil, err
		}
		selection, err := model.ReadSelectionCSV(selectionCSV)
		if err != nil {
			return nil, nil, err
		}
		zap.L().Info("loaded input tables from csv",
			zap.Int("results", len(results)),
			zap.Int("selection", len(selection)),
		)
		return results, selection, nil
	}

	s, err := store.NewSQLite(cfg.Paths.Database)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return nil, nil, err
	}

	results, err := s.LoadResults(ctx)
	if err != nil {
		return nil, nil, err
	}
	selection, err := s.LoadSelection(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(selection) == 0 {
		return nil, nil, eris.New("store is empty; run `podium import` or pass --results/--selection")
	}

	zap.L().Info("loaded input tables from store",
		zap.String("database", cfg.Paths.Database),
		zap.Int("results", len(results)),
		zap.Int("selection", len(selection)),
	)
	return results, selection, nil
}

// exportMeta builds the record metadata from configuration.
func exportMeta() podium.Meta {
	return podium.Meta{
		Year:       cfg.Competition.Year,
		ResultDate: cfg.Competition.ResultDate,
		TimeLimitS: cfg.Competition.TimeLimitS,
		MemLimitM:  cfg.Competition.MemLimitM,
		Track:      comp.TrackSingleQuery,
	}
}
