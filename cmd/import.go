package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/podium-cli/internal/model"
	"github.com/sells-group/podium-cli/internal/store"
)

var (
	importResultsPath   string
	importSelectionPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import results and selection CSVs into the local store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		results, err := model.ReadResultsCSV(importResultsPath)
		if err != nil {
			return err
		}
		selection, err := model.ReadSelectionCSV(importSelectionPath)
		if err != nil {
			return err
		}

		s, err := store.NewSQLite(cfg.Paths.Database)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Migrate(ctx); err != nil {
			return err
		}

		id, err := s.ReplaceTables(ctx, results, selection)
		if err != nil {
			return err
		}

		zap.L().Info("import complete",
			zap.String("import_id", id),
			zap.Int("results", len(results)),
			zap.Int("selection", len(selection)),
			zap.String("database", cfg.Paths.Database),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importResultsPath, "results", "", "path to results CSV (required)")
	importCmd.Flags().StringVar(&importSelectionPath, "selection", "", "path to selection CSV (required)")
	_ = importCmd.MarkFlagRequired("results")
	_ = importCmd.MarkFlagRequired("selection")
	rootCmd.AddCommand(importCmd)
}
