package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/podium-cli/internal/export"
	"github.com/sells-group/podium-cli/internal/podium"
)

var (
	summaryResultsPath   string
	summarySelectionPath string
	summaryOutPath       string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Write an xlsx overview of winners per group",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		results, selection, err := loadInputs(ctx, summaryResultsPath, summarySelectionPath)
		if err != nil {
			return err
		}

		records, err := podium.Records(exportMeta(), results, selection)
		if err != nil {
			return err
		}

		if err := export.WriteSummary(summaryOutPath, records); err != nil {
			return err
		}

		zap.L().Info("summary complete", zap.String("out", summaryOutPath))
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryResultsPath, "results", "", "path to results CSV (default: local store)")
	summaryCmd.Flags().StringVar(&summarySelectionPath, "selection", "", "path to selection CSV (default: local store)")
	summaryCmd.Flags().StringVar(&summaryOutPath, "out", "summary.xlsx", "output workbook path")
	rootCmd.AddCommand(summaryCmd)
}
