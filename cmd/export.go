package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/podium-cli/internal/podium"
)

var (
	exportResultsPath   string
	exportSelectionPath string
	exportOutDir        string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write per-division and per-logic podium records",
	Long: `Runs the full ranking pipeline and writes one JSON document per group
value under the output directory, named <group>-single-query.md.

Inputs come from the local store by default; pass --results and --selection
to read CSV tables directly.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		results, selection, err := loadInputs(ctx, exportResultsPath, exportSelectionPath)
		if err != nil {
			return err
		}

		outDir := exportOutDir
		if outDir == "" {
			outDir = cfg.Paths.WebResults
		}
		w, err := podium.NewFileWriter(outDir)
		if err != nil {
			return err
		}

		if err := podium.Export(exportMeta(), results, selection, w); err != nil {
			return err
		}

		zap.L().Info("export complete", zap.String("out", outDir))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportResultsPath, "results", "", "path to results CSV (default: local store)")
	exportCmd.Flags().StringVar(&exportSelectionPath, "selection", "", "path to selection CSV (default: local store)")
	exportCmd.Flags().StringVar(&exportOutDir, "out", "", "output directory (default: paths.web_results)")
	rootCmd.AddCommand(exportCmd)
}
