package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/codemap/core/config"
	"github.com/tristendillon/codemap/core/logger"
)

var (
	analyzeID     string
	analyzeMode   string
	analyzeStdout bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyze a project directory",
	Long:  `Scans the project at <path> and stores its analysis as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("analyze called")
		switch analyzeMode {
		case "", config.ModeFixed, config.ModeCoverage:
		default:
			return fmt.Errorf("unknown mode %q (want %q or %q)", analyzeMode, config.ModeFixed, config.ModeCoverage)
		}

		id, err := projectID(analyzeID, args[0])
		if err != nil {
			return err
		}
		svc, cfg, err := newService(analyzeMode)
		if err != nil {
			return err
		}

		result, err := svc.AnalyzeContext(cmd.Context(), id, args[0])
		if err != nil {
			return fmt.Errorf("failed to analyze project: %w", err)
		}

		if analyzeStdout {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal analysis: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s: %s, %d files, %d features, %d gaps\n",
			id, result.ProjectType, result.ProjectOverview.TotalFiles,
			len(result.ExistingFeatures), len(result.MissingFeatures))
		fmt.Fprintf(cmd.OutOrStdout(), "   saved under %s\n", cfg.Store.Dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeID, "id", "", "Project id (defaults to the directory name)")
	analyzeCmd.Flags().StringVar(&analyzeMode, "mode", "", "Detector mode: fixed or coverage (defaults to the config)")
	analyzeCmd.Flags().BoolVar(&analyzeStdout, "stdout", false, "Print the analysis JSON instead of a summary")
}
