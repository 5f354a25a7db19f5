package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
	"painreliefmap/internal/analysis"
	"painreliefmap/internal/insights"
	"painreliefmap/internal/testkit"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "painreliefmap-cli",
		Short: "Pain Relief Map CLI for offline therapy effect analysis",
	}

	rootCmd.AddCommand(
		newDemoCmd(),
		newAnalyzeCmd(),
		newCorrelationsCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDemoCmd() *cobra.Command {
	var seed int64
	var days, startDay int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a demo log history and analyze the demo therapy",
		Long: `Generate a synthetic tracking history with a therapy started partway
through, then run the full effect analysis against it.

Example: painreliefmap-cli demo --days 30 --start-day 7 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := testkit.DefaultGeneratorConfig()
			cfg.Days = days
			cfg.TherapyStartDay = startDay
			cfg.Seed = seed

			snapshot := testkit.GenerateDemoSeries(cfg)

			opts := effect.DefaultOptions()
			opts.Seed = seed
			analyzer := analysis.NewAnalyzer(opts)

			result, err := analyzer.AnalyzeTherapy(snapshot, series.MetricPain, testkit.DemoTherapy)
			if err != nil {
				return err
			}

			return printJSON(map[string]interface{}{
				"log_count":    snapshot.Len(),
				"effect":       result,
				"correlations": analyzer.Correlations(snapshot, nil),
				"insights":     insights.Generate(snapshot),
			})
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for generation and bootstrap resampling")
	cmd.Flags().IntVar(&days, "days", 30, "Days of history to generate")
	cmd.Flags().IntVar(&startDay, "start-day", 7, "Day offset on which the demo therapy starts")

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var metricName string
	var seed int64
	var iterations int

	cmd := &cobra.Command{
		Use:   "analyze [csv-file] [therapy]",
		Short: "Analyze the effect of a therapy from a CSV log export",
		Long: `Run the before/after effect analysis for one therapy against a CSV log
file. The file needs a header row with date, the metric columns, and
therapy_started.

Example: painreliefmap-cli analyze logs.csv "Yoga" --metric pain_score --seed 42`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadCSVSeries(args[0])
			if err != nil {
				return err
			}

			metric, err := series.ParseMetric(metricName)
			if err != nil {
				return fmt.Errorf("unknown metric %q", metricName)
			}

			opts := effect.DefaultOptions()
			opts.Seed = seed
			if iterations > 0 {
				opts.BootstrapIterations = iterations
			}

			result, err := analysis.NewAnalyzer(opts).AnalyzeTherapy(snapshot, metric, series.TherapyName(args[1]))
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&metricName, "metric", string(series.MetricPain), "Target metric column")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Bootstrap seed (0 uses the clock)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Bootstrap iterations (0 uses the default)")

	return cmd
}

func newCorrelationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correlations [csv-file]",
		Short: "Compute pairwise metric correlations from a CSV log export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadCSVSeries(args[0])
			if err != nil {
				return err
			}

			analyzer := analysis.NewAnalyzer(effect.DefaultOptions())
			return printJSON(analyzer.Correlations(snapshot, nil))
		},
	}
	return cmd
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
