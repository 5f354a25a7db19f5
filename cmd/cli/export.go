package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"painreliefmap/adapters/export"
	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
	"painreliefmap/internal/analysis"
	"painreliefmap/models"
)

func newExportCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "export [csv-file] [output.xlsx]",
		Short: "Convert a CSV log export into an xlsx workbook with effect results",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadCSVSeries(args[0])
			if err != nil {
				return err
			}

			opts := effect.DefaultOptions()
			opts.Seed = seed
			analyzer := analysis.NewAnalyzer(opts)

			var results []effect.Result
			for _, therapy := range snapshot.TherapiesStarted() {
				result, err := analyzer.AnalyzeTherapy(snapshot, series.MetricPain, therapy)
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			uid := uuid.Nil
			entries := make([]models.LogEntry, 0, snapshot.Len())
			for _, rec := range snapshot.Sorted() {
				entries = append(entries, models.FromRecord(uid, rec))
			}

			out, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[1], err)
			}
			defer out.Close()

			if err := export.WriteWorkbook(out, entries, results); err != nil {
				return err
			}
			fmt.Printf("Wrote %d log rows and %d therapy results to %s\n", len(entries), len(results), args[1])
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Bootstrap seed (0 uses the clock)")

	return cmd
}
