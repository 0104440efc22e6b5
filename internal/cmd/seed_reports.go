package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"seedgen/internal/config"
	"seedgen/internal/gen"
	"seedgen/internal/store"
)

var (
	reportHours int
	runsPerHour int
	reportsSeed int64
)

var seedReportsCmd = &cobra.Command{
	Use:   "seed-reports",
	Short: "Generate report-execution telemetry",
	Long: `Generates report_runs records over the last N hours with realistic
latency and failure distributions: enterprise subscribers are fastest,
free tier is slowest and widest, ~5% of runs are tail-latency outliers
and ~10% fail with a closed set of error codes.

Runs are independent of the commerce workload and of each other.`,
	RunE: seedReports,
}

func init() {
	rootCmd.AddCommand(seedReportsCmd)

	seedReportsCmd.Flags().IntVar(&reportHours, "hours", 0, "Telemetry window length in hours (default from config)")
	seedReportsCmd.Flags().IntVar(&runsPerHour, "runs-per-hour", 0, "Target run rate per hour (default from config)")
	seedReportsCmd.Flags().Int64Var(&reportsSeed, "seed", 0, "Random seed for reproducible runs (0 = clock)")
}

func seedReports(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cmd.Flags().Changed("hours") {
		reportHours = cfg.Reports.Hours
	}
	if !cmd.Flags().Changed("runs-per-hour") {
		runsPerHour = cfg.Reports.RunsPerHour
	}
	if !cmd.Flags().Changed("seed") {
		reportsSeed = cfg.Reports.RandomSeed
	}

	fmt.Printf("📊 Seeding ~%d report runs over the last %d hour(s)...\n",
		reportHours*runsPerHour, reportHours)

	ctx := context.Background()
	st, err := store.Connect(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer st.Close(ctx)

	generator := gen.NewTelemetryTrafficGenerator(st, gen.NewRand(reportsSeed), gen.TelemetryConfig{
		Hours:       reportHours,
		RunsPerHour: runsPerHour,
	})

	inserted, err := generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("report traffic generation failed: %w", err)
	}

	fmt.Printf("✅ Inserted %d report runs\n", inserted)
	return nil
}
