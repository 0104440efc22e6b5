package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "Seedgen - Synthetic CDC Workload Generator",
	Long: `Seedgen populates MongoDB with internally-consistent synthetic data
for exercising change-capture and analytics pipelines.

It generates two independent workloads: a commerce history (customers,
vendors, products, inventory and orders over a simulated window) and
report-execution telemetry with tier-dependent latency and failures.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
