package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"seedgen/internal/config"
	"seedgen/internal/store"
)

var checkDataCmd = &cobra.Command{
	Use:   "check-data",
	Short: "Check seeded document volumes",
	Long: `Counts the documents in every seeded collection. Useful to verify that
a seeding run produced the expected volumes before pointing a
change-capture pipeline at the databases.`,
	RunE: checkData,
}

func init() {
	rootCmd.AddCommand(checkDataCmd)
}

func checkData(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Checking seeded collections...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	st, err := store.Connect(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer st.Close(ctx)

	counts, err := st.Counts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println(strings.Repeat("─", 40))
	var total int64
	for _, name := range names {
		fmt.Printf("   📦 %-14s %8d\n", name, counts[name])
		total += counts[name]
	}
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("   Σ  total          %8d\n", total)

	if total == 0 {
		fmt.Println("📭 No documents found")
		fmt.Println("💡 Try running: seedgen seed-sales && seedgen seed-reports")
	}
	return nil
}
