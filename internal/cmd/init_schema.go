package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"seedgen/internal/config"
	"seedgen/internal/store"
)

var resetMode string

var initSchemaCmd = &cobra.Command{
	Use:   "init-schema",
	Short: "Bootstrap MongoDB collections, validators and indexes",
	Long: `Creates the sales collections (customers, vendors, products, inventory,
orders) and the reports collection (report_runs), including their unique
and lookup indexes.

Bootstrap is idempotent. The --reset flag controls how destructive it is:
- none:       keep existing data (default)
- drop-all:   drop collections including schema and data
- clear-data: delete documents but keep collections and indexes`,
	RunE: initSchema,
}

func init() {
	rootCmd.AddCommand(initSchemaCmd)

	initSchemaCmd.Flags().StringVar(&resetMode, "reset", "none", "Destructive reset mode (none|drop-all|clear-data)")
}

func initSchema(cmd *cobra.Command, args []string) error {
	mode, err := store.ParseResetMode(resetMode)
	if err != nil {
		return err
	}

	fmt.Printf("🔧 Initializing schema (reset mode: %s)...\n", mode)

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

	fmt.Println("📋 Ensuring sales collections and indexes...")
	if err := st.EnsureSalesSchema(ctx, mode); err != nil {
		return fmt.Errorf("failed to bootstrap sales schema: %w", err)
	}

	fmt.Println("📋 Ensuring reports collection and indexes...")
	dropped, err := st.EnsureReportsSchema(ctx, mode)
	if err != nil {
		return fmt.Errorf("failed to bootstrap reports schema: %w", err)
	}
	if dropped {
		fmt.Println("   ♻️  Rebuilt report_runs indexes")
	} else {
		fmt.Println("   📭 No existing report_runs indexes to drop")
	}

	fmt.Println("✅ Schema bootstrap complete!")
	return nil
}
