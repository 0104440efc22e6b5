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
	daysBack       int
	weekdayOrders  int
	weekendOrders  int
	extraCustomers int
	salesSeed      int64
)

var seedSalesCmd = &cobra.Command{
	Use:   "seed-sales",
	Short: "Generate the historical commerce workload",
	Long: `Ensures the baseline customer/vendor/product catalogs exist, expands the
customer population, then generates a historical window of orders day by
day: orders deplete inventory, the ledger restocks below reorder level,
and product prices drift occasionally.

Each simulated day is fully computed in memory, written as one batch, and
the inventory ledger is flushed before the next day begins.`,
	RunE: seedSales,
}

func init() {
	rootCmd.AddCommand(seedSalesCmd)

	seedSalesCmd.Flags().IntVar(&daysBack, "days", 0, "Historical window length in days (default from config)")
	seedSalesCmd.Flags().IntVar(&weekdayOrders, "weekday-orders", 0, "Baseline weekday order count (default from config)")
	seedSalesCmd.Flags().IntVar(&weekendOrders, "weekend-orders", 0, "Baseline weekend order count (default from config)")
	seedSalesCmd.Flags().IntVar(&extraCustomers, "extra-customers", -1, "Synthetic customers on top of the baseline (default from config)")
	seedSalesCmd.Flags().Int64Var(&salesSeed, "seed", 0, "Random seed for reproducible runs (0 = clock)")
}

func seedSales(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cmd.Flags().Changed("days") {
		daysBack = cfg.Sales.DaysBack
	}
	if !cmd.Flags().Changed("weekday-orders") {
		weekdayOrders = cfg.Sales.WeekdayBaseOrders
	}
	if !cmd.Flags().Changed("weekend-orders") {
		weekendOrders = cfg.Sales.WeekendBaseOrders
	}
	if !cmd.Flags().Changed("extra-customers") {
		extraCustomers = cfg.Sales.ExtraCustomers
	}
	if !cmd.Flags().Changed("seed") {
		salesSeed = cfg.Sales.RandomSeed
	}

	fmt.Printf("🌱 Seeding %d days of sales history (weekday base %d, weekend base %d)...\n",
		daysBack, weekdayOrders, weekendOrders)

	ctx := context.Background()
	st, err := store.Connect(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer st.Close(ctx)

	rng := gen.NewRand(salesSeed)

	fmt.Println("👥 Ensuring baseline catalogs...")
	catalog := gen.NewReferenceCatalog(st, rng)
	persisted, err := catalog.Ensure(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure catalogs: %w", err)
	}
	fmt.Printf("   ✅ Upserted %d baseline records\n", persisted)

	if extraCustomers > 0 {
		fmt.Printf("👥 Adding %d synthetic customers...\n", extraCustomers)
		if err := catalog.ExpandCustomers(ctx, extraCustomers); err != nil {
			return fmt.Errorf("failed to expand customers: %w", err)
		}
	}

	ledger := gen.NewInventoryLedger(st, catalog.Inventory)
	drift := gen.NewPriceDriftEngine(st)
	generator := gen.NewOrderGenerator(st, rng, catalog, ledger, drift, gen.OrderGeneratorConfig{
		DaysBack:          daysBack,
		WeekdayBaseOrders: weekdayOrders,
		WeekendBaseOrders: weekendOrders,
	})

	fmt.Println("🛒 Generating orders...")
	summary, err := generator.Run(ctx)
	if err != nil {
		return fmt.Errorf("order generation failed: %w", err)
	}

	fmt.Printf("✅ Done: %d orders over %d days (%d restocks, %d inventory touches, %d price drifts)\n",
		summary.Orders, summary.Days, summary.Restocks, summary.Touches, summary.PriceDrifts)
	return nil
}
