package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"seedgen/internal/config"
	"seedgen/internal/server"
	"seedgen/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the seedgen status server",
	Long: `Start a small HTTP server exposing:
- GET /api/health  store connectivity check
- GET /api/stats   per-collection document counts`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Seedgen status server starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	fmt.Println("🔌 Connecting to store...")
	st, err := store.Connect(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer st.Close(ctx)

	fmt.Println("✅ Store connected successfully")

	srv := server.NewServer(st)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
