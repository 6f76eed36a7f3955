package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/config"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample data",
	Long: `Populate an empty database with sample users and tickets for
demos and local development. Fails if the database already contains
tickets.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Seed(ctx); err != nil {
		return err
	}

	stats, err := db.TicketStats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d tickets.\n", stats.Total)
	fmt.Println("Try: helpdesk similar -s \"VPN keeps disconnecting\" -d \"Connection drops every few minutes while working remotely\"")
	return nil
}
