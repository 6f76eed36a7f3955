package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/config"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/output"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/triage"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show ticket details",
	Long: `Show full details of a specific ticket.

Examples:
  helpdesk show 6c0f9f2e-13d4-4d90-a1a4-53a4f2c0e9b1
  helpdesk show 6c0f9f2e-13d4-4d90-a1a4-53a4f2c0e9b1 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	service := triage.NewService(db)
	ticket, err := service.Get(ctx, args[0])
	if err != nil {
		return err
	}

	return output.Output(outputFmt, ticket)
}
