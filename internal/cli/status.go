package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/config"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/output"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/triage"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change a ticket's status",
	Long: `Move a ticket to a new status. Valid statuses are open,
in_progress, resolved, and closed.

Examples:
  helpdesk status 6c0f9f2e resolved
  helpdesk status 6c0f9f2e closed`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
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
	ticket, err := service.UpdateStatus(ctx, args[0], database.TicketStatus(args[1]))
	if err != nil {
		return err
	}

	return output.Output(outputFmt, ticket)
}
