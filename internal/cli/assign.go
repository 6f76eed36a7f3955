package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/config"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/output"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/triage"
)

var assignCmd = &cobra.Command{
	Use:   "assign <id>",
	Short: "Assign a ticket to an agent",
	Long: `Assign a ticket to an agent. Assigning moves the ticket to
in_progress; --unassign clears the assignee and reopens it.

Examples:
  helpdesk assign 6c0f9f2e --to sarah.martinez@company.test
  helpdesk assign 6c0f9f2e --unassign`,
	Args: cobra.ExactArgs(1),
	RunE: runAssign,
}

var (
	assignTo       string
	assignUnassign bool
)

func init() {
	rootCmd.AddCommand(assignCmd)

	assignCmd.Flags().StringVar(&assignTo, "to", "", "Email of the agent to assign")
	assignCmd.Flags().BoolVar(&assignUnassign, "unassign", false, "Clear the assignee and reopen the ticket")
}

func runAssign(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if assignTo == "" && !assignUnassign {
		return fmt.Errorf("either --to or --unassign is required")
	}
	if assignTo != "" && assignUnassign {
		return fmt.Errorf("--to and --unassign are mutually exclusive")
	}

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
	ticket, err := service.Assign(ctx, args[0], assignTo)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, ticket)
}
