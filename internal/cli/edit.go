package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/config"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/output"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/triage"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a ticket's fields",
	Long: `Edit the subject, description, category, or severity of an
existing ticket. Only the flags you pass are changed.

Examples:
  helpdesk edit 6c0f9f2e --severity 5
  helpdesk edit 6c0f9f2e -s "VPN drops every few minutes" --category network`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editSubject     string
	editDescription string
	editCategory    string
	editSeverity    int
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editSubject, "subject", "s", "", "New subject")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category (access, hardware, network, bug, other)")
	editCmd.Flags().IntVar(&editSeverity, "severity", 0, "New severity from 1 (low) to 5 (critical)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var in triage.UpdateInput
	if cmd.Flags().Changed("subject") {
		in.Subject = &editSubject
	}
	if cmd.Flags().Changed("description") {
		in.Description = &editDescription
	}
	if cmd.Flags().Changed("category") {
		category := database.TicketCategory(editCategory)
		in.Category = &category
	}
	if cmd.Flags().Changed("severity") {
		in.Severity = &editSeverity
	}

	if in.Subject == nil && in.Description == nil && in.Category == nil && in.Severity == nil {
		return fmt.Errorf("nothing to change; pass at least one of --subject, --description, --category, --severity")
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
	ticket, err := service.Update(ctx, args[0], in)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, ticket)
}
