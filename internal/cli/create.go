package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/config"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/output"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/triage"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "File a new ticket",
	Long: `File a new helpdesk ticket. The ticket opens with status 'open'
and no assignee.

Examples:
  helpdesk create -s "VPN keeps dropping" \
      -d "Disconnects every few minutes when working from home" \
      --category network --severity 4 --by michael.brown@company.test`,
	RunE: runCreate,
}

var (
	createSubject     string
	createDescription string
	createCategory    string
	createSeverity    int
	createBy          string
)

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createSubject, "subject", "s", "", "Ticket subject")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Ticket description")
	createCmd.Flags().StringVar(&createCategory, "category", "", "Ticket category (access, hardware, network, bug, other)")
	createCmd.Flags().IntVar(&createSeverity, "severity", 3, "Severity from 1 (low) to 5 (critical)")
	createCmd.Flags().StringVar(&createBy, "by", "", "Email of the reporting user")
	createCmd.MarkFlagRequired("subject")
	createCmd.MarkFlagRequired("description")
	createCmd.MarkFlagRequired("category")
	createCmd.MarkFlagRequired("by")
}

func runCreate(cmd *cobra.Command, args []string) error {
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
	ticket, err := service.Create(ctx, triage.CreateInput{
		Subject:     createSubject,
		Description: createDescription,
		Category:    database.TicketCategory(createCategory),
		Severity:    createSeverity,
		CreatedBy:   createBy,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created ticket %s\n\n", ticket.ID)
	return output.Output(outputFmt, ticket)
}
