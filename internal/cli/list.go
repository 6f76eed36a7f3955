package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/config"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/output"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/triage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets",
	Long: `List helpdesk tickets with optional filters, most recent first.

Examples:
  helpdesk list                        # List all tickets
  helpdesk list --status=open          # Only open tickets
  helpdesk list --category=network     # Only network tickets
  helpdesk list --unassigned           # Tickets with no assignee
  helpdesk list --search vpn           # Text search over subject/description
  helpdesk list --as michael.brown@company.test   # What that user can see
  helpdesk list -o json`,
	RunE: runList,
}

var (
	listStatus     string
	listCategory   string
	listSeverity   int
	listSearch     string
	listUnassigned bool
	listLimit      int
	listAs         string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (open, in_progress, resolved, closed)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (access, hardware, network, bug, other)")
	listCmd.Flags().IntVar(&listSeverity, "severity", 0, "Filter by severity (1-5)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Text search over subject and description")
	listCmd.Flags().BoolVar(&listUnassigned, "unassigned", false, "Only show tickets with no assignee")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of results")
	listCmd.Flags().StringVar(&listAs, "as", "", "Scope results to what this user can see (agents see all, employees their own)")
}

func runList(cmd *cobra.Command, args []string) error {
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

	opts := database.ListOptions{
		Unassigned: listUnassigned,
		Limit:      listLimit,
	}

	if listStatus != "" {
		status := database.TicketStatus(listStatus)
		if !status.Valid() {
			return fmt.Errorf("unknown status: %s", listStatus)
		}
		opts.Status = &status
	}

	if listCategory != "" {
		category := database.TicketCategory(listCategory)
		if !category.Valid() {
			return fmt.Errorf("unknown category: %s", listCategory)
		}
		opts.Category = &category
	}

	if listSeverity > 0 {
		opts.Severity = &listSeverity
	}

	if listSearch != "" {
		opts.Search = &listSearch
	}

	var tickets []database.Ticket
	if listAs != "" {
		tickets, err = triage.NewService(db).ListFor(ctx, listAs, opts)
	} else {
		tickets, err = db.ListTickets(ctx, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to list tickets: %w", err)
	}

	return output.Output(outputFmt, tickets)
}
