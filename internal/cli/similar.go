package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/config"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/output"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/similarity"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/triage"
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Find tickets similar to a draft",
	Long: `Find existing tickets textually similar to a ticket you are about
to file. Only recent active tickets are considered, and at most 5
matches are returned, ranked by relevance score.

Examples:
  helpdesk similar --subject "VPN Connection Issues" \
      --description "Users report cannot connect to corporate VPN"
  helpdesk similar -s "Printer offline" -d "3rd floor printer shows offline in settings" --category hardware
  helpdesk similar -s "..." -d "..." -o json`,
	RunE: runSimilar,
}

var (
	similarSubject     string
	similarDescription string
	similarCategory    string
)

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().StringVarP(&similarSubject, "subject", "s", "", "Draft ticket subject")
	similarCmd.Flags().StringVarP(&similarDescription, "description", "d", "", "Draft ticket description")
	similarCmd.Flags().StringVar(&similarCategory, "category", "", "Draft ticket category (access, hardware, network, bug, other)")
	similarCmd.MarkFlagRequired("subject")
	similarCmd.MarkFlagRequired("description")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	draft := similarity.Draft{
		Subject:     similarSubject,
		Description: similarDescription,
		Category:    similarCategory,
	}
	if err := triage.ValidateDraft(draft); err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	engine := similarity.NewEngine(db, cfg.Similarity.EngineConfig())
	results, err := engine.FindSimilar(ctx, draft)
	if err != nil {
		return fmt.Errorf("similarity search failed: %w", err)
	}

	if results == nil {
		results = []similarity.SimilarTicket{}
	}
	return output.Output(outputFmt, results)
}
