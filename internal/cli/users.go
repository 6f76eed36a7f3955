package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/config"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/output"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List helpdesk users",
	Long: `List helpdesk users, optionally filtered by role.

Examples:
  helpdesk users
  helpdesk users --role agent`,
	RunE: runUsers,
}

var usersRole string

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.Flags().StringVar(&usersRole, "role", "", "Filter by role (employee, agent)")
}

func runUsers(cmd *cobra.Command, args []string) error {
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

	var role *database.Role
	if usersRole != "" {
		r := database.Role(usersRole)
		if !r.Valid() {
			return fmt.Errorf("unknown role: %s", usersRole)
		}
		role = &r
	}

	users, err := db.ListUsers(ctx, role)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	return output.Output(outputFmt, users)
}
