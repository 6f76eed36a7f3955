package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "helpdesk")
	dataDir := filepath.Join(home, ".local", "share", "helpdesk")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'helpdesk config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run 'helpdesk seed' to load sample tickets (optional)")
	fmt.Println("  2. Run 'helpdesk similar -s <subject> -d <description>' to test duplicate detection")
	fmt.Println("  3. Run 'helpdesk mcp' to serve tickets to an AI assistant")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'helpdesk config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# Helpdesk Triage Configuration

[database]
path = "~/.local/share/helpdesk/helpdesk.db"

[similarity]
# How far back to look for similar tickets and how many candidates to
# score. Both bound the work done per lookup.
recency_days = 90
max_candidates = 500

# Field weights: the subject line carries more topical signal than the
# often-verbose description. Weights must sum to at most 1.0.
subject_weight = 0.65
description_weight = 0.35

# Minimum rounded relevance score for a match to be returned, and the
# maximum number of matches. The threshold is deliberately permissive;
# real-world data overlaps more and scores higher.
min_relevance_score = 0.05
top_results = 5

# Restrict suggestions to the draft's category. Off by default so
# cross-category infrastructure issues still surface.
require_category_match = false

[mcp]
enabled = true
transport = "stdio"
`
