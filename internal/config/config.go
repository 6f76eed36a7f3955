package config

import (
	"fmt"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/similarity"
)

// Config represents the application configuration
type Config struct {
	Database   DatabaseConfig   `toml:"database"`
	Similarity SimilarityConfig `toml:"similarity"`
	MCP        MCPConfig        `toml:"mcp"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SimilarityConfig tunes the similar-ticket pipeline. The defaults are
// the engine's production constants; most installs never change them.
type SimilarityConfig struct {
	RecencyDays          int     `toml:"recency_days"`
	MaxCandidates        int     `toml:"max_candidates"`
	SubjectWeight        float64 `toml:"subject_weight"`
	DescriptionWeight    float64 `toml:"description_weight"`
	MinRelevanceScore    float64 `toml:"min_relevance_score"`
	TopResults           int     `toml:"top_results"`
	RequireCategoryMatch bool    `toml:"require_category_match"`
}

// EngineConfig converts the section into the similarity engine's config
func (s SimilarityConfig) EngineConfig() similarity.Config {
	return similarity.Config{
		RecencyDays:          s.RecencyDays,
		MaxCandidates:        s.MaxCandidates,
		SubjectWeight:        s.SubjectWeight,
		DescriptionWeight:    s.DescriptionWeight,
		MinRelevanceScore:    s.MinRelevanceScore,
		TopResults:           s.TopResults,
		RequireCategoryMatch: s.RequireCategoryMatch,
	}
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/helpdesk/helpdesk.db",
		},
		Similarity: SimilarityConfig{
			RecencyDays:          similarity.DefaultRecencyDays,
			MaxCandidates:        similarity.DefaultMaxCandidates,
			SubjectWeight:        similarity.DefaultSubjectWeight,
			DescriptionWeight:    similarity.DefaultDescriptionWeight,
			MinRelevanceScore:    similarity.DefaultMinRelevanceScore,
			TopResults:           similarity.DefaultTopResults,
			RequireCategoryMatch: false,
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	s := c.Similarity
	if s.RecencyDays <= 0 {
		return fmt.Errorf("similarity.recency_days must be positive")
	}
	if s.MaxCandidates <= 0 {
		return fmt.Errorf("similarity.max_candidates must be positive")
	}
	if s.SubjectWeight < 0 || s.SubjectWeight > 1 {
		return fmt.Errorf("similarity.subject_weight must be in [0, 1]")
	}
	if s.DescriptionWeight < 0 || s.DescriptionWeight > 1 {
		return fmt.Errorf("similarity.description_weight must be in [0, 1]")
	}
	if s.SubjectWeight+s.DescriptionWeight > 1 {
		return fmt.Errorf("similarity weights must sum to at most 1")
	}
	if s.MinRelevanceScore < 0 || s.MinRelevanceScore > 1 {
		return fmt.Errorf("similarity.min_relevance_score must be in [0, 1]")
	}
	if s.TopResults <= 0 {
		return fmt.Errorf("similarity.top_results must be positive")
	}

	if c.MCP.Enabled && c.MCP.Transport != "stdio" {
		return fmt.Errorf("mcp.transport must be \"stdio\"")
	}

	return nil
}
