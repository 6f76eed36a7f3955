package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Similarity.RecencyDays != 90 {
		t.Errorf("expected RecencyDays=90, got %d", cfg.Similarity.RecencyDays)
	}
	if cfg.Similarity.MaxCandidates != 500 {
		t.Errorf("expected MaxCandidates=500, got %d", cfg.Similarity.MaxCandidates)
	}
	if cfg.Similarity.SubjectWeight != 0.65 {
		t.Errorf("expected SubjectWeight=0.65, got %v", cfg.Similarity.SubjectWeight)
	}
	if cfg.Similarity.DescriptionWeight != 0.35 {
		t.Errorf("expected DescriptionWeight=0.35, got %v", cfg.Similarity.DescriptionWeight)
	}
	if cfg.Similarity.MinRelevanceScore != 0.05 {
		t.Errorf("expected MinRelevanceScore=0.05, got %v", cfg.Similarity.MinRelevanceScore)
	}
	if cfg.Similarity.TopResults != 5 {
		t.Errorf("expected TopResults=5, got %d", cfg.Similarity.TopResults)
	}
	if cfg.Similarity.RequireCategoryMatch {
		t.Error("expected RequireCategoryMatch off by default")
	}
	if !cfg.MCP.Enabled || cfg.MCP.Transport != "stdio" {
		t.Errorf("unexpected MCP defaults: %+v", cfg.MCP)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "missing database path",
			modify: func(c *Config) {
				c.Database.Path = ""
			},
			wantErr: true,
		},
		{
			name: "non-positive recency",
			modify: func(c *Config) {
				c.Similarity.RecencyDays = 0
			},
			wantErr: true,
		},
		{
			name: "non-positive candidate cap",
			modify: func(c *Config) {
				c.Similarity.MaxCandidates = -1
			},
			wantErr: true,
		},
		{
			name: "subject weight above one",
			modify: func(c *Config) {
				c.Similarity.SubjectWeight = 1.5
			},
			wantErr: true,
		},
		{
			name: "weights sum above one",
			modify: func(c *Config) {
				c.Similarity.SubjectWeight = 0.8
				c.Similarity.DescriptionWeight = 0.8
			},
			wantErr: true,
		},
		{
			name: "negative threshold",
			modify: func(c *Config) {
				c.Similarity.MinRelevanceScore = -0.1
			},
			wantErr: true,
		},
		{
			name: "non-positive top results",
			modify: func(c *Config) {
				c.Similarity.TopResults = 0
			},
			wantErr: true,
		},
		{
			name: "unsupported mcp transport",
			modify: func(c *Config) {
				c.MCP.Transport = "http"
			},
			wantErr: true,
		},
		{
			name: "transport ignored when mcp disabled",
			modify: func(c *Config) {
				c.MCP.Enabled = false
				c.MCP.Transport = "http"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")

	content := `
[database]
path = "/tmp/helpdesk-test.db"

[similarity]
recency_days = 30
top_results = 3

[mcp]
enabled = false
`
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Explicit values win
	if cfg.Database.Path != "/tmp/helpdesk-test.db" {
		t.Errorf("unexpected database path: %s", cfg.Database.Path)
	}
	if cfg.Similarity.RecencyDays != 30 {
		t.Errorf("expected RecencyDays=30, got %d", cfg.Similarity.RecencyDays)
	}
	if cfg.Similarity.TopResults != 3 {
		t.Errorf("expected TopResults=3, got %d", cfg.Similarity.TopResults)
	}
	if cfg.MCP.Enabled {
		t.Error("expected MCP disabled")
	}

	// Omitted values keep their defaults
	if cfg.Similarity.SubjectWeight != 0.65 {
		t.Errorf("expected default SubjectWeight, got %v", cfg.Similarity.SubjectWeight)
	}
	if cfg.Similarity.MaxCandidates != 500 {
		t.Errorf("expected default MaxCandidates, got %d", cfg.Similarity.MaxCandidates)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")

	content := `
[similarity]
recency_days = -5
`
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(configFile); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := expandPath("~/.config/helpdesk/config.toml")
	if err != nil {
		t.Fatalf("expandPath failed: %v", err)
	}
	want := filepath.Join(home, ".config", "helpdesk", "config.toml")
	if got != want {
		t.Errorf("expandPath = %s, want %s", got, want)
	}

	got, err = expandPath("/absolute/path.toml")
	if err != nil {
		t.Fatalf("expandPath failed: %v", err)
	}
	if got != "/absolute/path.toml" {
		t.Errorf("absolute path should pass through, got %s", got)
	}
}
