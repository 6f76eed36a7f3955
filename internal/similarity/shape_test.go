package similarity

import (
	"strings"
	"testing"
	"time"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
)

func TestSnippet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "short description unchanged",
			in:   "Cannot connect to the VPN",
			want: "Cannot connect to the VPN",
		},
		{
			name: "exactly 150 characters unchanged",
			in:   strings.Repeat("a", 150),
			want: strings.Repeat("a", 150),
		},
		{
			name: "151 characters truncated with marker",
			in:   strings.Repeat("a", 151),
			want: strings.Repeat("a", 150) + "...",
		},
		{
			name: "empty description",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snippet(tt.in)
			if got != tt.want {
				t.Errorf("snippet length %d, want length %d", len(got), len(tt.want))
			}
			if len([]rune(got)) > 153 {
				t.Errorf("snippet exceeds 153 runes: %d", len([]rune(got)))
			}
		})
	}
}

func TestSnippetMultibyte(t *testing.T) {
	// Truncation counts runes, not bytes
	in := strings.Repeat("é", 200)
	got := snippet(in)
	if len([]rune(got)) != 153 {
		t.Errorf("expected 153 runes, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("expected ellipsis suffix")
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.12345, 0.12},
		{0.125, 0.13},
		{0.045, 0.05},
		{0.0449, 0.04},
		{1.0, 1.0},
		{0.0, 0.0},
	}

	for _, tt := range tests {
		if got := roundScore(tt.in); got != tt.want {
			t.Errorf("roundScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShapeResult(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ticket := database.Ticket{
		ID:          "abc-123",
		Subject:     "VPN keeps dropping",
		Description: strings.Repeat("x", 200),
		Category:    database.CategoryNetwork,
		Severity:    4,
		Status:      database.StatusOpen,
		CreatedBy:   "user-1",
		CreatedAt:   created,
	}

	got := shapeResult(ticket, 0.6789)

	if got.ID != "abc-123" || got.Subject != "VPN keeps dropping" {
		t.Errorf("identity fields not carried over: %+v", got)
	}
	if got.Category != "network" || got.Status != "open" {
		t.Errorf("category/status not carried over: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at not carried over: %v", got.CreatedAt)
	}
	if got.RelevanceScore != 0.68 {
		t.Errorf("expected rounded score 0.68, got %v", got.RelevanceScore)
	}
	if len(got.DescriptionSnippet) != 153 {
		t.Errorf("expected truncated snippet, got length %d", len(got.DescriptionSnippet))
	}
}
