package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
)

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "helpdesk://stats",
		Name:        "Helpdesk Summary",
		Description: "Ticket counts by status and unassigned backlog",
		MimeType:    "text/plain",
	},
	{
		URI:         "helpdesk://backlog",
		Name:        "Unassigned Backlog",
		Description: "Open tickets with no assignee, most recent first",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "helpdesk://stats":
		return s.statsResource(ctx)
	case "helpdesk://backlog":
		return s.backlogResource(ctx)
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) statsResource(ctx context.Context) (string, error) {
	stats, err := s.service.Statistics(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Helpdesk summary\n")
	fmt.Fprintf(&b, "Total tickets: %d\n", stats.Total)
	fmt.Fprintf(&b, "Open: %d, In progress: %d, Resolved: %d, Closed: %d\n",
		stats.Open, stats.InProgress, stats.Resolved, stats.Closed)
	fmt.Fprintf(&b, "Unassigned: %d\n", stats.Unassigned)
	return b.String(), nil
}

func (s *Server) backlogResource(ctx context.Context) (string, error) {
	open := database.StatusOpen
	tickets, err := s.service.List(ctx, database.ListOptions{
		Status:     &open,
		Unassigned: true,
		Limit:      20,
	})
	if err != nil {
		return "", err
	}

	if len(tickets) == 0 {
		return "No unassigned open tickets.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Unassigned open tickets (%d):\n", len(tickets))
	for _, t := range tickets {
		fmt.Fprintf(&b, "- [sev %d] %s (%s, %d days old)\n",
			t.Severity, t.Subject, t.Category, t.AgeDays())
	}
	return b.String(), nil
}
