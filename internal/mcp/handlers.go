package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/similarity"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/triage"
)

func (s *Server) registerHandlers() {
	s.handlers["find_similar_tickets"] = s.handleFindSimilarTickets
	s.handlers["list_tickets"] = s.handleListTickets
	s.handlers["get_ticket"] = s.handleGetTicket
	s.handlers["create_ticket"] = s.handleCreateTicket
	s.handlers["get_stats"] = s.handleGetStats
}

type findSimilarParams struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (s *Server) handleFindSimilarTickets(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p findSimilarParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	draft := similarity.Draft{
		Subject:     p.Subject,
		Description: p.Description,
		Category:    p.Category,
	}
	if err := triage.ValidateDraft(draft); err != nil {
		return nil, err
	}

	results, err := s.engine.FindSimilar(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	// Always return an array, even when nothing matched
	if results == nil {
		results = []similarity.SimilarTicket{}
	}
	return results, nil
}

type listTicketsParams struct {
	Status     string `json:"status"`
	Category   string `json:"category"`
	Search     string `json:"search"`
	Unassigned bool   `json:"unassigned"`
	Limit      int    `json:"limit"`
}

func (s *Server) handleListTickets(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p listTicketsParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	opts := database.ListOptions{Unassigned: p.Unassigned}

	if p.Status != "" && p.Status != "all" {
		status := database.TicketStatus(p.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown status: %s", p.Status)
		}
		opts.Status = &status
	}

	if p.Category != "" {
		category := database.TicketCategory(p.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category: %s", p.Category)
		}
		opts.Category = &category
	}

	if p.Search != "" {
		opts.Search = &p.Search
	}

	if p.Limit > 0 {
		opts.Limit = p.Limit
	} else {
		opts.Limit = 20
	}

	tickets, err := s.service.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return tickets, nil
}

type getTicketParams struct {
	ID string `json:"id"`
}

func (s *Server) handleGetTicket(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p getTicketParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	ticket, err := s.service.Get(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

type createTicketParams struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Severity    int    `json:"severity"`
	CreatedBy   string `json:"created_by"`
}

func (s *Server) handleCreateTicket(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p createTicketParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	ticket, err := s.service.Create(ctx, triage.CreateInput{
		Subject:     p.Subject,
		Description: p.Description,
		Category:    database.TicketCategory(p.Category),
		Severity:    p.Severity,
		CreatedBy:   p.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

func (s *Server) handleGetStats(ctx context.Context, params json.RawMessage) (interface{}, error) {
	stats, err := s.service.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return stats, nil
}
