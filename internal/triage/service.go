// Package triage holds the ticket lifecycle logic: creation, updates,
// assignment, status transitions, and statistics.
package triage

import (
	"context"
	"errors"
	"fmt"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
)

var (
	// ErrTicketNotFound is returned when the referenced ticket does not exist
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrUserNotFound is returned when the referenced user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrNotAnAgent is returned when assigning a ticket to a non-agent
	ErrNotAnAgent = errors.New("assignee must be an agent")
)

// Service implements ticket operations over the store
type Service struct {
	db *database.DB
}

// NewService creates a Service backed by the given database
func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

// CreateInput carries the fields needed to open a new ticket
type CreateInput struct {
	Subject     string
	Description string
	Category    database.TicketCategory
	Severity    int
	CreatedBy   string // email of the reporting user
}

// Create validates the input and opens a new ticket with status open
func (s *Service) Create(ctx context.Context, in CreateInput) (*database.Ticket, error) {
	if err := ValidateNewTicket(in); err != nil {
		return nil, err
	}

	creator, err := s.db.GetUserByEmail(ctx, in.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("look up creator: %w", err)
	}
	if creator == nil {
		return nil, fmt.Errorf("creator %q: %w", in.CreatedBy, ErrUserNotFound)
	}

	ticket := &database.Ticket{
		Subject:     in.Subject,
		Description: in.Description,
		Category:    in.Category,
		Severity:    in.Severity,
		Status:      database.StatusOpen,
		CreatedBy:   creator.ID,
	}
	if err := s.db.CreateTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return ticket, nil
}

// Get retrieves a ticket by its full ID or a unique ID prefix
func (s *Service) Get(ctx context.Context, id string) (*database.Ticket, error) {
	ticket, err := s.db.GetTicket(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if ticket == nil {
		ticket, err = s.db.GetTicketByPrefix(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get ticket: %w", err)
		}
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %s: %w", id, ErrTicketNotFound)
	}
	return ticket, nil
}

// List retrieves tickets matching the given options
func (s *Service) List(ctx context.Context, opts database.ListOptions) ([]database.Ticket, error) {
	return s.db.ListTickets(ctx, opts)
}

// ListFor retrieves the tickets visible to the given user. Agents see
// every ticket, employees only the ones they filed.
func (s *Service) ListFor(ctx context.Context, userEmail string, opts database.ListOptions) ([]database.Ticket, error) {
	user, err := s.db.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", userEmail, ErrUserNotFound)
	}

	if user.Role != database.RoleAgent {
		opts.CreatedBy = &user.ID
	}
	return s.db.ListTickets(ctx, opts)
}

// UpdateInput carries the fields of a ticket edit. Nil fields are left
// unchanged.
type UpdateInput struct {
	Subject     *string
	Description *string
	Category    *database.TicketCategory
	Severity    *int
}

// Update edits the content fields of an existing ticket
func (s *Service) Update(ctx context.Context, ticketID string, in UpdateInput) (*database.Ticket, error) {
	ticket, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if in.Subject != nil {
		ticket.Subject = *in.Subject
	}
	if in.Description != nil {
		ticket.Description = *in.Description
	}
	if in.Category != nil {
		ticket.Category = *in.Category
	}
	if in.Severity != nil {
		ticket.Severity = *in.Severity
	}

	if err := ValidateNewTicket(CreateInput{
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Category:    ticket.Category,
		Severity:    ticket.Severity,
		CreatedBy:   ticket.CreatedBy,
	}); err != nil {
		return nil, err
	}

	if err := s.db.UpdateTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	return ticket, nil
}

// Assign hands a ticket to an agent and moves it to in_progress.
// Passing an empty email unassigns the ticket and reopens it.
func (s *Service) Assign(ctx context.Context, ticketID, agentEmail string) (*database.Ticket, error) {
	ticket, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if agentEmail == "" {
		ticket.AssignedTo = nil
		ticket.Status = database.StatusOpen
	} else {
		agent, err := s.db.GetUserByEmail(ctx, agentEmail)
		if err != nil {
			return nil, fmt.Errorf("look up agent: %w", err)
		}
		if agent == nil {
			return nil, fmt.Errorf("agent %q: %w", agentEmail, ErrUserNotFound)
		}
		if agent.Role != database.RoleAgent {
			return nil, fmt.Errorf("%s: %w", agentEmail, ErrNotAnAgent)
		}

		ticket.AssignedTo = &agent.ID
		ticket.Status = database.StatusInProgress
	}

	if err := s.db.UpdateTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("assign ticket: %w", err)
	}
	return ticket, nil
}

// UpdateStatus moves a ticket to the given status
func (s *Service) UpdateStatus(ctx context.Context, ticketID string, status database.TicketStatus) (*database.Ticket, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	ticket, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	ticket.Status = status
	if err := s.db.UpdateTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return ticket, nil
}

// Statistics returns aggregate ticket counts
func (s *Service) Statistics(ctx context.Context) (*database.Stats, error) {
	return s.db.TicketStats(ctx)
}
