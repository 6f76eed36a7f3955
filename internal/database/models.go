package database

import (
	"database/sql"
	"time"
)

// TicketStatus represents the lifecycle state of a ticket
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// Valid reports whether the status is a known value
func (s TicketStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Label returns a display name for the status
func (s TicketStatus) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusInProgress:
		return "In Progress"
	case StatusResolved:
		return "Resolved"
	case StatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// TicketCategory classifies the kind of issue a ticket reports
type TicketCategory string

const (
	CategoryAccess   TicketCategory = "access"
	CategoryHardware TicketCategory = "hardware"
	CategoryNetwork  TicketCategory = "network"
	CategoryBug      TicketCategory = "bug"
	CategoryOther    TicketCategory = "other"
)

// Valid reports whether the category is a known value
func (c TicketCategory) Valid() bool {
	switch c {
	case CategoryAccess, CategoryHardware, CategoryNetwork, CategoryBug, CategoryOther:
		return true
	}
	return false
}

// Role identifies what a user can do: agents work tickets, employees file them
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAgent    Role = "agent"
)

// Valid reports whether the role is a known value
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAgent
}

// User represents a helpdesk user
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Ticket represents a helpdesk ticket
type Ticket struct {
	ID          string         `json:"id"`
	Subject     string         `json:"subject"`
	Description string         `json:"description"`
	Category    TicketCategory `json:"category"`
	Severity    int            `json:"severity"`
	Status      TicketStatus   `json:"status"`
	CreatedBy   string         `json:"created_by"`
	AssignedTo  *string        `json:"assigned_to,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AgeDays returns the number of days since the ticket was created
func (t *Ticket) AgeDays() int {
	return int(time.Since(t.CreatedAt).Hours() / 24)
}

// IsAssigned returns true if the ticket has an assignee
func (t *Ticket) IsAssigned() bool {
	return t.AssignedTo != nil && *t.AssignedTo != ""
}

// Stats represents aggregate ticket statistics
type Stats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
	Unassigned int `json:"unassigned"`
}

// ListOptions contains options for listing tickets
type ListOptions struct {
	Status     *TicketStatus
	Category   *TicketCategory
	Severity   *int
	Search     *string
	CreatedBy  *string
	Unassigned bool
	Limit      int
	Offset     int
}

// CandidateOptions narrows the ticket pool handed to the similarity engine.
// Tickets in an excluded status or older than the recency window never
// qualify, and the result is capped at Limit rows, most recent first.
type CandidateOptions struct {
	RecencyDays      int
	ExcludedStatuses []TicketStatus
	Category         string // empty means no category filter
	Limit            int
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr is a helper to convert sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
