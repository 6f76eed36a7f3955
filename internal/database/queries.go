package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

const ticketColumns = `id, subject, description, category, severity, status,
	       created_by, assigned_to, created_at, updated_at`

// CreateTicket inserts a new ticket
func (db *DB) CreateTicket(ctx context.Context, t *Ticket) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = StatusOpen
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	t.UpdatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO tickets (
			id, subject, description, category, severity, status,
			created_by, assigned_to, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.Subject, t.Description, t.Category, t.Severity, t.Status,
		t.CreatedBy, NullString(t.AssignedTo), t.CreatedAt, t.UpdatedAt,
	)
	return err
}

// GetTicket retrieves a ticket by ID
func (db *DB) GetTicket(ctx context.Context, id string) (*Ticket, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+ticketColumns+`
		FROM tickets WHERE id = ?
	`, id)

	t, err := scanTicket(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetTicketByPrefix resolves a ticket by a unique ID prefix, so the
// shortened IDs shown in table output can be used on the command line.
// Returns nil when nothing matches and an error when the prefix is
// ambiguous.
func (db *DB) GetTicketByPrefix(ctx context.Context, prefix string) (*Ticket, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+ticketColumns+`
		FROM tickets WHERE id LIKE ? LIMIT 2
	`, prefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches, err := scanTickets(rows)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("ticket ID prefix %q is ambiguous", prefix)
	}
}

// UpdateTicket updates the mutable fields of an existing ticket
func (db *DB) UpdateTicket(ctx context.Context, t *Ticket) error {
	t.UpdatedAt = time.Now()

	result, err := db.ExecContext(ctx, `
		UPDATE tickets SET
			subject = ?, description = ?, category = ?, severity = ?,
			status = ?, assigned_to = ?, updated_at = ?
		WHERE id = ?
	`,
		t.Subject, t.Description, t.Category, t.Severity,
		t.Status, NullString(t.AssignedTo), t.UpdatedAt, t.ID,
	)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("ticket %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

// DeleteTicket removes a ticket
func (db *DB) DeleteTicket(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("ticket %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListTickets retrieves tickets with optional filters, most recent first
func (db *DB) ListTickets(ctx context.Context, opts ListOptions) ([]Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets WHERE 1=1
	`
	args := []interface{}{}

	if opts.Status != nil {
		query += " AND status = ?"
		args = append(args, *opts.Status)
	}
	if opts.Category != nil {
		query += " AND category = ?"
		args = append(args, *opts.Category)
	}
	if opts.Severity != nil {
		query += " AND severity = ?"
		args = append(args, *opts.Severity)
	}
	if opts.Search != nil {
		query += " AND (subject LIKE ? OR description LIKE ?)"
		pattern := "%" + *opts.Search + "%"
		args = append(args, pattern, pattern)
	}
	if opts.CreatedBy != nil {
		query += " AND created_by = ?"
		args = append(args, *opts.CreatedBy)
	}
	if opts.Unassigned {
		query += " AND assigned_to IS NULL"
	}

	query += " ORDER BY created_at DESC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
		if opts.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTickets(rows)
}

// CandidateTickets returns the bounded, pre-filtered shortlist the
// similarity engine scores against: active tickets inside the recency
// window, ordered by creation time descending, capped at opts.Limit.
func (db *DB) CandidateTickets(ctx context.Context, opts CandidateOptions) ([]Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets WHERE 1=1
	`
	args := []interface{}{}

	if len(opts.ExcludedStatuses) > 0 {
		placeholders := strings.Repeat("?,", len(opts.ExcludedStatuses))
		query += " AND status NOT IN (" + strings.TrimSuffix(placeholders, ",") + ")"
		for _, s := range opts.ExcludedStatuses {
			args = append(args, s)
		}
	}

	if opts.RecencyDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -opts.RecencyDays)
		query += " AND created_at >= ?"
		args = append(args, cutoff)
	}

	if opts.Category != "" {
		query += " AND category = ?"
		args = append(args, opts.Category)
	}

	query += " ORDER BY created_at DESC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTickets(rows)
}

// TicketStats returns aggregate counts across all tickets
func (db *DB) TicketStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	rows, err := db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM tickets GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status TicketStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		stats.Total += count
		switch status {
		case StatusOpen:
			stats.Open = count
		case StatusInProgress:
			stats.InProgress = count
		case StatusResolved:
			stats.Resolved = count
		case StatusClosed:
			stats.Closed = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tickets WHERE assigned_to IS NULL
	`).Scan(&stats.Unassigned)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// scanner abstracts *sql.Row and *sql.Rows for ticket scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(s scanner) (*Ticket, error) {
	t := &Ticket{}
	var description, assignedTo sql.NullString

	err := s.Scan(
		&t.ID, &t.Subject, &description, &t.Category, &t.Severity, &t.Status,
		&t.CreatedBy, &assignedTo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// A null description reads as empty text, never as an error
	t.Description = description.String
	t.AssignedTo = StringPtr(assignedTo)
	return t, nil
}

func scanTickets(rows *sql.Rows) ([]Ticket, error) {
	var tickets []Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}
