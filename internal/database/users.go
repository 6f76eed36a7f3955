package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// CreateUser inserts a new user
func (db *DB) CreateUser(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = RoleEmployee
	}
	u.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, role, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.Role, u.CreatedAt)
	return err
}

// GetUser retrieves a user by ID
func (db *DB) GetUser(ctx context.Context, id string) (*User, error) {
	return db.getUser(ctx, `SELECT id, name, email, role, created_at FROM users WHERE id = ?`, id)
}

// GetUserByEmail retrieves a user by email (case-insensitive)
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return db.getUser(ctx, `SELECT id, name, email, role, created_at FROM users WHERE LOWER(email) = LOWER(?)`, email)
}

func (db *DB) getUser(ctx context.Context, query string, arg interface{}) (*User, error) {
	u := &User{}
	err := db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers retrieves users, optionally filtered by role
func (db *DB) ListUsers(ctx context.Context, role *Role) ([]User, error) {
	query := `SELECT id, name, email, role, created_at FROM users`
	args := []interface{}{}

	if role != nil {
		query += ` WHERE role = ?`
		args = append(args, *role)
	}
	query += ` ORDER BY name`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
