package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

const userColumns = "id, name, email, password, created_at"

func userFromRow(r Row) *models.User {
	return &models.User{
		ID:        r.String("id"),
		Name:      r.String("name"),
		Email:     r.String("email"),
		Password:  r.String("password"),
		CreatedAt: r.String("created_at"),
	}
}

// CreateUser creates a new user. A duplicate email fails with a constraint error.
func (s *Store) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	id := uuid.NewString()
	_, err := s.Exec(ctx, `
		INSERT INTO users (id, name, email, password) VALUES (?, ?, ?, ?)
	`, id, name, email, passwordHash)
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, id)
}

// GetUser retrieves a user by ID
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	row, err := s.FetchOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return userFromRow(row), nil
}

// GetUserByEmail retrieves a user by (normalized) email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row, err := s.FetchOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return userFromRow(row), nil
}
