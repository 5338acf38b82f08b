package repository

import (
	"context"

	"github.com/google/uuid"

	"resumewise-backend/internal/models"
)

// UserRepository stores and retrieves user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
