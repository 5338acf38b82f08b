package repository

import (
	"context"

	"github.com/google/uuid"

	"resumewise-backend/internal/models"
)

// ScreeningRepository stores completed screening runs
type ScreeningRepository interface {
	Create(ctx context.Context, screening *models.Screening) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Screening, error)
}
