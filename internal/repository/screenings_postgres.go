package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"resumewise-backend/internal/models"
)

// PostgresScreeningRepository implements ScreeningRepository on a pgx pool
type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

// NewPostgresScreeningRepository creates a new PostgresScreeningRepository instance
func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{db: db}
}

func (r *PostgresScreeningRepository) Create(ctx context.Context, screening *models.Screening) error {
	result, err := json.Marshal(screening.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO screenings (id, user_id, resume_text, job_description_text, result, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		screening.ID, screening.UserID, screening.ResumeText,
		screening.JobDescriptionText, result, screening.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresScreeningRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Screening, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, resume_text, job_description_text, result, created_at
		 FROM screenings WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var screenings []models.Screening
	for rows.Next() {
		var s models.Screening
		var result []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.ResumeText, &s.JobDescriptionText, &result, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(result, &s.Result); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
		screenings = append(screenings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return screenings, nil
}
