package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
)

// PostgresConsultationRepository implements ConsultationRepository using PostgreSQL
type PostgresConsultationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresConsultationRepository creates a new PostgresConsultationRepository
func NewPostgresConsultationRepository(pool *pgxpool.Pool) *PostgresConsultationRepository {
	return &PostgresConsultationRepository{pool: pool}
}

const consultationColumns = `id, name, email, phone, service, message, status, created_at, updated_at`

func scanConsultation(row pgx.Row) (*domain.Consultation, error) {
	c := &domain.Consultation{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Service,
		&c.Message,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Create creates a new consultation request
func (r *PostgresConsultationRepository) Create(ctx context.Context, c *domain.Consultation) error {
	query := `
		INSERT INTO consultations (id, name, email, phone, service, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Service, c.Message, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// GetByID retrieves a consultation request by ID
func (r *PostgresConsultationRepository) GetByID(ctx context.Context, id string) (*domain.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE id = $1`
	return scanConsultation(r.pool.QueryRow(ctx, query, id))
}

// List retrieves all consultation requests, newest first
func (r *PostgresConsultationRepository) List(ctx context.Context) ([]*domain.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateStatus updates the status of a consultation request
func (r *PostgresConsultationRepository) UpdateStatus(ctx context.Context, id string, status domain.ConsultationStatus) error {
	query := `UPDATE consultations SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status, time.Now())
	return err
}

// Delete deletes a consultation request
func (r *PostgresConsultationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM consultations WHERE id = $1`, id)
	return err
}
