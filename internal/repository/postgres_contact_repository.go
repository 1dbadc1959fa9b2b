package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
)

// PostgresContactRepository implements ContactRepository using PostgreSQL
type PostgresContactRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContactRepository creates a new PostgresContactRepository
func NewPostgresContactRepository(pool *pgxpool.Pool) *PostgresContactRepository {
	return &PostgresContactRepository{pool: pool}
}

const contactColumns = `id, name, email, subject, message, status, created_at, updated_at`

func scanContact(row pgx.Row) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{}
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Subject,
		&m.Message,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Create creates a new contact message
func (r *PostgresContactRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	return err
}

// GetByID retrieves a contact message by ID
func (r *PostgresContactRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1`
	return scanContact(r.pool.QueryRow(ctx, query, id))
}

// List retrieves all contact messages, newest first
func (r *PostgresContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ContactMessage
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpdateStatus updates the status of a contact message
func (r *PostgresContactRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	query := `UPDATE contact_messages SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status, time.Now())
	return err
}

// Delete deletes a contact message
func (r *PostgresContactRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	return err
}
