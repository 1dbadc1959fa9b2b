package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
)

// PostgresSubscriptionRepository implements SubscriptionRepository using PostgreSQL
type PostgresSubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository
func NewPostgresSubscriptionRepository(pool *pgxpool.Pool) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{pool: pool}
}

const subscriptionColumns = `id, name, email, plan, status, start_date, end_date, created_at, updated_at`

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	s := &domain.Subscription{}
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.Plan,
		&s.Status,
		&s.StartDate,
		&s.EndDate,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// Create creates a new subscription
func (r *PostgresSubscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, name, email, plan, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Plan, s.Status, s.StartDate, s.EndDate, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

// GetByID retrieves a subscription by ID
func (r *PostgresSubscriptionRepository) GetByID(ctx context.Context, id string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	return scanSubscription(r.pool.QueryRow(ctx, query, id))
}

// List retrieves all subscriptions, newest first
func (r *PostgresSubscriptionRepository) List(ctx context.Context) ([]*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpdateStatus updates the status of a subscription
func (r *PostgresSubscriptionRepository) UpdateStatus(ctx context.Context, id string, status domain.SubscriptionStatus) error {
	query := `UPDATE subscriptions SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status, time.Now())
	return err
}

// Delete deletes a subscription
func (r *PostgresSubscriptionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	return err
}

// CountByStatus returns the number of subscriptions in the given status
func (r *PostgresSubscriptionRepository) CountByStatus(ctx context.Context, status domain.SubscriptionStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions WHERE status = $1`, status).Scan(&count)
	return count, err
}
