package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
)

// PostgresTestimonialRepository implements TestimonialRepository using PostgreSQL
type PostgresTestimonialRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTestimonialRepository creates a new PostgresTestimonialRepository
func NewPostgresTestimonialRepository(pool *pgxpool.Pool) *PostgresTestimonialRepository {
	return &PostgresTestimonialRepository{pool: pool}
}

const testimonialColumns = `id, name, position, company, content, rating, image_url, image_key, is_active, featured, display_order, created_at, updated_at`

func scanTestimonial(row pgx.Row) (*domain.Testimonial, error) {
	t := &domain.Testimonial{}
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Position,
		&t.Company,
		&t.Content,
		&t.Rating,
		&t.ImageURL,
		&t.ImageKey,
		&t.IsActive,
		&t.Featured,
		&t.Order,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// Create creates a new testimonial
func (r *PostgresTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, name, position, company, content, rating, image_url, image_key, is_active, featured, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Name, t.Position, t.Company, t.Content, t.Rating,
		t.ImageURL, t.ImageKey, t.IsActive, t.Featured, t.Order,
		t.CreatedAt, t.UpdatedAt,
	)
	return err
}

// GetByID retrieves a testimonial by ID
func (r *PostgresTestimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`
	return scanTestimonial(r.pool.QueryRow(ctx, query, id))
}

// List retrieves testimonials ordered by display order, then newest first
func (r *PostgresTestimonialRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY display_order ASC, created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update updates a testimonial
func (r *PostgresTestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	query := `
		UPDATE testimonials
		SET name = $2, position = $3, company = $4, content = $5, rating = $6,
		    image_url = $7, image_key = $8, is_active = $9, featured = $10, display_order = $11, updated_at = $12
		WHERE id = $1
	`
	t.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Name, t.Position, t.Company, t.Content, t.Rating,
		t.ImageURL, t.ImageKey, t.IsActive, t.Featured, t.Order, t.UpdatedAt,
	)
	return err
}

// Delete deletes a testimonial
func (r *PostgresTestimonialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	return err
}

// Count returns the total number of testimonials
func (r *PostgresTestimonialRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&count)
	return count, err
}
