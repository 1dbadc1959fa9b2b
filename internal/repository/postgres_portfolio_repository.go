package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
)

// PostgresPortfolioRepository implements PortfolioRepository using PostgreSQL
type PostgresPortfolioRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPortfolioRepository creates a new PostgresPortfolioRepository
func NewPostgresPortfolioRepository(pool *pgxpool.Pool) *PostgresPortfolioRepository {
	return &PostgresPortfolioRepository{pool: pool}
}

const portfolioColumns = `id, title, description, image_url, image_key, category, technologies, year, link, featured, is_active, created_at, updated_at`

// Create creates a new portfolio item
func (r *PostgresPortfolioRepository) Create(ctx context.Context, item *domain.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items (id, title, description, image_url, image_key, category, technologies, year, link, featured, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.ImageURL,
		item.ImageKey,
		item.Category,
		item.Technologies,
		item.Year,
		item.Link,
		item.Featured,
		item.IsActive,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return err
}

// GetByID retrieves a portfolio item by ID
func (r *PostgresPortfolioRepository) GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE id = $1`
	item := &domain.PortfolioItem{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.ImageURL,
		&item.ImageKey,
		&item.Category,
		&item.Technologies,
		&item.Year,
		&item.Link,
		&item.Featured,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// List retrieves portfolio items, featured and newest first
func (r *PostgresPortfolioRepository) List(ctx context.Context, onlyActive bool) ([]*domain.PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY featured DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.PortfolioItem
	for rows.Next() {
		item := &domain.PortfolioItem{}
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.ImageURL,
			&item.ImageKey,
			&item.Category,
			&item.Technologies,
			&item.Year,
			&item.Link,
			&item.Featured,
			&item.IsActive,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update updates a portfolio item
func (r *PostgresPortfolioRepository) Update(ctx context.Context, item *domain.PortfolioItem) error {
	query := `
		UPDATE portfolio_items
		SET title = $2, description = $3, image_url = $4, image_key = $5, category = $6,
		    technologies = $7, year = $8, link = $9, featured = $10, is_active = $11, updated_at = $12
		WHERE id = $1
	`
	item.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.ImageURL,
		item.ImageKey,
		item.Category,
		item.Technologies,
		item.Year,
		item.Link,
		item.Featured,
		item.IsActive,
		item.UpdatedAt,
	)
	return err
}

// Delete deletes a portfolio item
func (r *PostgresPortfolioRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	return err
}

// Count returns the total number of portfolio items
func (r *PostgresPortfolioRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM portfolio_items`).Scan(&count)
	return count, err
}

// CategoryCounts returns the portfolio category distribution, largest first
func (r *PostgresPortfolioRepository) CategoryCounts(ctx context.Context) ([]dto.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*)
		FROM portfolio_items
		GROUP BY category
		ORDER BY COUNT(*) DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []dto.CategoryCount
	for rows.Next() {
		var c dto.CategoryCount
		if err := rows.Scan(&c.Name, &c.Value); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
