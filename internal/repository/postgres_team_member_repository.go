package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
)

// PostgresTeamMemberRepository implements TeamMemberRepository using PostgreSQL
type PostgresTeamMemberRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTeamMemberRepository creates a new PostgresTeamMemberRepository
func NewPostgresTeamMemberRepository(pool *pgxpool.Pool) *PostgresTeamMemberRepository {
	return &PostgresTeamMemberRepository{pool: pool}
}

const teamMemberColumns = `id, name, position, bio, email, image_url, image_key, linkedin, twitter, github, portfolio, is_active, display_order, created_at, updated_at`

func scanTeamMember(row pgx.Row) (*domain.TeamMember, error) {
	m := &domain.TeamMember{}
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Position,
		&m.Bio,
		&m.Email,
		&m.ImageURL,
		&m.ImageKey,
		&m.Socials.LinkedIn,
		&m.Socials.Twitter,
		&m.Socials.GitHub,
		&m.Socials.Portfolio,
		&m.IsActive,
		&m.Order,
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

// Create creates a new team member
func (r *PostgresTeamMemberRepository) Create(ctx context.Context, m *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (id, name, position, bio, email, image_url, image_key, linkedin, twitter, github, portfolio, is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Name, m.Position, m.Bio, m.Email, m.ImageURL, m.ImageKey,
		m.Socials.LinkedIn, m.Socials.Twitter, m.Socials.GitHub, m.Socials.Portfolio,
		m.IsActive, m.Order, m.CreatedAt, m.UpdatedAt,
	)
	return err
}

// GetByID retrieves a team member by ID
func (r *PostgresTeamMemberRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE id = $1`
	return scanTeamMember(r.pool.QueryRow(ctx, query, id))
}

// List retrieves team members ordered by display order
func (r *PostgresTeamMemberRepository) List(ctx context.Context, onlyActive bool) ([]*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY display_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update updates a team member
func (r *PostgresTeamMemberRepository) Update(ctx context.Context, m *domain.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, position = $3, bio = $4, email = $5, image_url = $6, image_key = $7,
		    linkedin = $8, twitter = $9, github = $10, portfolio = $11,
		    is_active = $12, display_order = $13, updated_at = $14
		WHERE id = $1
	`
	m.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Name, m.Position, m.Bio, m.Email, m.ImageURL, m.ImageKey,
		m.Socials.LinkedIn, m.Socials.Twitter, m.Socials.GitHub, m.Socials.Portfolio,
		m.IsActive, m.Order, m.UpdatedAt,
	)
	return err
}

// Delete deletes a team member
func (r *PostgresTeamMemberRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	return err
}

// Count returns the total number of team members
func (r *PostgresTeamMemberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count)
	return count, err
}
