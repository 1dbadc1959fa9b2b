package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
)

// PostgresTransactionRepository implements TransactionRepository using PostgreSQL
type PostgresTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTransactionRepository creates a new PostgresTransactionRepository
func NewPostgresTransactionRepository(pool *pgxpool.Pool) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{pool: pool}
}

const transactionColumns = `id, type, amount, category, description, date, reference, created_by, created_at, updated_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	tx := &domain.Transaction{}
	err := row.Scan(
		&tx.ID,
		&tx.Type,
		&tx.Amount,
		&tx.Category,
		&tx.Description,
		&tx.Date,
		&tx.Reference,
		&tx.CreatedBy,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tx, nil
}

// Create creates a new transaction
func (r *PostgresTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, amount, category, description, date, reference, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		tx.ID,
		tx.Type,
		tx.Amount,
		tx.Category,
		tx.Description,
		tx.Date,
		tx.Reference,
		tx.CreatedBy,
		tx.CreatedAt,
		tx.UpdatedAt,
	)
	return err
}

// GetByID retrieves a transaction by ID, scoped to its owner
func (r *PostgresTransactionRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND created_by = $2`
	return scanTransaction(r.pool.QueryRow(ctx, query, id, ownerID))
}

// buildFilter assembles the WHERE clause for an owner plus optional filters
func buildFilter(ownerID string, filter *dto.TransactionFilter, from, to *time.Time) (string, []interface{}) {
	conditions := []string{"created_by = $1"}
	args := []interface{}{ownerID}

	add := func(cond string, val interface{}) {
		args = append(args, val)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter != nil {
		if filter.Type != "" {
			add("type = $%d", filter.Type)
		}
		if filter.Category != "" {
			add("category = $%d", filter.Category)
		}
	}
	if from != nil {
		add("date >= $%d", *from)
	}
	if to != nil {
		add("date <= $%d", *to)
	}

	return strings.Join(conditions, " AND "), args
}

// List retrieves transactions for an owner with filters and pagination, newest first
func (r *PostgresTransactionRepository) List(ctx context.Context, ownerID string, filter *dto.TransactionFilter, from, to *time.Time) ([]*domain.Transaction, int64, error) {
	where, args := buildFilter(ownerID, filter, from, to)

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page, limit := 1, 20
	if filter != nil {
		page, limit = dto.NormalizePage(filter.Page, filter.Limit)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM transactions WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	txs, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

// Update updates a transaction
func (r *PostgresTransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $3, amount = $4, category = $5, description = $6, date = $7, reference = $8, updated_at = $9
		WHERE id = $1 AND created_by = $2
	`
	tx.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		tx.ID,
		tx.CreatedBy,
		tx.Type,
		tx.Amount,
		tx.Category,
		tx.Description,
		tx.Date,
		tx.Reference,
		tx.UpdatedAt,
	)
	return err
}

// Delete deletes a transaction, scoped to its owner
func (r *PostgresTransactionRepository) Delete(ctx context.Context, id, ownerID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND created_by = $2`, id, ownerID)
	return err
}

// ListForSummary retrieves all of an owner's transactions in the date range,
// oldest first, for in-process aggregation.
func (r *PostgresTransactionRepository) ListForSummary(ctx context.Context, ownerID string, from, to *time.Time) ([]*domain.Transaction, error) {
	where, args := buildFilter(ownerID, nil, from, to)
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + where + ` ORDER BY date ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var txs []*domain.Transaction
	for rows.Next() {
		tx := &domain.Transaction{}
		if err := rows.Scan(
			&tx.ID,
			&tx.Type,
			&tx.Amount,
			&tx.Category,
			&tx.Description,
			&tx.Date,
			&tx.Reference,
			&tx.CreatedBy,
			&tx.CreatedAt,
			&tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
