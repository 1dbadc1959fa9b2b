package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/repository"
	"github.com/tasfirul8269/frooxi-backend/internal/telemetry"
)

const dateLayout = "2006-01-02"

// TransactionService handles financial records and aggregation
type TransactionService struct {
	transactions repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactions repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactions: transactions}
}

// Create validates and stores a new transaction owned by ownerID
func (s *TransactionService) Create(ctx context.Context, ownerID string, req *dto.CreateTransactionRequest) (*domain.Transaction, error) {
	ctx, span := telemetry.StartSpan(ctx, "TransactionService.Create")
	defer span.End()

	txType := domain.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, ErrInvalidTransactionType
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !validCategory(txType, req.Category) {
		return nil, ErrInvalidCategory
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		date = parsed
	}

	now := time.Now()
	tx := &domain.Transaction{
		ID:          uuid.New().String(),
		Type:        txType,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		Reference:   req.Reference,
		CreatedBy:   ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}

// Get returns a single transaction owned by ownerID
func (s *TransactionService) Get(ctx context.Context, id, ownerID string) (*domain.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil {
		return nil, ErrNotFound
	}
	return tx, nil
}

// List returns a filtered, paginated page of transactions owned by ownerID
func (s *TransactionService) List(ctx context.Context, ownerID string, filter *dto.TransactionFilter) ([]*domain.Transaction, int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "TransactionService.List")
	defer span.End()

	if filter.Type != "" && !domain.TransactionType(filter.Type).Valid() {
		return nil, 0, ErrInvalidTransactionType
	}

	from, to, err := ParseDateRange(filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, 0, err
	}

	return s.transactions.List(ctx, ownerID, filter, from, to)
}

// Update applies a partial update to a transaction owned by ownerID
func (s *TransactionService) Update(ctx context.Context, id, ownerID string, req *dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	ctx, span := telemetry.StartSpan(ctx, "TransactionService.Update")
	defer span.End()

	tx, err := s.transactions.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil {
		return nil, ErrNotFound
	}

	if req.Type != "" {
		txType := domain.TransactionType(req.Type)
		if !txType.Valid() {
			return nil, ErrInvalidTransactionType
		}
		tx.Type = txType
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		tx.Amount = *req.Amount
	}
	if req.Category != "" {
		tx.Category = req.Category
	}
	if req.Description != "" {
		tx.Description = req.Description
	}
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		tx.Date = parsed
	}
	if req.Reference != nil {
		tx.Reference = *req.Reference
	}

	// Category must stay consistent with the (possibly changed) type
	if !validCategory(tx.Type, tx.Category) {
		return nil, ErrInvalidCategory
	}

	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return tx, nil
}

// Delete removes a transaction owned by ownerID
func (s *TransactionService) Delete(ctx context.Context, id, ownerID string) error {
	tx, err := s.transactions.GetByID(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil {
		return ErrNotFound
	}
	return s.transactions.Delete(ctx, id, ownerID)
}

// Summary aggregates the owner's transactions in the given date range
func (s *TransactionService) Summary(ctx context.Context, ownerID, startDate, endDate string) (*dto.TransactionSummary, error) {
	ctx, span := telemetry.StartSpan(ctx, "TransactionService.Summary")
	defer span.End()

	from, to, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records, err := s.transactions.ListForSummary(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return Summarize(records), nil
}

// ParseDateRange parses optional YYYY-MM-DD bounds. The end bound is
// inclusive: it is extended to the last instant of that day.
func ParseDateRange(startDate, endDate string) (from, to *time.Time, err error) {
	if startDate != "" {
		parsed, perr := time.Parse(dateLayout, startDate)
		if perr != nil {
			return nil, nil, ErrInvalidDateFormat
		}
		from = &parsed
	}
	if endDate != "" {
		parsed, perr := time.Parse(dateLayout, endDate)
		if perr != nil {
			return nil, nil, ErrInvalidDateFormat
		}
		endOfDay := parsed.Add(24*time.Hour - time.Millisecond)
		to = &endOfDay
	}
	return from, to, nil
}

func validCategory(txType domain.TransactionType, category string) bool {
	categories := domain.ExpenseCategories
	if txType == domain.TransactionIncome {
		categories = domain.IncomeCategories
	}
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
