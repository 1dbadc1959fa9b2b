package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
)

func TestTransactionService_Create(t *testing.T) {
	repo := NewMockTransactionRepository()
	svc := NewTransactionService(repo)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *dto.CreateTransactionRequest
		wantErr error
	}{
		{
			name: "valid expense",
			req:  &dto.CreateTransactionRequest{Type: "expense", Amount: 25.5, Category: "food", Date: "2024-03-10"},
		},
		{
			name: "valid income without date",
			req:  &dto.CreateTransactionRequest{Type: "income", Amount: 1000, Category: "salary"},
		},
		{
			name:    "unknown type",
			req:     &dto.CreateTransactionRequest{Type: "transfer", Amount: 10, Category: "food"},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name:    "non-positive amount",
			req:     &dto.CreateTransactionRequest{Type: "expense", Amount: 0, Category: "food"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "income category on expense",
			req:     &dto.CreateTransactionRequest{Type: "expense", Amount: 10, Category: "salary"},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "bad date",
			req:     &dto.CreateTransactionRequest{Type: "expense", Amount: 10, Category: "food", Date: "10/03/2024"},
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := svc.Create(ctx, "owner-1", tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if tx.CreatedBy != "owner-1" {
				t.Errorf("CreatedBy = %q, want owner-1", tx.CreatedBy)
			}
			if tx.ID == "" {
				t.Error("Create() left ID empty")
			}
		})
	}
}

func TestTransactionService_OwnershipIsolation(t *testing.T) {
	repo := NewMockTransactionRepository()
	svc := NewTransactionService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", &dto.CreateTransactionRequest{
		Type: "income", Amount: 100, Category: "salary",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Another owner cannot read, update or delete the record
	if _, err := svc.Get(ctx, created.ID, "owner-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() as other owner error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, created.ID, "owner-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() as other owner error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(ctx, created.ID, "owner-1"); err != nil {
		t.Errorf("Get() as owner error = %v", err)
	}
}

func TestTransactionService_Update(t *testing.T) {
	repo := NewMockTransactionRepository()
	svc := NewTransactionService(repo)
	ctx := context.Background()

	created, _ := svc.Create(ctx, "owner-1", &dto.CreateTransactionRequest{
		Type: "expense", Amount: 50, Category: "food", Description: "groceries",
	})

	amount := 75.0
	updated, err := svc.Update(ctx, created.ID, "owner-1", &dto.UpdateTransactionRequest{Amount: &amount})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Amount != 75 {
		t.Errorf("Amount = %v, want 75", updated.Amount)
	}
	if updated.Category != "food" || updated.Description != "groceries" {
		t.Error("untouched fields changed")
	}

	// Switching type without a matching category is rejected
	_, err = svc.Update(ctx, created.ID, "owner-1", &dto.UpdateTransactionRequest{Type: "income"})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Update() error = %v, want ErrInvalidCategory", err)
	}
}

func TestTransactionService_Summary(t *testing.T) {
	repo := NewMockTransactionRepository()
	svc := NewTransactionService(repo)
	ctx := context.Background()

	repo.AddTransaction(tx(domain.TransactionIncome, 100, "salary", "2024-01-10"))
	repo.AddTransaction(tx(domain.TransactionExpense, 40, "food", "2024-01-15"))
	repo.AddTransaction(tx(domain.TransactionIncome, 50, "freelance", "2024-02-01"))
	for _, record := range repo.transactions {
		record.CreatedBy = "owner-1"
	}

	s, err := svc.Summary(ctx, "owner-1", "", "")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if s.Balance != 110 || s.TotalTransactions != 3 {
		t.Errorf("Summary() = %+v, want balance 110 over 3 records", s)
	}

	// Range filtering: January only
	s, err = svc.Summary(ctx, "owner-1", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if s.Income != 100 || s.Expenses != 40 || s.TotalTransactions != 2 {
		t.Errorf("January summary = %+v, want income 100, expenses 40, 2 records", s)
	}

	// Invalid bound propagates the date error
	if _, err := svc.Summary(ctx, "owner-1", "not-a-date", ""); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("Summary() error = %v, want ErrInvalidDateFormat", err)
	}
}
