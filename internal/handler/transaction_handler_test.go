package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/middleware"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

type stubTransactionRepo struct {
	transactions []*domain.Transaction
	lastFilter   *dto.TransactionFilter
}

func (r *stubTransactionRepo) Create(_ context.Context, tx *domain.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *stubTransactionRepo) GetByID(_ context.Context, id, ownerID string) (*domain.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id && tx.CreatedBy == ownerID {
			return tx, nil
		}
	}
	return nil, nil
}

func (r *stubTransactionRepo) List(_ context.Context, ownerID string, filter *dto.TransactionFilter, _, _ *time.Time) ([]*domain.Transaction, int64, error) {
	r.lastFilter = filter
	var out []*domain.Transaction
	for _, tx := range r.transactions {
		if tx.CreatedBy == ownerID {
			out = append(out, tx)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubTransactionRepo) Update(_ context.Context, _ *domain.Transaction) error { return nil }

func (r *stubTransactionRepo) Delete(_ context.Context, _, _ string) error { return nil }

func (r *stubTransactionRepo) ListForSummary(_ context.Context, ownerID string, from, to *time.Time) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, tx := range r.transactions {
		if tx.CreatedBy != ownerID {
			continue
		}
		if from != nil && tx.Date.Before(*from) {
			continue
		}
		if to != nil && tx.Date.After(*to) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func setupTransactionRouter(repo *stubTransactionRepo, user *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTransactionHandler(service.NewTransactionService(repo))

	attach := func(c *gin.Context) {
		if user != nil {
			middleware.SetPrincipal(c, user)
		}
		c.Next()
	}
	r := gin.New()
	r.GET("/api/transactions", attach, h.List)
	r.GET("/api/transactions/summary", attach, h.Summary)
	return r
}

func TestTransactionHandler_Summary(t *testing.T) {
	owner := &domain.User{ID: "user-1", Role: domain.RoleUser, IsActive: true}
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	repo := &stubTransactionRepo{transactions: []*domain.Transaction{
		{ID: "t1", Type: domain.TransactionIncome, Amount: 100, Category: "Sales", Date: date, CreatedBy: owner.ID},
		{ID: "t2", Type: domain.TransactionIncome, Amount: 50, Category: "Sales", Date: date.AddDate(0, 1, 0), CreatedBy: owner.ID},
		{ID: "t3", Type: domain.TransactionExpense, Amount: 40, Category: "Hosting", Date: date, CreatedBy: owner.ID},
		{ID: "t4", Type: domain.TransactionIncome, Amount: 999, Category: "Sales", Date: date, CreatedBy: "someone-else"},
	}}
	router := setupTransactionRouter(repo, owner)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Success bool                    `json:"success"`
		Data    dto.TransactionSummary `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !envelope.Success {
		t.Error("success = false, want true")
	}

	sum := envelope.Data
	if sum.Income != 150 || sum.Expenses != 40 || sum.Balance != 110 {
		t.Errorf("totals = %v/%v/%v, want 150/40/110", sum.Income, sum.Expenses, sum.Balance)
	}
	if sum.TotalTransactions != 3 {
		t.Errorf("totalTransactions = %d, want 3", sum.TotalTransactions)
	}
	if len(sum.MonthlyData) != 2 {
		t.Fatalf("monthlyData has %d entries, want 2", len(sum.MonthlyData))
	}
	if sum.MonthlyData[0].Month != "2024-01" || sum.MonthlyData[1].Month != "2024-02" {
		t.Errorf("monthlyData months = %s, %s", sum.MonthlyData[0].Month, sum.MonthlyData[1].Month)
	}
}

func TestTransactionHandler_SummaryInvalidDate(t *testing.T) {
	owner := &domain.User{ID: "user-1", Role: domain.RoleUser, IsActive: true}
	router := setupTransactionRouter(&stubTransactionRepo{}, owner)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/summary?startDate=15-01-2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var envelope response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Error == nil || envelope.Error.Code != "INVALID_DATE_FORMAT" {
		t.Errorf("error = %+v, want code INVALID_DATE_FORMAT", envelope.Error)
	}
}

func TestTransactionHandler_ListPaginationResolvedOnce(t *testing.T) {
	owner := &domain.User{ID: "user-1", Role: domain.RoleUser, IsActive: true}
	repo := &stubTransactionRepo{}
	router := setupTransactionRouter(repo, owner)

	// A garbage limit falls back to the default, and the query and the
	// meta block must agree on it
	req := httptest.NewRequest(http.MethodGet, "/api/transactions?page=0&limit=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if repo.lastFilter == nil {
		t.Fatal("repository never received a filter")
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.Limit != 20 {
		t.Errorf("repo filter = page %d limit %d, want page 1 limit 20",
			repo.lastFilter.Page, repo.lastFilter.Limit)
	}

	var envelope struct {
		Meta response.Pagination `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Meta.Page != repo.lastFilter.Page || envelope.Meta.Limit != repo.lastFilter.Limit {
		t.Errorf("meta = page %d limit %d, differs from query page %d limit %d",
			envelope.Meta.Page, envelope.Meta.Limit, repo.lastFilter.Page, repo.lastFilter.Limit)
	}
}

func TestTransactionHandler_SummaryNoPrincipal(t *testing.T) {
	router := setupTransactionRouter(&stubTransactionRepo{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
