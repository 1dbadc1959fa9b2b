package service

import (
	"errors"
	"testing"
	"time"

	"github.com/tasfirul8269/frooxi-backend/internal/domain"
)

func tx(txType domain.TransactionType, amount float64, category string, date string) *domain.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return &domain.Transaction{
		ID:       date + category,
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     d,
	}
}

func TestSummarize(t *testing.T) {
	records := []*domain.Transaction{
		tx(domain.TransactionIncome, 100, "salary", "2024-01-10"),
		tx(domain.TransactionExpense, 40, "food", "2024-01-15"),
		tx(domain.TransactionIncome, 50, "freelance", "2024-02-01"),
	}

	s := Summarize(records)

	if s.Income != 150 {
		t.Errorf("Income = %v, want 150", s.Income)
	}
	if s.Expenses != 40 {
		t.Errorf("Expenses = %v, want 40", s.Expenses)
	}
	if s.Balance != 110 {
		t.Errorf("Balance = %v, want 110", s.Balance)
	}
	if s.TotalTransactions != 3 {
		t.Errorf("TotalTransactions = %v, want 3", s.TotalTransactions)
	}

	if len(s.MonthlyData) != 2 {
		t.Fatalf("MonthlyData length = %d, want 2", len(s.MonthlyData))
	}
	jan := s.MonthlyData[0]
	if jan.Month != "2024-01" || jan.Income != 100 || jan.Expenses != 40 {
		t.Errorf("January = %+v, want {2024-01 100 40}", jan)
	}
	feb := s.MonthlyData[1]
	if feb.Month != "2024-02" || feb.Income != 50 || feb.Expenses != 0 {
		t.Errorf("February = %+v, want {2024-02 50 0}", feb)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	if s.Income != 0 || s.Expenses != 0 || s.Balance != 0 || s.TotalTransactions != 0 {
		t.Errorf("totals = %+v, want all zero", s)
	}
	if s.MonthlyData == nil || len(s.MonthlyData) != 0 {
		t.Errorf("MonthlyData = %v, want empty non-nil slice", s.MonthlyData)
	}
	if s.CategoryData == nil || len(s.CategoryData) != 0 {
		t.Errorf("CategoryData = %v, want empty non-nil slice", s.CategoryData)
	}
}

func TestSummarize_SkipsMonthsWithoutRecords(t *testing.T) {
	records := []*domain.Transaction{
		tx(domain.TransactionIncome, 10, "salary", "2024-01-01"),
		tx(domain.TransactionExpense, 5, "food", "2024-03-10"),
		tx(domain.TransactionIncome, 20, "salary", "2024-03-01"),
	}

	s := Summarize(records)

	// Only months with activity appear; 2024-02 is absent, not zero-filled
	want := []string{"2024-01", "2024-03"}
	if len(s.MonthlyData) != len(want) {
		t.Fatalf("MonthlyData length = %d, want %d", len(s.MonthlyData), len(want))
	}
	for i, m := range s.MonthlyData {
		if m.Month != want[i] {
			t.Errorf("MonthlyData[%d].Month = %q, want %q", i, m.Month, want[i])
		}
	}
	// Within an active month, the missing type reads as zero
	if s.MonthlyData[0].Income != 10 || s.MonthlyData[0].Expenses != 0 {
		t.Errorf("MonthlyData[0] = %+v, want income 10, expenses 0", s.MonthlyData[0])
	}
	if s.MonthlyData[1].Income != 20 || s.MonthlyData[1].Expenses != 5 {
		t.Errorf("MonthlyData[1] = %+v, want income 20, expenses 5", s.MonthlyData[1])
	}
}

func TestSummarize_CategoryData(t *testing.T) {
	records := []*domain.Transaction{
		tx(domain.TransactionExpense, 30, "food", "2024-01-01"),
		tx(domain.TransactionExpense, 20, "food", "2024-01-02"),
		tx(domain.TransactionExpense, 15, "education", "2024-01-03"),
		tx(domain.TransactionIncome, 100, "salary", "2024-01-04"),
	}

	s := Summarize(records)

	if len(s.CategoryData) != 3 {
		t.Fatalf("CategoryData length = %d, want 3", len(s.CategoryData))
	}
	// Income categories first, then expenses, each alphabetical
	if s.CategoryData[0].Type != "income" || s.CategoryData[0].Name != "salary" || s.CategoryData[0].Value != 100 {
		t.Errorf("CategoryData[0] = %+v, want income/salary/100", s.CategoryData[0])
	}
	if s.CategoryData[1].Name != "education" || s.CategoryData[1].Value != 15 {
		t.Errorf("CategoryData[1] = %+v, want expense/education/15", s.CategoryData[1])
	}
	if s.CategoryData[2].Name != "food" || s.CategoryData[2].Value != 50 {
		t.Errorf("CategoryData[2] = %+v, want expense/food/50 (summed)", s.CategoryData[2])
	}
}

func TestParseDateRange(t *testing.T) {
	from, to, err := ParseDateRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("ParseDateRange() error = %v", err)
	}
	if from == nil || to == nil {
		t.Fatal("bounds should both be set")
	}

	// The end bound is inclusive of the whole day
	endOfMonth, _ := time.Parse("2006-01-02", "2024-01-31")
	lastRecord := endOfMonth.Add(23*time.Hour + 59*time.Minute)
	if to.Before(lastRecord) {
		t.Errorf("end bound %v excludes records late on the end date", to)
	}
	if !to.Before(endOfMonth.Add(24 * time.Hour)) {
		t.Errorf("end bound %v spills into the next day", to)
	}
}

func TestParseDateRange_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"bad start", "not-a-date", ""},
		{"bad end", "", "31-01-2024"},
		{"both bad", "nope", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseDateRange(tt.start, tt.end)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDateRange(%q, %q) error = %v, want ErrInvalidDateFormat", tt.start, tt.end, err)
			}
		})
	}
}

func TestParseDateRange_Open(t *testing.T) {
	from, to, err := ParseDateRange("", "")
	if err != nil {
		t.Fatalf("ParseDateRange() error = %v", err)
	}
	if from != nil || to != nil {
		t.Error("empty bounds should stay nil")
	}
}
