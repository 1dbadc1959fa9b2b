package domain

import (
	"time"
)

// TransactionType represents the direction of a financial record
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// ExpenseCategories are the valid categories for expense transactions
var ExpenseCategories = []string{
	"housing", "utilities", "food", "transportation",
	"healthcare", "entertainment", "shopping", "education",
	"travel", "other",
}

// IncomeCategories are the valid categories for income transactions
var IncomeCategories = []string{
	"salary", "freelance", "investment", "gift", "other_income",
}

// Transaction represents a financial record owned by a user
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ValidType reports whether t is a known transaction type
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}
