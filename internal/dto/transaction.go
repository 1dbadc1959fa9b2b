package dto

// CreateTransactionRequest represents a transaction creation request
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
	Reference   string  `json:"reference"`
}

// UpdateTransactionRequest represents a transaction update request.
// Zero values leave the corresponding field unchanged.
type UpdateTransactionRequest struct {
	Type        string   `json:"type"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Reference   *string  `json:"reference"`
}

// TransactionFilter represents listing filters
type TransactionFilter struct {
	Type      string
	Category  string
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

// NormalizePage clamps pagination values to their server-side bounds.
// Callers resolve page and limit once, at the request edge, so the query
// and the response meta always agree.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// MonthlySummary is one month of aggregated income and expenses
type MonthlySummary struct {
	Month    string  `json:"month"` // YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// CategorySummary is the aggregated total for one type+category pair
type CategorySummary struct {
	Type  string  `json:"type"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TransactionSummary is the aggregation result over an owner's records
type TransactionSummary struct {
	Income            float64           `json:"income"`
	Expenses          float64           `json:"expenses"`
	Balance           float64           `json:"balance"`
	TotalTransactions int               `json:"totalTransactions"`
	MonthlyData       []MonthlySummary  `json:"monthlyData"`
	CategoryData      []CategorySummary `json:"categoryData"`
}
