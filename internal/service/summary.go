package service

import (
	"sort"

	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
)

const monthLayout = "2006-01"

// Summarize aggregates a set of transactions into totals, a monthly series
// and a per-category breakdown. The monthly series is ascending and holds
// one entry per month that has at least one record; within such a month a
// type with no activity reads as zero.
func Summarize(records []*domain.Transaction) *dto.TransactionSummary {
	summary := &dto.TransactionSummary{
		TotalTransactions: len(records),
		MonthlyData:       []dto.MonthlySummary{},
		CategoryData:      []dto.CategorySummary{},
	}
	if len(records) == 0 {
		return summary
	}

	monthly := make(map[string]*dto.MonthlySummary)
	incomeByCategory := make(map[string]float64)
	expenseByCategory := make(map[string]float64)

	for _, tx := range records {
		key := tx.Date.Format(monthLayout)
		m, ok := monthly[key]
		if !ok {
			m = &dto.MonthlySummary{Month: key}
			monthly[key] = m
		}

		switch tx.Type {
		case domain.TransactionIncome:
			summary.Income += tx.Amount
			m.Income += tx.Amount
			incomeByCategory[tx.Category] += tx.Amount
		case domain.TransactionExpense:
			summary.Expenses += tx.Amount
			m.Expenses += tx.Amount
			expenseByCategory[tx.Category] += tx.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expenses

	months := make([]string, 0, len(monthly))
	for key := range monthly {
		months = append(months, key)
	}
	sort.Strings(months)
	for _, key := range months {
		summary.MonthlyData = append(summary.MonthlyData, *monthly[key])
	}

	summary.CategoryData = append(summary.CategoryData,
		categorySlices(domain.TransactionIncome, incomeByCategory)...)
	summary.CategoryData = append(summary.CategoryData,
		categorySlices(domain.TransactionExpense, expenseByCategory)...)

	return summary
}

// categorySlices converts a category sum map into sorted summary entries
func categorySlices(txType domain.TransactionType, sums map[string]float64) []dto.CategorySummary {
	out := make([]dto.CategorySummary, 0, len(sums))
	for name, value := range sums {
		out = append(out, dto.CategorySummary{
			Type:  string(txType),
			Name:  name,
			Value: value,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
