package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary rows are derived on demand and never persisted.

type DailySummary struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	Count       int64           `json:"count"`
}

type WeeklySummary struct {
	Week        int             `json:"week"` // ISO week of year
	StartDate   time.Time       `json:"start_date"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	Count       int64           `json:"count"`
}

type MonthlySummary struct {
	Month       int             `json:"month"` // 1-12
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	Count       int64           `json:"count"`
}

// CategorySummary covers debit transactions only.
type CategorySummary struct {
	Category    TransactionCategory `json:"category"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Count       int64               `json:"count"`
}

// FiscalYearSummary aggregates one April-to-March window. Label is
// "<startYear>-<startYear+1>".
type FiscalYearSummary struct {
	Label       string          `json:"fiscal_year"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	Count       int64           `json:"count"`
}
