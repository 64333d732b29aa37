// Package analytics computes grouped credit/debit totals over transaction
// collections. All functions are pure and read-only; callers restrict the
// input to one user and the relevant date range before grouping.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"finsight/internal/models"
)

// Daily groups by calendar date (YYYY-MM-DD), ascending.
func Daily(txs []models.Transaction) []models.DailySummary {
	groups := make(map[string]*models.DailySummary)

	for _, tx := range txs {
		key := tx.Date.Format("2006-01-02")
		row, ok := groups[key]
		if !ok {
			row = &models.DailySummary{Date: key}
			groups[key] = row
		}
		switch tx.Type {
		case models.TypeCredit:
			row.TotalCredit = row.TotalCredit.Add(tx.Amount)
		case models.TypeDebit:
			row.TotalDebit = row.TotalDebit.Add(tx.Amount)
		}
		row.Count++
	}

	rows := make([]models.DailySummary, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// Weekly groups by ISO week-of-year number and orders groups by the minimum
// date observed in each group, ascending.
func Weekly(txs []models.Transaction) []models.WeeklySummary {
	groups := make(map[int]*models.WeeklySummary)

	for _, tx := range txs {
		_, week := tx.Date.ISOWeek()
		row, ok := groups[week]
		if !ok {
			row = &models.WeeklySummary{Week: week}
			groups[week] = row
		}
		if row.StartDate.IsZero() || tx.Date.Before(row.StartDate) {
			row.StartDate = tx.Date
		}
		switch tx.Type {
		case models.TypeCredit:
			row.TotalCredit = row.TotalCredit.Add(tx.Amount)
		case models.TypeDebit:
			row.TotalDebit = row.TotalDebit.Add(tx.Amount)
		}
		row.Count++
	}

	rows := make([]models.WeeklySummary, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartDate.Before(rows[j].StartDate) })
	return rows
}

// Monthly groups by calendar month number within the given year, ascending.
// Transactions outside the year are ignored.
func Monthly(txs []models.Transaction, year int) []models.MonthlySummary {
	groups := make(map[int]*models.MonthlySummary)

	for _, tx := range txs {
		if tx.Date.Year() != year {
			continue
		}
		month := int(tx.Date.Month())
		row, ok := groups[month]
		if !ok {
			row = &models.MonthlySummary{Month: month}
			groups[month] = row
		}
		switch tx.Type {
		case models.TypeCredit:
			row.TotalCredit = row.TotalCredit.Add(tx.Amount)
		case models.TypeDebit:
			row.TotalDebit = row.TotalDebit.Add(tx.Amount)
		}
		row.Count++
	}

	rows := make([]models.MonthlySummary, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}

// ByCategory restricts to debit transactions, groups by category and orders
// by total amount descending (category name ascending as a tie-break, so the
// output is deterministic).
func ByCategory(txs []models.Transaction) []models.CategorySummary {
	groups := make(map[models.TransactionCategory]*models.CategorySummary)

	for _, tx := range txs {
		if tx.Type != models.TypeDebit {
			continue
		}
		row, ok := groups[tx.Category]
		if !ok {
			row = &models.CategorySummary{Category: tx.Category}
			groups[tx.Category] = row
		}
		row.TotalAmount = row.TotalAmount.Add(tx.Amount)
		row.Count++
	}

	rows := make([]models.CategorySummary, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TotalAmount.Equal(rows[j].TotalAmount) {
			return rows[i].TotalAmount.GreaterThan(rows[j].TotalAmount)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// FiscalYearStart returns the calendar year in which the fiscal year
// containing t begins. Fiscal years run April 1 through March 31, so any
// date before April belongs to the window that started the previous year.
func FiscalYearStart(t time.Time) int {
	if t.Month() < time.April {
		return t.Year() - 1
	}
	return t.Year()
}

// FiscalYearWindow returns the inclusive bounds of the fiscal year starting
// in startYear.
func FiscalYearWindow(startYear int) (time.Time, time.Time) {
	start := time.Date(startYear, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(startYear+1, time.March, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

func FiscalYearLabel(startYear int) string {
	return fmt.Sprintf("%d-%d", startYear, startYear+1)
}

// CurrentFiscalYear sums credit/debit/count over the fiscal year containing
// today. It returns nil when no transaction falls inside the window; callers
// render that as an absent summary rather than a zero row.
func CurrentFiscalYear(txs []models.Transaction, today time.Time) *models.FiscalYearSummary {
	startYear := FiscalYearStart(today)
	row := sumWindow(txs, startYear)
	if row.Count == 0 {
		return nil
	}
	return &row
}

// LastThreeFiscalYears computes the three most recent fiscal-year windows
// ending at today's fiscal year, ordered by label ascending. Windows without
// transactions yield no row.
func LastThreeFiscalYears(txs []models.Transaction, today time.Time) []models.FiscalYearSummary {
	current := FiscalYearStart(today)

	var rows []models.FiscalYearSummary
	for startYear := current - 2; startYear <= current; startYear++ {
		row := sumWindow(txs, startYear)
		if row.Count > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

func sumWindow(txs []models.Transaction, startYear int) models.FiscalYearSummary {
	start, end := FiscalYearWindow(startYear)
	row := models.FiscalYearSummary{Label: FiscalYearLabel(startYear)}

	for _, tx := range txs {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		switch tx.Type {
		case models.TypeCredit:
			row.TotalCredit = row.TotalCredit.Add(tx.Amount)
		case models.TypeDebit:
			row.TotalDebit = row.TotalDebit.Add(tx.Amount)
		}
		row.Count++
	}
	return row
}
