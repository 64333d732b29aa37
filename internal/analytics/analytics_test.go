package analytics

import (
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(day string, typ models.TransactionType, amount string) models.Transaction {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Date:   d,
		Type:   typ,
		Amount: decimal.RequireFromString(amount),
	}
}

func catTx(day string, typ models.TransactionType, amount string, cat models.TransactionCategory) models.Transaction {
	t := tx(day, typ, amount)
	t.Category = cat
	return t
}

func amountEq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestDaily(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-04-02", models.TypeDebit, "10"),
		tx("2024-04-01", models.TypeCredit, "100"),
		tx("2024-04-01", models.TypeDebit, "40"),
	}

	rows := Daily(txs)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-04-01", rows[0].Date)
	amountEq(t, "100", rows[0].TotalCredit)
	amountEq(t, "40", rows[0].TotalDebit)
	assert.Equal(t, int64(2), rows[0].Count)

	assert.Equal(t, "2024-04-02", rows[1].Date)
	amountEq(t, "0", rows[1].TotalCredit)
	amountEq(t, "10", rows[1].TotalDebit)
	assert.Equal(t, int64(1), rows[1].Count)
}

func TestDaily_Empty(t *testing.T) {
	assert.Empty(t, Daily(nil))
}

func TestWeekly(t *testing.T) {
	txs := []models.Transaction{
		// 2024-04-01 is a Monday, ISO week 14; 2024-04-08 starts week 15.
		tx("2024-04-08", models.TypeDebit, "20"),
		tx("2024-04-01", models.TypeCredit, "100"),
		tx("2024-04-03", models.TypeDebit, "30"),
	}

	rows := Weekly(txs)
	require.Len(t, rows, 2)

	assert.Equal(t, 14, rows[0].Week)
	assert.Equal(t, "2024-04-01", rows[0].StartDate.Format("2006-01-02"))
	amountEq(t, "100", rows[0].TotalCredit)
	amountEq(t, "30", rows[0].TotalDebit)
	assert.Equal(t, int64(2), rows[0].Count)

	assert.Equal(t, 15, rows[1].Week)
	amountEq(t, "20", rows[1].TotalDebit)
}

func TestMonthly(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-05-10", models.TypeDebit, "50"),
		tx("2024-04-01", models.TypeCredit, "100"),
		tx("2023-04-01", models.TypeCredit, "999"), // other year, ignored
	}

	rows := Monthly(txs, 2024)
	require.Len(t, rows, 2)

	assert.Equal(t, 4, rows[0].Month)
	amountEq(t, "100", rows[0].TotalCredit)
	assert.Equal(t, 5, rows[1].Month)
	amountEq(t, "50", rows[1].TotalDebit)
}

func TestByCategory(t *testing.T) {
	txs := []models.Transaction{
		catTx("2024-04-01", models.TypeDebit, "250", models.CategoryTransport),
		catTx("2024-04-02", models.TypeDebit, "499", models.CategoryFood),
		catTx("2024-04-03", models.TypeDebit, "1", models.CategoryFood),
		catTx("2024-04-04", models.TypeCredit, "50000", models.CategoryUncategorized),
	}

	rows := ByCategory(txs)
	require.Len(t, rows, 2)

	// Ordered by total descending; credits never contribute.
	assert.Equal(t, models.CategoryFood, rows[0].Category)
	amountEq(t, "500", rows[0].TotalAmount)
	assert.Equal(t, int64(2), rows[0].Count)

	assert.Equal(t, models.CategoryTransport, rows[1].Category)
	amountEq(t, "250", rows[1].TotalAmount)
}

func TestByCategory_TieBreaksByName(t *testing.T) {
	txs := []models.Transaction{
		catTx("2024-04-01", models.TypeDebit, "100", models.CategoryTransport),
		catTx("2024-04-02", models.TypeDebit, "100", models.CategoryFood),
	}

	rows := ByCategory(txs)
	require.Len(t, rows, 2)
	assert.Equal(t, models.CategoryFood, rows[0].Category)
	assert.Equal(t, models.CategoryTransport, rows[1].Category)
}

func TestFiscalYearStart(t *testing.T) {
	assert.Equal(t, 2023, FiscalYearStart(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2023, FiscalYearStart(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2024, FiscalYearStart(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2024, FiscalYearStart(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestFiscalYearWindow(t *testing.T) {
	start, end := FiscalYearWindow(2023)
	assert.Equal(t, "2023-04-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-03-31", end.Format("2006-01-02"))
}

func TestCurrentFiscalYear(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("2024-04-01", models.TypeCredit, "50000"),
		tx("2024-05-15", models.TypeDebit, "1200"),
		tx("2024-03-31", models.TypeDebit, "999"), // previous fiscal year
	}

	row := CurrentFiscalYear(txs, today)
	require.NotNil(t, row)

	assert.Equal(t, "2024-2025", row.Label)
	amountEq(t, "50000", row.TotalCredit)
	amountEq(t, "1200", row.TotalDebit)
	assert.Equal(t, int64(2), row.Count)
}

func TestCurrentFiscalYear_NoTransactions(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("2022-05-01", models.TypeDebit, "100"),
	}

	assert.Nil(t, CurrentFiscalYear(txs, today))
	assert.Nil(t, CurrentFiscalYear(nil, today))
}

func TestLastThreeFiscalYears(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		// 2022-2023 window
		tx("2023-01-10", models.TypeDebit, "300"),
		// 2023-2024 window: a January date belongs to the window that
		// started the previous April, not to its calendar year.
		tx("2024-01-10", models.TypeCredit, "400"),
		// 2024-2025 window
		tx("2024-04-10", models.TypeDebit, "500"),
	}

	rows := LastThreeFiscalYears(txs, today)
	require.Len(t, rows, 3)

	assert.Equal(t, "2022-2023", rows[0].Label)
	amountEq(t, "300", rows[0].TotalDebit)

	assert.Equal(t, "2023-2024", rows[1].Label)
	amountEq(t, "400", rows[1].TotalCredit)

	assert.Equal(t, "2024-2025", rows[2].Label)
	amountEq(t, "500", rows[2].TotalDebit)
}

func TestLastThreeFiscalYears_SkipsEmptyWindows(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("2024-04-10", models.TypeDebit, "500"),
	}

	rows := LastThreeFiscalYears(txs, today)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-2025", rows[0].Label)
}

func TestGroupTotalsConserveSum(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-04-01", models.TypeCredit, "100.25"),
		tx("2024-04-01", models.TypeDebit, "40.10"),
		tx("2024-04-02", models.TypeDebit, "10"),
		tx("2024-05-20", models.TypeCredit, "77.77"),
		tx("2024-06-03", models.TypeDebit, "5.55"),
	}

	var wantCredit, wantDebit decimal.Decimal
	for _, tr := range txs {
		if tr.Type == models.TypeCredit {
			wantCredit = wantCredit.Add(tr.Amount)
		} else {
			wantDebit = wantDebit.Add(tr.Amount)
		}
	}

	var dailyCredit, dailyDebit decimal.Decimal
	for _, row := range Daily(txs) {
		dailyCredit = dailyCredit.Add(row.TotalCredit)
		dailyDebit = dailyDebit.Add(row.TotalDebit)
	}
	assert.True(t, dailyCredit.Equal(wantCredit))
	assert.True(t, dailyDebit.Equal(wantDebit))

	var weeklyCredit, weeklyDebit decimal.Decimal
	for _, row := range Weekly(txs) {
		weeklyCredit = weeklyCredit.Add(row.TotalCredit)
		weeklyDebit = weeklyDebit.Add(row.TotalDebit)
	}
	assert.True(t, weeklyCredit.Equal(wantCredit))
	assert.True(t, weeklyDebit.Equal(wantDebit))

	var monthlyCredit, monthlyDebit decimal.Decimal
	for _, row := range Monthly(txs, 2024) {
		monthlyCredit = monthlyCredit.Add(row.TotalCredit)
		monthlyDebit = monthlyDebit.Add(row.TotalDebit)
	}
	assert.True(t, monthlyCredit.Equal(wantCredit))
	assert.True(t, monthlyDebit.Equal(wantDebit))
}
