package parser

import (
	"strings"
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtract_SingleLine(t *testing.T) {
	result := NewExtractor(nil).Extract("01/04/2024 Uber Ride CREDIT 250.50")

	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]

	assert.Equal(t, date(2024, time.April, 1), tx.Date)
	assert.Equal(t, "Uber Ride", tx.Description)
	assert.Equal(t, models.TypeCredit, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("250.50")))
	assert.Equal(t, models.CategoryTransport, tx.Category)
}

func TestExtract_FullDocument(t *testing.T) {
	text := strings.Join([]string{
		"HDFC BANK STATEMENT",
		"Account: XXXX1234",
		"",
		"05/04/2024 Swiggy Order DEBIT 499.00",
		"01/04/2024 Salary April CREDIT 50000",
		"not a transaction line",
		"20-04-2024 Netflix Subscription debit 649",
		"",
	}, "\n")

	result := NewExtractor(nil).Extract(text)

	require.Len(t, result.Transactions, 3)
	// Document order is preserved, not date order.
	assert.Equal(t, "Swiggy Order", result.Transactions[0].Description)
	assert.Equal(t, "Salary April", result.Transactions[1].Description)
	assert.Equal(t, "Netflix Subscription", result.Transactions[2].Description)

	assert.Equal(t, models.CategoryFood, result.Transactions[0].Category)
	assert.Equal(t, models.CategoryUncategorized, result.Transactions[1].Category)
	assert.Equal(t, models.CategoryEntertainment, result.Transactions[2].Category)

	assert.Equal(t, date(2024, time.April, 1), result.StartDate)
	assert.Equal(t, date(2024, time.April, 20), result.EndDate)
	assert.Empty(t, result.Dropped)
}

func TestExtract_NoTransactionsDefaultsSpanToNow(t *testing.T) {
	before := time.Now()
	result := NewExtractor(nil).Extract("nothing here\n\njust prose")
	after := time.Now()

	assert.Empty(t, result.Transactions)
	assert.Equal(t, result.StartDate, result.EndDate)
	assert.False(t, result.StartDate.Before(before))
	assert.False(t, result.StartDate.After(after))
}

func TestExtract_InvalidDateDropsLine(t *testing.T) {
	// Day 32 fails strict calendar validation; the rest of the document
	// still parses.
	text := "32/01/2024 Ghost Entry DEBIT 10\n01/04/2024 Uber Ride DEBIT 100"

	result := NewExtractor(nil).Extract(text)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Uber Ride", result.Transactions[0].Description)

	require.Len(t, result.Dropped, 1)
	assert.Equal(t, 1, result.Dropped[0].LineNo)
	assert.Contains(t, result.Dropped[0].Reason, "invalid date")
}

func TestExtract_MixedDateSeparatorsDropLine(t *testing.T) {
	result := NewExtractor(nil).Extract("01/04-2024 Odd Separators DEBIT 10")

	assert.Empty(t, result.Transactions)
	require.Len(t, result.Dropped, 1)
}

func TestExtract_DescriptionTrimmed(t *testing.T) {
	result := NewExtractor(nil).Extract("01/04/2024   Uber Ride   DEBIT 100")

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Uber Ride", result.Transactions[0].Description)
}

func TestExtract_TypeLowerCased(t *testing.T) {
	result := NewExtractor(nil).Extract("01/04/2024 Salary Credit 100")

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, models.TypeCredit, result.Transactions[0].Type)
}
