package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine_Match(t *testing.T) {
	match, ok := ClassifyLine("01/04/2024 Uber Ride CREDIT 250.50")
	require.True(t, ok)

	assert.Equal(t, "01/04/2024", match.Date)
	assert.Equal(t, "Uber Ride", match.Description)
	assert.Equal(t, "CREDIT", match.Type)
	assert.Equal(t, "250.50", match.Amount)
}

func TestClassifyLine_DashSeparatedDate(t *testing.T) {
	match, ok := ClassifyLine("15-06-2023 Swiggy Order DEBIT 499")
	require.True(t, ok)

	assert.Equal(t, "15-06-2023", match.Date)
	assert.Equal(t, "Swiggy Order", match.Description)
	assert.Equal(t, "DEBIT", match.Type)
	assert.Equal(t, "499", match.Amount)
}

func TestClassifyLine_TypeTokenCaseInsensitive(t *testing.T) {
	match, ok := ClassifyLine("01/04/2024 Salary credit 1000")
	require.True(t, ok)
	assert.Equal(t, "credit", match.Type)

	match, ok = ClassifyLine("01/04/2024 Rent Debit 1000")
	require.True(t, ok)
	assert.Equal(t, "Debit", match.Type)
}

func TestClassifyLine_LazyDescription(t *testing.T) {
	// The lazy capture stops at the first type token that is followed by
	// an amount; a later CREDIT/DEBIT does not extend the match.
	match, ok := ClassifyLine("01/04/2024 Coffee Shop DEBIT 50 CREDIT 60")
	require.True(t, ok)

	assert.Equal(t, "Coffee Shop", match.Description)
	assert.Equal(t, "DEBIT", match.Type)
	assert.Equal(t, "50", match.Amount)

	// A type token not followed by an amount is absorbed into the
	// description instead of terminating it.
	match, ok = ClassifyLine("01/04/2024 Transfer DEBIT adjustment DEBIT 100.00")
	require.True(t, ok)

	assert.Equal(t, "Transfer DEBIT adjustment", match.Description)
	assert.Equal(t, "100.00", match.Amount)
}

func TestClassifyLine_NoMatch(t *testing.T) {
	cases := []string{
		"not a transaction line",
		"Account Summary for March",
		"1/4/2024 Uber CREDIT 100",    // one-digit day and month
		"01/04/24 Uber CREDIT 100",    // two-digit year
		"01/04/2024 CREDIT 100 Uber",  // amount before description
		"01/04/2024 Uber TRANSFER 10", // unknown type token
	}
	for _, line := range cases {
		_, ok := ClassifyLine(line)
		assert.False(t, ok, "line %q should not match", line)
	}
}

func TestClassifyLine_BlankLinesSkipped(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		_, ok := ClassifyLine(line)
		assert.False(t, ok)
	}
}
