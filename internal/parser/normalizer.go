package parser

import (
	"fmt"
	"strings"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// Transaction is a normalized, categorized line before it is bound to a
// statement record.
type Transaction struct {
	Date        time.Time
	Description string
	Type        models.TransactionType
	Amount      decimal.Decimal
	Category    models.TransactionCategory
}

var dateLayouts = []string{"02/01/2006", "02-01-2006"}

// normalize converts raw captures into typed values. Any failure means the
// line is dropped, never that the extraction fails.
func normalize(m Match) (Transaction, error) {
	date, err := parseDate(m.Date)
	if err != nil {
		return Transaction{}, err
	}

	description := strings.TrimSpace(m.Description)
	if description == "" {
		return Transaction{}, fmt.Errorf("empty description")
	}

	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount %q: %w", m.Amount, err)
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("negative amount %q", m.Amount)
	}

	return Transaction{
		Date:        date,
		Description: description,
		Type:        models.TransactionType(strings.ToLower(m.Type)),
		Amount:      amount,
	}, nil
}

// parseDate applies strict calendar validation: out-of-range values such as
// day 32 are rejected rather than rolled over.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
