package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

type TransactionCategory string

const (
	CategoryTransport     TransactionCategory = "transport"
	CategoryFood          TransactionCategory = "food"
	CategoryShopping      TransactionCategory = "shopping"
	CategoryUtilities     TransactionCategory = "utilities"
	CategoryEntertainment TransactionCategory = "entertainment"
	CategoryHealthcare    TransactionCategory = "healthcare"
	CategoryUncategorized TransactionCategory = "uncategorized"
)

// Transaction is one credit/debit movement extracted from a statement.
// Every transaction belongs to exactly one statement; deleting the statement
// deletes its transactions.
type Transaction struct {
	ID          uuid.UUID           `db:"id"`
	StatementID uuid.UUID           `db:"statement_id"`
	UserID      uuid.UUID           `db:"user_id"`
	Date        time.Time           `db:"date"`
	Description string              `db:"description"`
	Type        TransactionType     `db:"type"`
	Amount      decimal.Decimal     `db:"amount"`
	Category    TransactionCategory `db:"category"`
	CreatedAt   time.Time           `db:"created_at"`
}
