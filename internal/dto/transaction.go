package dto

import "github.com/shopspring/decimal"

type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	CreatedAt   string          `json:"created_at"`
}
