package dto

import (
	"time"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateConversionRequest is the body of POST /transactions and drives the
// conversion workflow. Only the source amount is accepted; the destination
// amount is derived server-side from the stored rate.
type CreateConversionRequest struct {
	UserID       string          `json:"userId" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"required,currencycode"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currencycode"`
	FromAmount   decimal.Decimal `json:"fromAmount" binding:"required"`
}

// UpdateTransactionStatusRequest is the body of PUT /transactions/:id.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed failed"`
}

// TransactionListQuery binds the optional ?userId= filter.
type TransactionListQuery struct {
	UserID string `form:"userId"`
}

// TransactionResponse is the API shape of one ledger record.
type TransactionResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToAmount     decimal.Decimal `json:"toAmount"`
	Rate         decimal.Decimal `json:"rate"`
	Status       string          `json:"status"`
	Date         time.Time       `json:"date"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.TransactionID,
		UserID:       t.UserID,
		FromCurrency: t.FromCurrency,
		ToCurrency:   t.ToCurrency,
		FromAmount:   t.FromAmount,
		ToAmount:     t.ToAmount,
		Rate:         t.Rate,
		Status:       string(t.Status),
		Date:         t.Date,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
