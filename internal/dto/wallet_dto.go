package dto

import (
	"time"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreditWalletRequest is the body of the wallet credit endpoint. Amount may
// be negative (a debit); the service layer enforces the creation rules.
type CreditWalletRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateWalletRequest is the body of the explicit wallet creation endpoint.
type CreateWalletRequest struct {
	UserID       string          `json:"userId" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Balance      decimal.Decimal `json:"balance"`
}

// WalletResponse is the API shape of one wallet.
type WalletResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// ToWalletResponse converts a domain.Wallet to its response DTO.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:           w.WalletID,
		UserID:       w.UserID,
		CurrencyCode: w.CurrencyCode,
		Balance:      w.Balance,
		LastUpdated:  w.LastUpdated,
	}
}

// ToListWalletResponse converts a slice of wallets to response DTOs.
func ToListWalletResponse(wallets []domain.Wallet) []WalletResponse {
	responses := make([]WalletResponse, len(wallets))
	for i := range wallets {
		responses[i] = ToWalletResponse(&wallets[i])
	}
	return responses
}
