package services

import (
	"context"

	"github.com/currex/currex_backend/internal/core/domain"
)

// CurrencySvcFacade exposes read access to the currency reference data.
// Currencies are seeded, never written through the API, so there is no
// writer counterpart.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a specific currency, case-insensitively.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies, sorted by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
