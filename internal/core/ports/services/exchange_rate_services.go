package services

import (
	"context"

	"github.com/currex/currex_backend/internal/core/domain"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data.
type ExchangeRateReaderSvc interface {
	// GetExchangeRate resolves one directional rate. Equal codes yield the
	// identity rate without a store lookup; an unstored pair is ErrNotFound.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every stored rate, sorted by pair.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// HistoricalRateSvc generates the synthetic historical series the SPA charts.
type HistoricalRateSvc interface {
	// GetHistoricalRates returns days+1 points, oldest first, derived from the
	// currently stored rate for the pair.
	GetHistoricalRates(ctx context.Context, fromCode, toCode string, days int) ([]domain.RatePoint, error)
}

// ExchangeRateSvcFacade combines all exchange-rate-related service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	HistoricalRateSvc
}
