package dto

import (
	"time"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse is the API shape of one directional rate.
type ExchangeRateResponse struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// HistoricalRateQuery binds the ?days=N parameter of the historical endpoint.
type HistoricalRateQuery struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		LastUpdated:  rate.LastUpdated,
	}
}

// ToListExchangeRateResponse converts a slice of rates to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
