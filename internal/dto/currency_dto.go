package dto

import (
	"github.com/currex/currex_backend/internal/core/domain"
)

// CurrencyResponse is the API shape of one reference currency.
type CurrencyResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Flag   string `json:"flag"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:   c.Code,
		Name:   c.Name,
		Symbol: c.Symbol,
		Flag:   c.Flag,
	}
}

// ToListCurrencyResponse converts a slice of currencies to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	return responses
}
