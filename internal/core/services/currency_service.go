package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/currex/currex_backend/internal/core/ports"
)

// CurrencyService provides read access to the currency reference data.
type CurrencyService struct {
	currencyRepo ports.CurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo ports.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// GetCurrencyByCode retrieves a specific currency by its code, ignoring case.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all available currencies, sorted by code.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	return currencies, nil
}
