package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
)

// SaveExchangeRate upserts the rate for one ordered currency pair.
func (s *Store) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[rateKey(rate.FromCurrency, rate.ToCurrency)] = rate
	return nil
}

// FindExchangeRate retrieves the rate for the exact ordered pair. The reverse
// pair is a separate record and is never consulted here.
func (s *Store) FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rate, ok := s.rates[rateKey(fromCurrency, toCurrency)]
	if !ok {
		return nil, fmt.Errorf("%w: no exchange rate for %s to %s", apperrors.ErrNotFound, fromCurrency, toCurrency)
	}
	return &rate, nil
}

// ListExchangeRates retrieves every stored rate sorted by pair.
func (s *Store) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rates := make([]domain.ExchangeRate, 0, len(s.rates))
	for _, r := range s.rates {
		rates = append(rates, r)
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].FromCurrency != rates[j].FromCurrency {
			return rates[i].FromCurrency < rates[j].FromCurrency
		}
		return rates[i].ToCurrency < rates[j].ToCurrency
	})
	return rates, nil
}
