package memory

import (
	"context"
	"sort"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
)

// SaveCurrency inserts a reference currency; existing codes are left as-is.
func (s *Store) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currencies[currency.Code]; ok {
		return nil
	}
	s.currencies[currency.Code] = currency
	return nil
}

// FindCurrencyByCode retrieves one currency by its uppercase code.
func (s *Store) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	currency, ok := s.currencies[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &currency, nil
}

// ListCurrencies retrieves every currency sorted by code.
func (s *Store) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	currencies := make([]domain.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		currencies = append(currencies, c)
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].Code < currencies[j].Code })
	return currencies, nil
}
