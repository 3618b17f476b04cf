package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/currex/currex_backend/internal/core/ports"
	"github.com/shopspring/decimal"
)

const defaultHistoricalDays = 30

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	rateRepo ports.ExchangeRateRepository
	now      func() time.Time
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo ports.ExchangeRateRepository) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo: rateRepo,
		now:      time.Now,
	}
}

// GetExchangeRate resolves one directional rate. Equal codes (ignoring case)
// yield the identity rate without touching the store. Otherwise only the
// exact ordered pair is consulted: no triangulation through a third currency
// and no derivation from the reverse pair, so an unstored pair is ErrNotFound
// even when the reverse rate exists.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	if fromCode == toCode {
		return &domain.ExchangeRate{
			FromCurrency: fromCode,
			ToCurrency:   toCode,
			Rate:         decimal.NewFromInt(1),
			LastUpdated:  s.now(),
		}, nil
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// ListExchangeRates retrieves every stored rate, sorted by pair.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	return rates, nil
}

// GetHistoricalRates builds the synthetic historical series for a pair: the
// stored current rate perturbed by uniform noise in [0.95, 1.05), one point
// per day, oldest first, days+1 points in total. The series is regenerated on
// every call; nothing is persisted. The pair must have a stored current rate,
// so an identity pair without one is still ErrNotFound here, matching the
// reference behavior.
func (s *ExchangeRateService) GetHistoricalRates(ctx context.Context, fromCode, toCode string, days int) ([]domain.RatePoint, error) {
	if days <= 0 {
		days = defaultHistoricalDays
	}

	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	current, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get current rate for historical series: %w", err)
	}

	points := make([]domain.RatePoint, 0, days+1)
	today := s.now()
	for i := days; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		fluctuation := decimal.NewFromFloat(0.95 + rand.Float64()*0.1)
		points = append(points, domain.RatePoint{
			Date: date.Format("2006-01-02"),
			Rate: current.Rate.Mul(fluctuation).Round(4),
		})
	}
	return points, nil
}
