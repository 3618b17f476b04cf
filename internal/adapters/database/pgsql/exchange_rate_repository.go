package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements ports.ExchangeRateRepository using pgxpool.
type PgxExchangeRateRepository struct {
	db *pgxpool.Pool
}

// NewExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{db: db}
}

// SaveExchangeRate upserts the rate for one ordered currency pair. Used by
// seeding and the external rate feed.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (rate_id, from_currency, to_currency, rate, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (from_currency, to_currency)
		DO UPDATE SET rate = EXCLUDED.rate, last_updated = EXCLUDED.last_updated
	`
	_, err := r.db.Exec(ctx, query,
		rate.RateID, rate.FromCurrency, rate.ToCurrency, rate.Rate, rate.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("error saving exchange rate: %w", err)
	}
	return nil
}

// FindExchangeRate retrieves the rate for the exact ordered pair. The reverse
// pair is a separate record and is never consulted here.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	query := `
		SELECT rate_id, from_currency, to_currency, rate, last_updated
		FROM exchange_rates
		WHERE from_currency = $1 AND to_currency = $2
	`
	rate := &domain.ExchangeRate{}
	err := r.db.QueryRow(ctx, query, fromCurrency, toCurrency).Scan(
		&rate.RateID, &rate.FromCurrency, &rate.ToCurrency, &rate.Rate, &rate.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no exchange rate for %s to %s", apperrors.ErrNotFound, fromCurrency, toCurrency)
		}
		return nil, fmt.Errorf("error finding exchange rate: %w", err)
	}
	return rate, nil
}

// ListExchangeRates retrieves every stored rate sorted by pair.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT rate_id, from_currency, to_currency, rate, last_updated
		FROM exchange_rates
		ORDER BY from_currency, to_currency
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing exchange rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		var rate domain.ExchangeRate
		if err := rows.Scan(&rate.RateID, &rate.FromCurrency, &rate.ToCurrency, &rate.Rate, &rate.LastUpdated); err != nil {
			return nil, fmt.Errorf("error scanning exchange rate: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rates: %w", err)
	}
	return rates, nil
}
