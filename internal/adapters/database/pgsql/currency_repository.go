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

// PgxCurrencyRepository implements ports.CurrencyRepository using pgxpool.
type PgxCurrencyRepository struct {
	db *pgxpool.Pool
}

// NewCurrencyRepository creates a new PgxCurrencyRepository.
func NewCurrencyRepository(db *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{db: db}
}

// SaveCurrency inserts a reference currency. Used by seeding only.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		INSERT INTO currencies (code, name, symbol, flag, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		currency.Code, currency.Name, currency.Symbol, currency.Flag, currency.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting currency: %w", err)
	}
	return nil
}

// FindCurrencyByCode retrieves one currency by its uppercase code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT code, name, symbol, flag, created_at
		FROM currencies
		WHERE code = $1
	`
	currency := &domain.Currency{}
	err := r.db.QueryRow(ctx, query, code).Scan(
		&currency.Code, &currency.Name, &currency.Symbol, &currency.Flag, &currency.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding currency: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves every currency sorted by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT code, name, symbol, flag, created_at
		FROM currencies
		ORDER BY code
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing currencies: %w", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.Code, &c.Name, &c.Symbol, &c.Flag, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning currency: %w", err)
		}
		currencies = append(currencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currencies: %w", err)
	}
	return currencies, nil
}
