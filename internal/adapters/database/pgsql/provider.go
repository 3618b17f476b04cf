package pgsql

import (
	"errors"

	"github.com/currex/currex_backend/internal/core/ports"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider bundles the pgx-backed implementation of every
// repository port. health is the connection manager owning the pool.
func NewRepositoryProvider(db *pgxpool.Pool, health ports.HealthChecker) *ports.RepositoryProvider {
	return &ports.RepositoryProvider{
		Currency:     NewCurrencyRepository(db),
		ExchangeRate: NewExchangeRateRepository(db),
		Wallet:       NewWalletRepository(db),
		Transaction:  NewTransactionRepository(db),
		User:         NewUserRepository(db),
		Health:       health,
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
