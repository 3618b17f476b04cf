package ports

import (
	"context"
	"time"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Note: context is included on every operation for cancellation/timeouts.
// Implementations map driver-level errors onto the apperrors sentinels
// (no-rows -> ErrNotFound, unique violation -> ErrDuplicate).

// CurrencyRepository defines persistence operations for reference currencies.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error // seeding only
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateRepository defines persistence operations for exchange rates.
// Rates are read-only from the application's perspective; SaveExchangeRate
// exists for seeding and the external rate feed.
type ExchangeRateRepository interface {
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
	FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error)
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// WalletRepository defines persistence operations for per-user, per-currency
// balances. CreditWallet must apply the balance change as a storage-level
// atomic increment so concurrent credits to the same wallet stay sum-correct;
// CreateWallet must be guarded by a uniqueness constraint on
// (userID, currencyCode) so first-use creation cannot race into duplicates.
type WalletRepository interface {
	FindWallet(ctx context.Context, userID, currencyCode string) (*domain.Wallet, error)
	FindWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error)
	ListWallets(ctx context.Context) ([]domain.Wallet, error)
	CreateWallet(ctx context.Context, wallet domain.Wallet) error
	CreditWallet(ctx context.Context, userID, currencyCode string, amount decimal.Decimal, now time.Time) (*domain.Wallet, error)
}

// TransactionRepository defines persistence operations for the conversion
// ledger. Listings are returned newest first.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error)
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	TouchLastActive(ctx context.Context, userID string, when time.Time) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// HealthChecker reports storage connectivity for the health endpoint.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// RepositoryProvider bundles one implementation of every repository port.
// Exactly one provider is constructed per process (pgsql or memory) and
// injected into the service container, so no per-route storage branching
// exists anywhere downstream.
type RepositoryProvider struct {
	Currency     CurrencyRepository
	ExchangeRate ExchangeRateRepository
	Wallet       WalletRepository
	Transaction  TransactionRepository
	User         UserRepository
	Health       HealthChecker
}
