package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxWalletRepository implements ports.WalletRepository using pgxpool.
//
// The wallets table carries UNIQUE (user_id, currency_code), so wallet
// creation cannot race into duplicates, and credits are applied as a single
// balance = balance + $n statement so concurrent credits stay sum-correct.
type PgxWalletRepository struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new PgxWalletRepository.
func NewWalletRepository(db *pgxpool.Pool) *PgxWalletRepository {
	return &PgxWalletRepository{db: db}
}

// FindWallet retrieves one wallet by its (user, currency) pair.
func (r *PgxWalletRepository) FindWallet(ctx context.Context, userID, currencyCode string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, user_id, currency_code, balance, last_updated
		FROM wallets
		WHERE user_id = $1 AND currency_code = $2
	`
	wallet := &domain.Wallet{}
	err := r.db.QueryRow(ctx, query, userID, currencyCode).Scan(
		&wallet.WalletID, &wallet.UserID, &wallet.CurrencyCode, &wallet.Balance, &wallet.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding wallet: %w", err)
	}
	return wallet, nil
}

// FindWalletsByUser retrieves one user's wallets sorted by currency code.
func (r *PgxWalletRepository) FindWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	query := `
		SELECT wallet_id, user_id, currency_code, balance, last_updated
		FROM wallets
		WHERE user_id = $1
		ORDER BY currency_code
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing user wallets: %w", err)
	}
	defer rows.Close()
	return scanWallets(rows)
}

// ListWallets retrieves every wallet sorted by currency code.
func (r *PgxWalletRepository) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	query := `
		SELECT wallet_id, user_id, currency_code, balance, last_updated
		FROM wallets
		ORDER BY currency_code
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing wallets: %w", err)
	}
	defer rows.Close()
	return scanWallets(rows)
}

// CreateWallet inserts a new wallet row. ErrDuplicate when the
// (user, currency) pair already exists.
func (r *PgxWalletRepository) CreateWallet(ctx context.Context, wallet domain.Wallet) error {
	query := `
		INSERT INTO wallets (wallet_id, user_id, currency_code, balance, last_updated)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		wallet.WalletID, wallet.UserID, wallet.CurrencyCode, wallet.Balance, wallet.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("error inserting wallet: %w", err)
	}
	return nil
}

// CreditWallet atomically adds amount to an existing wallet's balance and
// returns the updated row. ErrNotFound when the wallet does not exist; the
// create-or-reject decision for missing wallets belongs to the service layer.
func (r *PgxWalletRepository) CreditWallet(ctx context.Context, userID, currencyCode string, amount decimal.Decimal, now time.Time) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $3, last_updated = $4
		WHERE user_id = $1 AND currency_code = $2
		RETURNING wallet_id, user_id, currency_code, balance, last_updated
	`
	wallet := &domain.Wallet{}
	err := r.db.QueryRow(ctx, query, userID, currencyCode, amount, now).Scan(
		&wallet.WalletID, &wallet.UserID, &wallet.CurrencyCode, &wallet.Balance, &wallet.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error crediting wallet: %w", err)
	}
	return wallet, nil
}

func scanWallets(rows pgx.Rows) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.WalletID, &w.UserID, &w.CurrencyCode, &w.Balance, &w.LastUpdated); err != nil {
			return nil, fmt.Errorf("error scanning wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallets: %w", err)
	}
	return wallets, nil
}
