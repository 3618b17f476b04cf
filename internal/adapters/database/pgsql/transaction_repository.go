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

// PgxTransactionRepository implements ports.TransactionRepository using pgxpool.
type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new PgxTransactionRepository.
func NewTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// SaveTransaction appends one ledger record.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, user_id, from_currency, to_currency,
			from_amount, to_amount, rate, status, date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID, txn.UserID, txn.FromCurrency, txn.ToCurrency,
		txn.FromAmount, txn.ToAmount, txn.Rate, txn.Status, txn.Date,
	)
	if err != nil {
		return fmt.Errorf("error inserting transaction: %w", err)
	}
	return nil
}

// FindTransactionByID retrieves a single ledger record.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, from_currency, to_currency,
			from_amount, to_amount, rate, status, date
		FROM transactions
		WHERE transaction_id = $1
	`
	txn := &domain.Transaction{}
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&txn.TransactionID, &txn.UserID, &txn.FromCurrency, &txn.ToCurrency,
		&txn.FromAmount, &txn.ToAmount, &txn.Rate, &txn.Status, &txn.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding transaction: %w", err)
	}
	return txn, nil
}

// ListTransactionsByUser retrieves one user's transactions newest first.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, from_currency, to_currency,
			from_amount, to_amount, rate, status, date
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing user transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListTransactions retrieves every transaction newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, from_currency, to_currency,
			from_amount, to_amount, rate, status, date
		FROM transactions
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// UpdateTransactionStatus sets the status of an existing record and returns
// the updated row.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = $2
		WHERE transaction_id = $1
		RETURNING transaction_id, user_id, from_currency, to_currency,
			from_amount, to_amount, rate, status, date
	`
	txn := &domain.Transaction{}
	err := r.db.QueryRow(ctx, query, transactionID, status).Scan(
		&txn.TransactionID, &txn.UserID, &txn.FromCurrency, &txn.ToCurrency,
		&txn.FromAmount, &txn.ToAmount, &txn.Rate, &txn.Status, &txn.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error updating transaction status: %w", err)
	}
	return txn, nil
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.TransactionID, &t.UserID, &t.FromCurrency, &t.ToCurrency,
			&t.FromAmount, &t.ToAmount, &t.Rate, &t.Status, &t.Date,
		); err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return txns, nil
}
