package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/currex/currex_backend/internal/core/ports"
	portssvc "github.com/currex/currex_backend/internal/core/ports/services"
	"github.com/currex/currex_backend/internal/dto"
	"github.com/currex/currex_backend/internal/middleware"
	"github.com/google/uuid"
)

// TransactionService owns the conversion ledger and runs the conversion
// workflow.
type TransactionService struct {
	txnRepo   ports.TransactionRepository
	rateSvc   portssvc.ExchangeRateReaderSvc
	walletSvc portssvc.WalletWriterSvc
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo ports.TransactionRepository, rateSvc portssvc.ExchangeRateReaderSvc, walletSvc portssvc.WalletWriterSvc) *TransactionService {
	return &TransactionService{
		txnRepo:   txnRepo,
		rateSvc:   rateSvc,
		walletSvc: walletSvc,
		now:       time.Now,
	}
}

// Convert executes a currency conversion: it validates the source amount,
// resolves the stored rate for the ordered pair, derives the destination
// amount, appends a completed ledger record, and credits the destination
// wallet.
//
// The source wallet is not debited on this path, and a ledger append followed
// by a failed wallet credit is not rolled back; both match the documented
// behavior of the system this one reproduces.
func (s *TransactionService) Convert(ctx context.Context, req dto.CreateConversionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.FromAmount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be a number greater than zero", apperrors.ErrValidation)
	}

	fromCurrency := strings.ToUpper(req.FromCurrency)
	toCurrency := strings.ToUpper(req.ToCurrency)

	rate, err := s.rateSvc.GetExchangeRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve conversion rate: %w", err)
	}

	toAmount := req.FromAmount.Mul(rate.Rate)

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        req.UserID,
		FromCurrency:  fromCurrency,
		ToCurrency:    toCurrency,
		FromAmount:    req.FromAmount,
		ToAmount:      toAmount,
		Rate:          rate.Rate,
		Status:        domain.TransactionCompleted,
		Date:          s.now(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if _, err := s.walletSvc.CreditWallet(ctx, req.UserID, toCurrency, toAmount); err != nil {
		// The ledger record is already written; surface the failure without
		// compensating.
		return nil, fmt.Errorf("failed to credit destination wallet: %w", err)
	}

	logger.Info("Conversion completed",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("user_id", txn.UserID),
		slog.String("from", fromCurrency),
		slog.String("to", toCurrency),
		slog.String("from_amount", req.FromAmount.String()),
		slog.String("to_amount", toAmount.String()),
	)

	return &txn, nil
}

// GetTransactionByID retrieves a single ledger record.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction in service: %w", err)
	}
	return txn, nil
}

// ListTransactions returns the ledger newest first, optionally filtered to
// one user.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var (
		txns []domain.Transaction
		err  error
	)
	if userID == "" {
		txns, err = s.txnRepo.ListTransactions(ctx)
	} else {
		txns, err = s.txnRepo.ListTransactionsByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	return txns, nil
}

// UpdateTransactionStatus sets the status of an existing ledger record.
func (s *TransactionService) UpdateTransactionStatus(ctx context.Context, transactionID string, status string) (*domain.Transaction, error) {
	newStatus := domain.TransactionStatus(status)
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: status must be pending, completed, or failed", apperrors.ErrValidation)
	}

	txn, err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, newStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction status in service: %w", err)
	}
	return txn, nil
}
