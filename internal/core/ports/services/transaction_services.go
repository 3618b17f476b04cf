package services

import (
	"context"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/currex/currex_backend/internal/dto"
)

// ConversionSvc runs the currency conversion workflow: amount validation,
// rate resolution, destination amount arithmetic, ledger append and the
// destination wallet credit.
type ConversionSvc interface {
	Convert(ctx context.Context, req dto.CreateConversionRequest) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read access to the conversion ledger.
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns the ledger newest first; a non-empty userID
	// filters to that user's transactions.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the administrative status update.
type TransactionWriterSvc interface {
	// UpdateTransactionStatus sets the status of an existing transaction.
	// Statuses outside {pending, completed, failed} are ErrValidation.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all ledger-related service interfaces.
type TransactionSvcFacade interface {
	ConversionSvc
	TransactionReaderSvc
	TransactionWriterSvc
}
