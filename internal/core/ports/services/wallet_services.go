package services

import (
	"context"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/currex/currex_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// WalletReaderSvc defines read operations for wallet balances.
type WalletReaderSvc interface {
	// GetUserWallets lists one user's wallets, sorted by currency code.
	GetUserWallets(ctx context.Context, userID string) ([]domain.Wallet, error)

	// ListWallets lists every wallet (administrative view).
	ListWallets(ctx context.Context) ([]domain.Wallet, error)
}

// WalletWriterSvc defines the balance mutation operations.
type WalletWriterSvc interface {
	// CreditWallet adds amount to the (userID, code) wallet balance; amount
	// may be negative. A missing wallet is created when amount >= 0 and
	// rejected with ErrInsufficientFunds otherwise.
	CreditWallet(ctx context.Context, userID, currencyCode string, amount decimal.Decimal) (*domain.Wallet, error)

	// CreateWallet explicitly creates a wallet; ErrDuplicate when the
	// (userID, currencyCode) pair already exists.
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error)
}

// WalletSvcFacade combines all wallet-related service interfaces.
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
