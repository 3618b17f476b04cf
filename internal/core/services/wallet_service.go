package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/currex/currex_backend/internal/core/ports"
	"github.com/currex/currex_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletService provides business logic for per-user, per-currency balances.
type WalletService struct {
	walletRepo ports.WalletRepository
	now        func() time.Time
}

// NewWalletService creates a new WalletService.
func NewWalletService(walletRepo ports.WalletRepository) *WalletService {
	return &WalletService{
		walletRepo: walletRepo,
		now:        time.Now,
	}
}

// GetUserWallets lists one user's wallets, sorted by currency code.
func (s *WalletService) GetUserWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}
	wallets, err := s.walletRepo.FindWalletsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user wallets in service: %w", err)
	}
	return wallets, nil
}

// ListWallets lists every wallet (administrative view).
func (s *WalletService) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWallets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets in service: %w", err)
	}
	return wallets, nil
}

// CreditWallet adds amount to the wallet balance, creating the wallet on
// first use when amount is non-negative. A negative amount against a missing
// wallet is ErrInsufficientFunds: a wallet cannot come into existence with a
// negative balance. An existing wallet has no lower bound, so a negative
// amount larger than the current balance is applied as-is and drives the
// balance negative.
func (s *WalletService) CreditWallet(ctx context.Context, userID, currencyCode string, amount decimal.Decimal) (*domain.Wallet, error) {
	if userID == "" || currencyCode == "" {
		return nil, fmt.Errorf("%w: user ID and currency code are required", apperrors.ErrValidation)
	}
	currencyCode = strings.ToUpper(currencyCode)
	now := s.now()

	// The repository applies the credit as an atomic increment so concurrent
	// credits to the same wallet stay sum-correct.
	wallet, err := s.walletRepo.CreditWallet(ctx, userID, currencyCode, amount, now)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to credit wallet in service: %w", err)
	}

	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: cannot create wallet with negative balance", apperrors.ErrInsufficientFunds)
	}

	created := domain.Wallet{
		WalletID:     uuid.NewString(),
		UserID:       userID,
		CurrencyCode: currencyCode,
		Balance:      amount,
		LastUpdated:  now,
	}
	err = s.walletRepo.CreateWallet(ctx, created)
	if err == nil {
		return &created, nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Lost a creation race; the constraint guarantees the wallet now
		// exists, so apply the credit to it.
		wallet, err = s.walletRepo.CreditWallet(ctx, userID, currencyCode, amount, now)
		if err != nil {
			return nil, fmt.Errorf("failed to credit wallet after creation race: %w", err)
		}
		return wallet, nil
	}
	return nil, fmt.Errorf("failed to create wallet in service: %w", err)
}

// CreateWallet explicitly creates a wallet for a (user, currency) pair.
func (s *WalletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	wallet := domain.Wallet{
		WalletID:     uuid.NewString(),
		UserID:       req.UserID,
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Balance:      req.Balance,
		LastUpdated:  s.now(),
	}
	if err := s.walletRepo.CreateWallet(ctx, wallet); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: wallet for %s already exists for this user", apperrors.ErrDuplicate, wallet.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to create wallet in service: %w", err)
	}
	return &wallet, nil
}
