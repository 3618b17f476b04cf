package memory

import (
	"context"
	"sort"
	"time"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FindWallet retrieves one wallet by its (user, currency) pair.
func (s *Store) FindWallet(ctx context.Context, userID, currencyCode string) (*domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wallet, ok := s.wallets[walletKey(userID, currencyCode)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &wallet, nil
}

// FindWalletsByUser retrieves one user's wallets sorted by currency code.
func (s *Store) FindWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var wallets []domain.Wallet
	for _, w := range s.wallets {
		if w.UserID == userID {
			wallets = append(wallets, w)
		}
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].CurrencyCode < wallets[j].CurrencyCode })
	return wallets, nil
}

// ListWallets retrieves every wallet sorted by currency code.
func (s *Store) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wallets := make([]domain.Wallet, 0, len(s.wallets))
	for _, w := range s.wallets {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].CurrencyCode < wallets[j].CurrencyCode })
	return wallets, nil
}

// CreateWallet inserts a new wallet. ErrDuplicate when the (user, currency)
// pair already exists; the write lock stands in for the pgsql unique
// constraint.
func (s *Store) CreateWallet(ctx context.Context, wallet domain.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := walletKey(wallet.UserID, wallet.CurrencyCode)
	if _, ok := s.wallets[key]; ok {
		return apperrors.ErrDuplicate
	}
	s.wallets[key] = wallet
	return nil
}

// CreditWallet adds amount to an existing wallet's balance under the write
// lock and returns the updated wallet. ErrNotFound when it does not exist.
func (s *Store) CreditWallet(ctx context.Context, userID, currencyCode string, amount decimal.Decimal, now time.Time) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := walletKey(userID, currencyCode)
	wallet, ok := s.wallets[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	wallet.Balance = wallet.Balance.Add(amount)
	wallet.LastUpdated = now
	s.wallets[key] = wallet
	return &wallet, nil
}
