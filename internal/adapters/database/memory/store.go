// Package memory provides an in-process implementation of every repository
// port. It backs the demo/fallback mode selected at startup when no Postgres
// is reachable (or when USE_MEMORY_STORE is set), so the rest of the
// application is wired identically in both modes.
package memory

import (
	"context"
	"sync"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/currex/currex_backend/internal/core/ports"
)

// Store holds all application state in maps guarded by a single RWMutex.
// Mutating operations take the write lock for their full duration, which
// makes CreditWallet's read-modify-write atomic and gives CreateWallet the
// same uniqueness guarantee the pgsql schema enforces with constraints.
type Store struct {
	mu sync.RWMutex

	currencies   map[string]domain.Currency     // code -> currency
	rates        map[string]domain.ExchangeRate // "FROM|TO" -> rate
	wallets      map[string]domain.Wallet       // "userID|CODE" -> wallet
	transactions []domain.Transaction           // insertion order
	users        map[string]domain.User         // userID -> user
	emails       map[string]string              // lowercase email -> userID
}

// NewStore creates an empty Store pre-seeded with the reference currencies
// and exchange rate matrix.
func NewStore() *Store {
	s := &Store{
		currencies: make(map[string]domain.Currency),
		rates:      make(map[string]domain.ExchangeRate),
		wallets:    make(map[string]domain.Wallet),
		users:      make(map[string]domain.User),
		emails:     make(map[string]string),
	}
	s.seed()
	return s
}

// Provider bundles the store behind every repository port.
func (s *Store) Provider() *ports.RepositoryProvider {
	return &ports.RepositoryProvider{
		Currency:     s,
		ExchangeRate: s,
		Wallet:       s,
		Transaction:  s,
		User:         s,
		Health:       s,
	}
}

// Ping always succeeds; the store lives in process memory.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// Name identifies the storage backend on the health endpoint.
func (s *Store) Name() string {
	return "memory"
}

func rateKey(from, to string) string {
	return from + "|" + to
}

func walletKey(userID, currencyCode string) string {
	return userID + "|" + currencyCode
}
