package memory

import (
	"context"
	"sort"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
)

// SaveTransaction appends one ledger record.
func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txn)
	return nil
}

// FindTransactionByID retrieves a single ledger record.
func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.TransactionID == transactionID {
			txn := t
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTransactionsByUser retrieves one user's transactions newest first.
func (s *Store) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var txns []domain.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			txns = append(txns, t)
		}
	}
	sortNewestFirst(txns)
	return txns, nil
}

// ListTransactions retrieves every transaction newest first.
func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txns := make([]domain.Transaction, len(s.transactions))
	copy(txns, s.transactions)
	sortNewestFirst(txns)
	return txns, nil
}

// UpdateTransactionStatus sets the status of an existing record and returns
// the updated record.
func (s *Store) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].TransactionID == transactionID {
			s.transactions[i].Status = status
			txn := s.transactions[i]
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func sortNewestFirst(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool { return txns[i].Date.After(txns[j].Date) })
}
