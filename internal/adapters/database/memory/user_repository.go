package memory

import (
	"context"
	"sort"
	"time"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
)

// SaveUser inserts a new user. ErrDuplicate when the email is already
// registered.
func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.emails[user.Email]; taken {
		return apperrors.ErrDuplicate
	}
	s.users[user.UserID] = user
	s.emails[user.Email] = user.UserID
	return nil
}

// FindUserByID retrieves one user by ID.
func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return cloneUser(user), nil
}

// FindUserByEmail retrieves one user by lowercase email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.emails[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := s.users[userID]
	return cloneUser(user), nil
}

// UpdateUser rewrites a user's mutable fields. ErrDuplicate when the new
// email belongs to a different user.
func (s *Store) UpdateUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.users[user.UserID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if owner, taken := s.emails[user.Email]; taken && owner != user.UserID {
		return apperrors.ErrDuplicate
	}
	if current.Email != user.Email {
		delete(s.emails, current.Email)
		s.emails[user.Email] = user.UserID
	}
	user.Password = current.Password
	user.IsAdmin = current.IsAdmin
	user.JoinDate = current.JoinDate
	s.users[user.UserID] = user
	return nil
}

// TouchLastActive refreshes a user's activity timestamp.
func (s *Store) TouchLastActive(ctx context.Context, userID string, when time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.LastActive = when
	s.users[userID] = user
	return nil
}

// ListUsers retrieves every user sorted by name.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// cloneUser deep-copies the embedded wallet slice so callers cannot mutate
// store state through a returned user.
func cloneUser(u domain.User) *domain.User {
	if len(u.Wallets) > 0 {
		wallets := make([]domain.WalletSnapshot, len(u.Wallets))
		copy(wallets, u.Wallets)
		u.Wallets = wallets
	}
	return &u
}
