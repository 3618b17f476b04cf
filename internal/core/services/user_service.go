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

// UserService provides the account lifecycle and user administration logic.
//
// Passwords are stored and compared in plaintext and sessions are restored
// from a client-stored email, both deliberate reproductions of the demo
// system's behavior.
type UserService struct {
	userRepo         ports.UserRepository
	startingCurrency string
	startingBalance  decimal.Decimal
	now              func() time.Time
}

// NewUserService creates a new UserService. Every registration seeds one
// embedded wallet snapshot in startingCurrency with startingBalance.
func NewUserService(userRepo ports.UserRepository, startingCurrency string, startingBalance decimal.Decimal) *UserService {
	return &UserService{
		userRepo:         userRepo,
		startingCurrency: strings.ToUpper(startingCurrency),
		startingBalance:  startingBalance,
		now:              time.Now,
	}
}

// Register creates a new user. The email is normalized to lowercase and must
// be unique; the seeded wallet snapshot lives on the user record only, the
// standalone wallet rows are created lazily on first credit.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	now := s.now()

	user := domain.User{
		UserID:   uuid.NewString(),
		Name:     req.Name,
		Email:    email,
		Password: req.Password,
		IsAdmin:  false,
		Wallets: []domain.WalletSnapshot{
			{
				ID:           fmt.Sprintf("wallet-%d-1", now.UnixMilli()),
				CurrencyCode: s.startingCurrency,
				Balance:      s.startingBalance,
				LastUpdated:  now,
			},
		},
		JoinDate:   now,
		LastActive: now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: user with this email already exists", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to register user in service: %w", err)
	}

	return &user, nil
}

// Login verifies the email/password pair and refreshes lastActive.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user in service: %w", err)
	}

	// Plaintext compare, matching the reference system.
	if user.Password != req.Password {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	s.touch(ctx, user)
	return user, nil
}

// AuthenticateByEmail restores a session from a client-stored email.
func (s *UserService) AuthenticateByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: no authentication information provided", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user in service: %w", err)
	}

	s.touch(ctx, user)
	return user, nil
}

// GetUserByID retrieves a single user.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

// ListUsers returns all users sorted by name (administrative view).
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users in service: %w", err)
	}
	return users, nil
}

// UpdateUserProfile changes a user's name and email. The new email must not
// belong to another user.
func (s *UserService) UpdateUserProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user for update in service: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != user.Email {
		existing, err := s.userRepo.FindUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email uniqueness in service: %w", err)
		}
		if existing != nil && existing.UserID != userID {
			return nil, fmt.Errorf("%w: email is already taken by another user", apperrors.ErrDuplicate)
		}
	}

	user.Name = req.Name
	user.Email = email
	user.LastActive = s.now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email is already taken by another user", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update user in service: %w", err)
	}

	return user, nil
}

// TouchLastActive records user activity, e.g. on logout.
func (s *UserService) TouchLastActive(ctx context.Context, userID string) error {
	if err := s.userRepo.TouchLastActive(ctx, userID, s.now()); err != nil {
		return fmt.Errorf("failed to touch last active in service: %w", err)
	}
	return nil
}

// touch refreshes lastActive without failing the calling operation.
func (s *UserService) touch(ctx context.Context, user *domain.User) {
	now := s.now()
	if err := s.userRepo.TouchLastActive(ctx, user.UserID, now); err == nil {
		user.LastActive = now
	}
}
