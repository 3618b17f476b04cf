package services

import (
	"context"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/currex/currex_backend/internal/dto"
)

// UserAuthSvc covers the account lifecycle: registration, login and the
// email-based session restore the SPA uses in place of signed tokens.
type UserAuthSvc interface {
	// Register creates a new user with a seeded starting wallet snapshot.
	// ErrDuplicate when the email is already registered.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies the email/password pair and refreshes lastActive.
	// ErrUnauthorized on any mismatch.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error)

	// AuthenticateByEmail restores a session from a client-stored email.
	// ErrUnauthorized when no user holds the email.
	AuthenticateByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserReaderSvc defines read operations on users.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns all users sorted by name (administrative view).
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines profile mutation operations.
type UserWriterSvc interface {
	// UpdateUserProfile changes name and email; ErrDuplicate when the email
	// belongs to another user.
	UpdateUserProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// TouchLastActive records activity, e.g. on logout.
	TouchLastActive(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserAuthSvc
	UserReaderSvc
	UserWriterSvc
}
