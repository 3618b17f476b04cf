package dto

import (
	"time"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the body of the profile update endpoints.
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// WalletSnapshotResponse is the embedded wallet summary on a user.
type WalletSnapshotResponse struct {
	ID           string          `json:"id"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// UserResponse is the API shape of a user. The password never appears here.
type UserResponse struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Email      string                   `json:"email"`
	IsAdmin    bool                     `json:"isAdmin"`
	Wallets    []WalletSnapshotResponse `json:"wallets"`
	JoinDate   time.Time                `json:"joinDate"`
	LastActive time.Time                `json:"lastActive"`
}

// ToUserResponse converts a domain.User to its response DTO, stripping the
// stored password.
func ToUserResponse(u *domain.User) UserResponse {
	wallets := make([]WalletSnapshotResponse, len(u.Wallets))
	for i, w := range u.Wallets {
		wallets[i] = WalletSnapshotResponse{
			ID:           w.ID,
			CurrencyCode: w.CurrencyCode,
			Balance:      w.Balance,
			LastUpdated:  w.LastUpdated,
		}
	}
	return UserResponse{
		ID:         u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		IsAdmin:    u.IsAdmin,
		Wallets:    wallets,
		JoinDate:   u.JoinDate,
		LastActive: u.LastActive,
	}
}

// ToListUserResponse converts a slice of users to response DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
