package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletSnapshot is the wallet summary embedded on a User. It mirrors the
// standalone Wallet records but is written independently of them; nothing
// keeps the two representations synchronized (known gap in the reference
// system, preserved here).
type WalletSnapshot struct {
	ID           string          `json:"id"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// User is an account holder.
//
// Password is stored and compared in plaintext, matching the reference
// implementation this system reproduces. Handlers must strip it from every
// response via the DTO layer.
type User struct {
	UserID     string           `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"` // unique, stored lowercase
	Password   string           `json:"-"`
	IsAdmin    bool             `json:"isAdmin"`
	Wallets    []WalletSnapshot `json:"wallets"`
	JoinDate   time.Time        `json:"joinDate"`
	LastActive time.Time        `json:"lastActive"`
}
