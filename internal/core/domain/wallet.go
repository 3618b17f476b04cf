package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a per (user, currency) balance record. One row per pair, created
// lazily on first credit. Balance is only ever mutated by addition; there is
// no lower bound on an existing wallet's balance.
type Wallet struct {
	WalletID     string          `json:"id"`
	UserID       string          `json:"userId"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}
