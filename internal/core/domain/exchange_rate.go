package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one directional conversion rate, keyed by the ordered
// (from, to) pair. The reverse pair is a distinct record; nothing enforces
// rate(A,B) == 1/rate(B,A).
type ExchangeRate struct {
	RateID       string          `json:"rateID"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// RatePoint is one day of a synthetic historical rate series.
type RatePoint struct {
	Date string          `json:"date"` // YYYY-MM-DD
	Rate decimal.Decimal `json:"rate"`
}
