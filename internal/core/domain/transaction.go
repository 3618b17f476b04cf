package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a conversion record.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// IsValid reports whether s is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionFailed:
		return true
	}
	return false
}

// Transaction is one recorded conversion attempt. Immutable after creation
// except for Status, which an administrative call may update.
type Transaction struct {
	TransactionID string            `json:"id"`
	UserID        string            `json:"userId"`
	FromCurrency  string            `json:"fromCurrency"`
	ToCurrency    string            `json:"toCurrency"`
	FromAmount    decimal.Decimal   `json:"fromAmount"`
	ToAmount      decimal.Decimal   `json:"toAmount"`
	Rate          decimal.Decimal   `json:"rate"`
	Status        TransactionStatus `json:"status"`
	Date          time.Time         `json:"date"`
}
