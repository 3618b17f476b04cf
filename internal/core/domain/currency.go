package domain

import "time"

// Currency is a supported reference currency. Reference data only: rows are
// installed by seeding and never mutated by user action.
type Currency struct {
	Code      string    `json:"code"`   // Primary Key, uppercase ISO-like code (e.g. "USD")
	Name      string    `json:"name"`   // e.g. "US Dollar"
	Symbol    string    `json:"symbol"` // e.g. "$"
	Flag      string    `json:"flag"`   // flag emoji shown by the SPA
	CreatedAt time.Time `json:"createdAt"`
}
