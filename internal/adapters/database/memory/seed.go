package memory

import (
	"time"

	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// seed loads the reference currencies and the directional rate matrix. The
// same data set is applied to Postgres by the seed migration; keep the two
// in sync when editing.
func (s *Store) seed() {
	now := time.Now().UTC()

	currencies := []domain.Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$", Flag: "🇺🇸"},
		{Code: "EUR", Name: "Euro", Symbol: "€", Flag: "🇪🇺"},
		{Code: "GBP", Name: "British Pound", Symbol: "£", Flag: "🇬🇧"},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Flag: "🇯🇵"},
		{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Flag: "🇨🇦"},
		{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Flag: "🇦🇺"},
		{Code: "CHF", Name: "Swiss Franc", Symbol: "Fr", Flag: "🇨🇭"},
		{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Flag: "🇮🇳"},
	}
	for _, c := range currencies {
		c.CreatedAt = now
		s.currencies[c.Code] = c
	}

	// Directional pairs only; the reverse of a pair is an independent record
	// and is intentionally not the exact inverse.
	pairs := []struct {
		from, to string
		rate     string
	}{
		{"USD", "EUR", "0.90"},
		{"EUR", "USD", "1.09"},
		{"USD", "GBP", "0.78"},
		{"GBP", "USD", "1.28"},
		{"USD", "JPY", "149.50"},
		{"JPY", "USD", "0.0067"},
		{"USD", "CAD", "1.36"},
		{"CAD", "USD", "0.74"},
		{"USD", "AUD", "1.52"},
		{"AUD", "USD", "0.66"},
		{"USD", "CHF", "0.88"},
		{"CHF", "USD", "1.14"},
		{"USD", "INR", "83.10"},
		{"INR", "USD", "0.012"},
		{"EUR", "GBP", "0.86"},
		{"GBP", "EUR", "1.16"},
		{"EUR", "JPY", "162.80"},
		{"JPY", "EUR", "0.0061"},
		{"GBP", "JPY", "190.40"},
		{"JPY", "GBP", "0.0053"},
	}
	for _, p := range pairs {
		rate := domain.ExchangeRate{
			RateID:       uuid.NewString(),
			FromCurrency: p.from,
			ToCurrency:   p.to,
			Rate:         decimal.RequireFromString(p.rate),
			LastUpdated:  now,
		}
		s.rates[rateKey(p.from, p.to)] = rate
	}
}
