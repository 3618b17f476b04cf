package database

import "time"

// RetryPolicy describes the bounded retry schedule the connection manager
// follows before giving up on the database.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy mirrors the deployment default: five attempts with
// exponential backoff capped at 30 seconds.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 5,
	BaseDelay:   time.Second,
	MaxDelay:    30 * time.Second,
}

// Backoff returns the delay before the given retry attempt.
// Logic: BaseDelay * 2^attempt, capped at MaxDelay.
// A negative attempt returns BaseDelay.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 0 {
		return p.BaseDelay
	}

	// 2^30 seconds already exceeds any sane cap; avoid shift overflow.
	if attempt > 30 {
		return p.MaxDelay
	}

	backoff := p.BaseDelay * time.Duration(1<<attempt)
	if backoff > p.MaxDelay {
		return p.MaxDelay
	}
	return backoff
}
