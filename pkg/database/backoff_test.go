package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDoublesUntilCap(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 10, BaseDelay: time.Second, MaxDelay: 30 * time.Second}

	assert.Equal(t, 1*time.Second, p.Backoff(0))
	assert.Equal(t, 2*time.Second, p.Backoff(1))
	assert.Equal(t, 4*time.Second, p.Backoff(2))
	assert.Equal(t, 16*time.Second, p.Backoff(4))
	assert.Equal(t, 30*time.Second, p.Backoff(5), "32s should be capped at MaxDelay")
	assert.Equal(t, 30*time.Second, p.Backoff(20))
}

func TestBackoffEdgeAttempts(t *testing.T) {
	p := DefaultRetryPolicy

	assert.Equal(t, p.BaseDelay, p.Backoff(-1))
	assert.Equal(t, p.MaxDelay, p.Backoff(31), "large attempts must not overflow the shift")
}
