package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Manager owns the PostgreSQL connection pool and its retry policy. It is
// constructed once per process and passed to dependents; nothing reads
// connection state from package globals.
type Manager struct {
	databaseURL string
	policy      RetryPolicy
	logger      *slog.Logger
	pool        *pgxpool.Pool
}

// NewManager creates a connection manager. Start must be called before Pool.
func NewManager(databaseURL string, policy RetryPolicy, logger *slog.Logger) *Manager {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy
	}
	return &Manager{
		databaseURL: databaseURL,
		policy:      policy,
		logger:      logger,
	}
}

// Start establishes the connection pool, retrying with exponential backoff up
// to the policy's attempt cap. It returns the last dial error when every
// attempt fails, leaving the caller free to fall back to another store.
func (m *Manager) Start(ctx context.Context) error {
	if m.databaseURL == "" {
		return fmt.Errorf("database URL cannot be empty")
	}

	var lastErr error
	for attempt := 0; attempt < m.policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := m.policy.Backoff(attempt - 1)
			m.logger.Warn("Retrying database connection",
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", m.policy.MaxAttempts),
				slog.Duration("delay", delay),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		pool, err := newPgxPool(ctx, m.databaseURL)
		if err != nil {
			lastErr = err
			m.logger.Error("Database connection attempt failed", slog.String("error", err.Error()))
			continue
		}

		m.pool = pool
		m.logger.Info("Database connection pool established")
		return nil
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", m.policy.MaxAttempts, lastErr)
}

// Pool returns the live connection pool. Only valid after a successful Start.
func (m *Manager) Pool() *pgxpool.Pool {
	return m.pool
}

// Ping verifies database connectivity.
func (m *Manager) Ping(ctx context.Context) error {
	if m.pool == nil {
		return fmt.Errorf("connection pool not started")
	}
	return m.pool.Ping(ctx)
}

// Name identifies the storage backend on the health endpoint.
func (m *Manager) Name() string {
	return "postgres"
}

// Stop closes the connection pool.
func (m *Manager) Stop() {
	if m.pool != nil {
		m.pool.Close()
		m.pool = nil
		m.logger.Info("Database connection pool closed")
	}
}

// newPgxPool creates and pings a new PostgreSQL connection pool.
func newPgxPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
