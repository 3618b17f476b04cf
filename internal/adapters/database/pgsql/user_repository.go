package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserRepository implements ports.UserRepository using pgxpool.
//
// The embedded wallet snapshots are stored as a JSONB column on the user row,
// mirroring the reference system's user document. They are written with the
// user and never reconciled against the wallets table.
type PgxUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

const userColumns = `user_id, name, email, password, is_admin, wallets, join_date, last_active`

// SaveUser inserts a new user. ErrDuplicate when the email (unique,
// case-insensitive) is already registered.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	wallets, err := json.Marshal(user.Wallets)
	if err != nil {
		return fmt.Errorf("error encoding wallet snapshots: %w", err)
	}

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(ctx, query,
		user.UserID, user.Name, user.Email, user.Password, user.IsAdmin,
		wallets, user.JoinDate, user.LastActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

// FindUserByID retrieves one user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, userID))
}

// FindUserByEmail retrieves one user by lowercase email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// UpdateUser rewrites a user's mutable fields.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	wallets, err := json.Marshal(user.Wallets)
	if err != nil {
		return fmt.Errorf("error encoding wallet snapshots: %w", err)
	}

	query := `
		UPDATE users
		SET name = $2, email = $3, wallets = $4, last_active = $5
		WHERE user_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		user.UserID, user.Name, user.Email, wallets, user.LastActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// TouchLastActive refreshes a user's activity timestamp.
func (r *PgxUserRepository) TouchLastActive(ctx context.Context, userID string, when time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET last_active = $2 WHERE user_id = $1`, userID, when)
	if err != nil {
		return fmt.Errorf("error touching last active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListUsers retrieves every user sorted by name.
func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func (r *PgxUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	var wallets []byte
	err := row.Scan(
		&user.UserID, &user.Name, &user.Email, &user.Password, &user.IsAdmin,
		&wallets, &user.JoinDate, &user.LastActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	if len(wallets) > 0 {
		if err := json.Unmarshal(wallets, &user.Wallets); err != nil {
			return nil, fmt.Errorf("error decoding wallet snapshots: %w", err)
		}
	}
	return user, nil
}
