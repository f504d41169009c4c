package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amrutap2004/RankRaise/internal/domain"
)

const pgUniqueViolation = "23505"

// Querier is the subset of the pgxpool surface the store depends on. Tests
// substitute a fake so the SQL paths run without a database.
type Querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

// PostgresStore implements domain.Store backed by PostgreSQL.
type PostgresStore struct {
	pool Querier
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool Querier) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the two tables if they do not exist yet. Called once
// at startup, after the pool has been verified. Statements run one at a
// time; pgx's extended protocol does not accept multi-statement strings.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{`
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    referral_code TEXT NOT NULL UNIQUE,
    total_donations BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`, `
CREATE TABLE IF NOT EXISTS leaderboard (
    referral_code TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    total_donations BIGINT NOT NULL DEFAULT 0
);
`}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// CreateUser inserts the account and its leaderboard projection in a single
// transaction. A referral code already taken by another user is
// disambiguated with a numeric suffix so projection lookups never alias two
// accounts. A duplicate email maps to domain.ErrDuplicateEmail.
func (s *PostgresStore) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	code := user.ReferralCode
	for n := 2; ; n++ {
		var taken bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE referral_code = $1)`, code,
		).Scan(&taken); err != nil {
			return nil, err
		}
		if !taken {
			break
		}
		code = fmt.Sprintf("%s-%d", user.ReferralCode, n)
	}

	stored := *user
	stored.ReferralCode = code

	_, err = tx.Exec(ctx, `
INSERT INTO users (id, name, email, password, referral_code, total_donations, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`, stored.ID, stored.Name, stored.Email, stored.Password, stored.ReferralCode, stored.TotalDonations, stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "email") {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO leaderboard (referral_code, name, total_donations)
VALUES ($1, $2, $3);
`, stored.ReferralCode, stored.Name, stored.TotalDonations)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &stored, nil
}

// GetUserByEmail fetches an account by email.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.pool.QueryRow(ctx, `
SELECT id, name, email, password, referral_code, total_donations, created_at
FROM users
WHERE email = $1;
`, email)
	return scanUser(row)
}

// Authenticate fetches the account matching the exact credential pair.
// Passwords are compared verbatim; the stored value is plain text.
func (s *PostgresStore) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	row := s.pool.QueryRow(ctx, `
SELECT id, name, email, password, referral_code, total_donations, created_at
FROM users
WHERE email = $1 AND password = $2;
`, email, password)
	user, err := scanUser(row)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, err
}

// AddDonation increments the cumulative total in place and propagates the
// new value to the leaderboard projection inside one transaction. The SQL
// increment makes concurrent donations to the same user serialize at the
// row level, so no update is lost.
func (s *PostgresStore) AddDonation(ctx context.Context, email string, amount int64) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		code     string
		newTotal int64
	)
	err = tx.QueryRow(ctx, `
UPDATE users
SET total_donations = total_donations + $2
WHERE email = $1
RETURNING referral_code, total_donations;
`, email, amount).Scan(&code, &newTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}

	// A missing projection row is tolerated; the user total is still the
	// source of truth and the next registration-style insert re-syncs it.
	_, err = tx.Exec(ctx, `
UPDATE leaderboard
SET total_donations = $2
WHERE referral_code = $1;
`, code, newTotal)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return newTotal, nil
}

// TopDonors lists the projection ordered by total descending. Rank is the
// position in that ordering, not a stored value.
func (s *PostgresStore) TopDonors(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
SELECT name, referral_code, total_donations
FROM leaderboard
ORDER BY total_donations DESC
LIMIT $1;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(&entry.Name, &entry.ReferralCode, &entry.TotalDonations); err != nil {
			return nil, err
		}
		entry.Rank = len(items) + 1
		items = append(items, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.ReferralCode, &u.TotalDonations, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

var _ domain.Store = (*PostgresStore)(nil)
