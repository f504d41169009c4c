package domain

import "context"

// Store is the storage contract shared by the durable Postgres backend and
// the in-memory fallback. One implementation is selected at process start
// and injected into the handlers; there is no per-request switching.
type Store interface {
	// CreateUser persists a new account together with its leaderboard
	// projection and returns the stored record. The durable backend
	// rejects duplicate emails with ErrDuplicateEmail; the fallback
	// appends without a uniqueness check.
	CreateUser(ctx context.Context, user *User) (*User, error)

	// GetUserByEmail returns the account for an email or ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// Authenticate returns the account matching the exact email/password
	// pair, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// AddDonation atomically increases the user's cumulative total by
	// amount, propagates the new total to the leaderboard projection,
	// and returns the new total. Unknown email yields ErrNotFound.
	AddDonation(ctx context.Context, email string, amount int64) (int64, error)

	// TopDonors lists leaderboard entries ordered by total descending,
	// at most limit entries, with Rank set to the 1-based position.
	TopDonors(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
