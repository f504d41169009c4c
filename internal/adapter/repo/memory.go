package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amrutap2004/RankRaise/internal/domain"
)

// MemoryStore implements domain.Store as an ephemeral fallback used when the
// database is unreachable at startup. It is pre-seeded with demo data and
// reseeded on every restart.
//
// Known divergence from the Postgres backend, kept on purpose: CreateUser
// performs no email-uniqueness check, so registering the same email twice
// silently produces two accounts.
type MemoryStore struct {
	mu    sync.Mutex
	users []domain.User
	board []domain.LeaderboardEntry
}

// NewMemoryStore builds the fallback store with one demo account and ten
// demo leaderboard entries. The demo account itself has no projection row;
// accounts registered through CreateUser get one.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: []domain.User{
			{
				ID:             uuid.NewString(),
				Name:           "Demo User",
				Email:          "demo@intern.com",
				Password:       "password123",
				ReferralCode:   "demo2025",
				TotalDonations: 3450,
				CreatedAt:      time.Now().UTC(),
			},
		},
		board: []domain.LeaderboardEntry{
			{Name: "Sarah Johnson", ReferralCode: "sarah2025", TotalDonations: 15420},
			{Name: "Mike Chen", ReferralCode: "mike2025", TotalDonations: 12850},
			{Name: "Emily Davis", ReferralCode: "emily2025", TotalDonations: 11200},
			{Name: "Alex Rodriguez", ReferralCode: "alex2025", TotalDonations: 9850},
			{Name: "Jessica Kim", ReferralCode: "jessica2025", TotalDonations: 8750},
			{Name: "David Wilson", ReferralCode: "david2025", TotalDonations: 7650},
			{Name: "Lisa Thompson", ReferralCode: "lisa2025", TotalDonations: 6540},
			{Name: "Ryan Brown", ReferralCode: "ryan2025", TotalDonations: 5430},
			{Name: "Amanda Lee", ReferralCode: "amanda2025", TotalDonations: 4320},
			{Name: "Chris Martinez", ReferralCode: "chris2025", TotalDonations: 3210},
		},
	}
}

// CreateUser appends the account and its projection entry.
func (s *MemoryStore) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, *user)
	s.board = append(s.board, domain.LeaderboardEntry{
		Name:           user.Name,
		ReferralCode:   user.ReferralCode,
		TotalDonations: user.TotalDonations,
	})

	stored := *user
	return &stored, nil
}

// GetUserByEmail returns the earliest-registered account for the email.
func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Authenticate matches the exact email/password pair.
func (s *MemoryStore) Authenticate(_ context.Context, email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Password == password {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// AddDonation increments the user's total and the matching projection entry
// under the store lock, so concurrent donations cannot lose an update.
func (s *MemoryStore) AddDonation(_ context.Context, email string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email != email {
			continue
		}
		s.users[i].TotalDonations += amount
		newTotal := s.users[i].TotalDonations

		for j := range s.board {
			if s.board[j].ReferralCode == s.users[i].ReferralCode {
				s.board[j].TotalDonations = newTotal
				break
			}
		}
		return newTotal, nil
	}
	return 0, domain.ErrNotFound
}

// TopDonors returns the projection sorted by total descending.
func (s *MemoryStore) TopDonors(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.LeaderboardEntry, len(s.board))
	copy(items, s.board)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TotalDonations > items[j].TotalDonations
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	for i := range items {
		items[i].Rank = i + 1
	}
	return items, nil
}

var _ domain.Store = (*MemoryStore)(nil)
