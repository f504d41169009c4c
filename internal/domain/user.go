package domain

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Referral codes carry a fixed campaign-year suffix; the leaderboard
// projection keys on the code, and the frontend renders it verbatim.
const referralYearSuffix = "2025"

const (
	seedTotalMin = 1000
	seedTotalMax = 5999
)

// User represents a registered fundraiser account.
type User struct {
	ID             string
	Name           string
	Email          string
	Password       string
	ReferralCode   string
	TotalDonations int64
	CreatedAt      time.Time
}

// NewUser builds a fresh account for registration: UUID identity, derived
// referral code, and a starting total seeded uniformly in [1000, 5999].
func NewUser(name, email, password string) *User {
	return &User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		Password:       password,
		ReferralCode:   ReferralCodeFor(name),
		TotalDonations: seedTotal(),
		CreatedAt:      time.Now().UTC(),
	}
}

// ReferralCodeFor derives the default referral code for a display name.
// Two users with the same name derive the same code; the durable store
// disambiguates at insert time.
func ReferralCodeFor(name string) string {
	return strings.ToLower(name) + referralYearSuffix
}

func seedTotal() int64 {
	return seedTotalMin + rand.Int63n(seedTotalMax-seedTotalMin+1)
}
