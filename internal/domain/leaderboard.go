package domain

// LeaderboardEntry is the denormalized ranking projection for one user.
// Name and ReferralCode are copied from the account at registration; the
// total is kept in lockstep with the account by the store. Rank is not
// persisted, it is the 1-based position in the totalDonations-descending
// ordering assigned when a listing is read.
type LeaderboardEntry struct {
	Name           string
	ReferralCode   string
	TotalDonations int64
	Rank           int
}
