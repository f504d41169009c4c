package domain

// RewardTier is a badge unlocked once a cumulative total crosses its
// threshold.
type RewardTier struct {
	Name      string
	Threshold int64
}

// GoalTarget is the campaign goal the progress percentage is measured
// against. It equals the Diamond threshold.
const GoalTarget int64 = 20000

// Tiers lists the badge tiers in ascending threshold order.
var Tiers = []RewardTier{
	{Name: "Bronze Badge", Threshold: 0},
	{Name: "Silver Badge", Threshold: 5000},
	{Name: "Gold Badge", Threshold: 10000},
	{Name: "Platinum Badge", Threshold: 15000},
	{Name: "Diamond Badge", Threshold: 20000},
}

// RewardsFor derives the unlocked badge list for a cumulative total. The
// list always starts with the starter pair (Bronze Badge, then First
// Donation once any amount has been attributed) followed by the higher
// tiers in threshold order. The derivation is pure: same total, same list.
func RewardsFor(total int64) []string {
	rewards := []string{Tiers[0].Name}
	if total > 0 {
		rewards = append(rewards, "First Donation")
	}
	for _, tier := range Tiers[1:] {
		if total >= tier.Threshold {
			rewards = append(rewards, tier.Name)
		}
	}
	return rewards
}

// GoalProgress returns the percentage of the campaign goal reached,
// capped at 100.
func GoalProgress(total int64) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(total) / float64(GoalTarget) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
