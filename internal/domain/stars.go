package domain

// StarsPerBonus is the fixed exchange rate between stars and bonuses.
const StarsPerBonus = 3

// AwardResult reports the balances after an award and how many bonuses the
// award itself granted.
type AwardResult struct {
	Stars          int64
	Bonuses        int64
	BonusesGranted int64
}

// BonusesToGrant returns how many whole-bonus thresholds an award crosses.
// It depends only on the two balance snapshots, so a retried award against
// the same previous balance recomputes the same count.
func BonusesToGrant(previousStars, starsToAdd int64) int64 {
	previous := previousStars / StarsPerBonus
	next := (previousStars + starsToAdd) / StarsPerBonus
	if next < previous {
		return 0
	}

	return next - previous
}
