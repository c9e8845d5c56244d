package loyalty

// Loyalty tiers by lifetime points.
const (
	TierBronze = "BRONZE"
	TierSilver = "SILVER"
	TierGold   = "GOLD"
)

const (
	silverThreshold = 2500
	goldThreshold   = 7500
)

// PointsForOrder awards one point per whole currency unit spent.
func PointsForOrder(totalCents int64) int64 {
	if totalCents <= 0 {
		return 0
	}
	return totalCents / 100
}

// TierFor maps lifetime points onto a tier.
func TierFor(points int64) string {
	switch {
	case points >= goldThreshold:
		return TierGold
	case points >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}
