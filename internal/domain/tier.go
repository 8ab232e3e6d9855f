package domain

type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// TierFor buckets a win rate given in percent. NaN falls through to D.
func TierFor(winRate float64) Tier {
	switch {
	case winRate >= 53:
		return TierS
	case winRate >= 51:
		return TierA
	case winRate >= 49:
		return TierB
	case winRate >= 47:
		return TierC
	default:
		return TierD
	}
}
