package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor_Boundaries(t *testing.T) {
	cases := []struct {
		rate float64
		want Tier
	}{
		{100, TierS},
		{53.0, TierS},
		{52.99, TierA},
		{51.0, TierA},
		{50.99, TierB},
		{49.0, TierB},
		{48.99, TierC},
		{47.0, TierC},
		{46.99, TierD},
		{0, TierD},
		{-5, TierD},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.rate), "rate %v", tc.rate)
	}
}

func TestTierFor_NaN(t *testing.T) {
	assert.Equal(t, TierD, TierFor(math.NaN()))
}

func TestTierFor_TwoOfThreeWins(t *testing.T) {
	assert.Equal(t, TierS, TierFor(2.0/3.0*100))
}
