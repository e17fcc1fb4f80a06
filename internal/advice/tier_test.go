package advice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPercentBoundaries(t *testing.T) {
	cases := []struct {
		percent float64
		want    Tier
	}{
		{0, TierLow},
		{4.99, TierLow},
		{5.0, TierModerate},
		{12, TierModerate},
		{19.99, TierModerate},
		{20.0, TierHigh},
		{23, TierHigh},
		{100, TierHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyPercent(tc.percent), "percent %v", tc.percent)
	}
}

func TestClassifyPercentSweep(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 10
		got := ClassifyPercent(p)
		switch {
		case p >= 20:
			assert.Equal(t, TierHigh, got, "percent %v", p)
		case p >= 5:
			assert.Equal(t, TierModerate, got, "percent %v", p)
		default:
			assert.Equal(t, TierLow, got, "percent %v", p)
		}
	}
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-3))
	assert.Equal(t, 100.0, ClampPercent(250))
	assert.Equal(t, 42.5, ClampPercent(42.5))
	assert.Equal(t, 0.0, ClampPercent(math.NaN()))
	assert.Equal(t, 100.0, ClampPercent(math.Inf(1)))
}

func TestClassifyKeyword(t *testing.T) {
	cases := map[string]Tier{
		"high":          TierHigh,
		"HIGH":          TierHigh,
		"very severe":   TierHigh,
		"high-mild":     TierHigh,
		"highly medium": TierHigh,
		"moderate":      TierModerate,
		"med":           TierModerate,
		"Medium":        TierModerate,
		"mild":          TierModerate,
		"not so medium": TierModerate,
		"low":           TierLow,
		"very mild":     TierLow,
		"  low  ":       TierLow,
	}
	for in, want := range cases {
		got, ok := ClassifyKeyword(in)
		assert.True(t, ok, "keyword %q", in)
		assert.Equal(t, want, got, "keyword %q", in)
	}
}

func TestClassifyKeywordUnknown(t *testing.T) {
	for _, in := range []string{"", "   ", "unknown", "42", "critical"} {
		_, ok := ClassifyKeyword(in)
		assert.False(t, ok, "keyword %q", in)
	}
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "Low", TierLow.String())
	assert.Equal(t, "Moderate", TierModerate.String())
	assert.Equal(t, "High", TierHigh.String())
	assert.Equal(t, "Unknown", Tier(0).String())
	assert.False(t, Tier(9).Valid())
}
