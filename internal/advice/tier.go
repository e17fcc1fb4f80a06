package advice

import (
	"math"
	"strings"
)

// Tier is an ordinal cardiovascular risk classification.
type Tier int

const (
	TierLow Tier = iota + 1
	TierModerate
	TierHigh
)

const (
	highThreshold     = 20.0
	moderateThreshold = 5.0
)

// String returns the display label. Unknown values render as "Unknown".
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "Low"
	case TierModerate:
		return "Moderate"
	case TierHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the declared tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierLow, TierModerate, TierHigh:
		return true
	default:
		return false
	}
}

// ClassifyPercent maps a risk percentage to a tier. Lower bounds are inclusive.
func ClassifyPercent(percent float64) Tier {
	switch {
	case percent >= highThreshold:
		return TierHigh
	case percent >= moderateThreshold:
		return TierModerate
	default:
		return TierLow
	}
}

// ClampPercent forces p into [0,100]. NaN becomes 0.
func ClampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// ClassifyKeyword maps free text such as "high", "Severe" or "med" to a tier.
// High is tested first, then Moderate, then Low; each matches on its first
// letter or its keyword anywhere in the text.
func ClassifyKeyword(text string) (Tier, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, false
	}

	switch {
	case strings.HasPrefix(s, "h") || strings.Contains(s, "severe"):
		return TierHigh, true
	case strings.HasPrefix(s, "m") || strings.Contains(s, "medium"):
		return TierModerate, true
	case strings.HasPrefix(s, "l") || strings.Contains(s, "mild"):
		return TierLow, true
	}
	return 0, false
}
