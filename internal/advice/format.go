package advice

import (
	"fmt"
	"math"
	"strings"
)

// MaxDisplayTips caps how many tips a report shows.
const MaxDisplayTips = 6

const unknownRiskMessage = "Risk: Unknown\n" +
	"I couldn't recognise that risk level. Send a percentage (e.g. 12%) " +
	"or one of: low, moderate, high."

// Format renders a report. percent may be nil when the tier came from a
// keyword rather than a number.
func Format(tier Tier, percent *float64, tips []string) string {
	if !tier.Valid() {
		return unknownRiskMessage
	}

	var b strings.Builder
	b.WriteString("Risk: ")
	b.WriteString(tier.String())
	if percent != nil {
		fmt.Fprintf(&b, " (%s%%)", FormatPercent(*percent))
	}

	if len(tips) > MaxDisplayTips {
		tips = tips[:MaxDisplayTips]
	}
	if len(tips) > 0 {
		b.WriteString("\nTips:")
	}
	for _, t := range tips {
		b.WriteString("\n• ")
		b.WriteString(t)
	}
	return b.String()
}

// FormatPercent prints whole numbers without decimals and anything else with
// exactly one decimal place.
func FormatPercent(p float64) string {
	if p == math.Trunc(p) {
		return fmt.Sprintf("%.0f", p)
	}
	return fmt.Sprintf("%.1f", p)
}
