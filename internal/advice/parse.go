package advice

import (
	"regexp"
	"strconv"
	"strings"
)

const numberExpr = `(\d*\.?\d+)`

// Percentage patterns, tried in order.
var (
	percentSignPattern = regexp.MustCompile(`(?i)` + numberExpr + `\s*%`)
	riskEqualsPattern  = regexp.MustCompile(`(?i)\brisk\s*=\s*` + numberExpr)
	riskSpacePattern   = regexp.MustCompile(`(?i)\brisk\s+` + numberExpr)
	bareNumberPattern  = regexp.MustCompile(`^\s*` + numberExpr + `\s*$`)
)

const tierWordExpr = `(high|moderate|medium|low)`

// Tier keyword patterns, tried in order.
var (
	riskEqualsTierPattern = regexp.MustCompile(`(?i)\brisk\s*=\s*` + tierWordExpr + `\b`)
	tierThenRiskPattern   = regexp.MustCompile(`(?i)\b` + tierWordExpr + `\s+risk\b`)
	riskThenTierPattern   = regexp.MustCompile(`(?i)\brisk\s+` + tierWordExpr + `\b`)
)

var percentPatterns = []*regexp.Regexp{
	percentSignPattern,
	riskEqualsPattern,
	riskSpacePattern,
	bareNumberPattern,
}

var tierPatterns = []*regexp.Regexp{
	riskEqualsTierPattern,
	tierThenRiskPattern,
	riskThenTierPattern,
}

// ParsePercent finds a risk percentage in text. Matches whose number cannot be
// parsed fall through to the next pattern.
func ParsePercent(text string) (float64, bool) {
	for _, re := range percentPatterns {
		if v, ok := matchNumber(re, text); ok {
			return v, true
		}
	}
	return 0, false
}

// ParseTierWord finds a tier keyword in text and returns it lowercased, with
// "medium" normalized to "moderate".
func ParseTierWord(text string) (string, bool) {
	for _, re := range tierPatterns {
		m := re.FindStringSubmatch(text)
		if len(m) != 2 {
			continue
		}
		word := strings.ToLower(m[1])
		if word == "medium" {
			word = "moderate"
		}
		return word, true
	}
	return "", false
}

func matchNumber(re *regexp.Regexp, text string) (float64, bool) {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if len(m) != 2 {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}
