// Package advice turns free-form chat text into cardiovascular risk tips.
//
// Every function is a pure function of its arguments: callers own the
// conversation history and pass prior inputs back in on each turn.
package advice

import "math"

const greetingMessage = "Hi! I can turn a cardiovascular risk estimate into practical tips.\n" +
	"Send a percentage (e.g. \"12%\" or \"risk=12\") or a tier (\"high risk\", \"risk=low\").\n" +
	"You can add measurements too, e.g. \"risk=15%, age=58, sex=1, bp=142, chol=230, glucose=110\".\n" +
	"This is general guidance, not a diagnosis."

const clarificationMessage = "I couldn't find a risk value in that message.\n" +
	"Try one of:\n" +
	"• a percentage: \"18%\", \"risk=18\", \"risk 18\" or just \"18\"\n" +
	"• a tier: \"high risk\", \"risk moderate\" or \"risk=low\"\n" +
	"Optionally add key=value measurements: age, sex, bp, chol, glucose, hr, cp, exang, restecg, oldpeak, slope."

// Greeting returns the onboarding message.
func Greeting() string {
	return greetingMessage
}

// HandleUserMessage parses text for a percentage or tier keyword and returns a
// report. Inline inputs override prior ones. Text with no recognizable risk
// value gets a clarification prompt.
func HandleUserMessage(text string, prior Inputs) string {
	if percent, ok := ParsePercent(text); ok {
		return ReportForPercent(percent, MergeInputs(prior, ParseInputs(text)))
	}
	if word, ok := ParseTierWord(text); ok {
		return ReportForRisk(word, MergeInputs(prior, ParseInputs(text)))
	}
	return clarificationMessage
}

// ReportForPercent clamps percent into [0,100], rounds it to the one decimal
// place it is displayed with, classifies it and renders the report.
func ReportForPercent(percent float64, in Inputs) string {
	p := math.Round(ClampPercent(percent)*10) / 10
	tier := ClassifyPercent(p)
	return Format(tier, &p, Generate(tier, in))
}

// ReportForRisk classifies a tier keyword. Unrecognized keywords produce the
// unknown-risk message rather than a default tier.
func ReportForRisk(keyword string, in Inputs) string {
	tier, ok := ClassifyKeyword(keyword)
	if !ok {
		return unknownRiskMessage
	}
	return ReportForTier(tier, in)
}

// ReportForTier renders the report for an already known tier.
func ReportForTier(tier Tier, in Inputs) string {
	if !tier.Valid() {
		return unknownRiskMessage
	}
	return Format(tier, nil, Generate(tier, in))
}
