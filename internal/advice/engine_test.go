package advice

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tipLines(report string) []string {
	var out []string
	for _, line := range strings.Split(report, "\n") {
		if strings.HasPrefix(line, "• ") {
			out = append(out, strings.TrimPrefix(line, "• "))
		}
	}
	return out
}

func TestReportForPercentDecimal(t *testing.T) {
	report := ReportForPercent(22.5, nil)
	assert.True(t, strings.HasPrefix(report, "Risk: High (22.5%)"), report)
	assert.Equal(t, genericTips(TierHigh), tipLines(report))
}

func TestReportForPercentModerateGeneric(t *testing.T) {
	report := ReportForPercent(12.5, nil)
	assert.True(t, strings.HasPrefix(report, "Risk: Moderate (12.5%)"), report)
	assert.Equal(t, genericTips(TierModerate), tipLines(report))
}

func TestReportForPercentWhole(t *testing.T) {
	report := ReportForPercent(20, nil)
	assert.True(t, strings.HasPrefix(report, "Risk: High (20%)"), report)
	assert.NotContains(t, report, "20.0%")
}

func TestReportForPercentClamps(t *testing.T) {
	assert.True(t, strings.HasPrefix(ReportForPercent(150, nil), "Risk: High (100%)"))
	assert.True(t, strings.HasPrefix(ReportForPercent(-4, nil), "Risk: Low (0%)"))
}

func TestReportForPercentClassifiesDisplayedValue(t *testing.T) {
	assert.True(t, strings.HasPrefix(ReportForPercent(19.96, nil), "Risk: High (20%)"))
	assert.True(t, strings.HasPrefix(ReportForPercent(19.94, nil), "Risk: Moderate (19.9%)"))
	assert.True(t, strings.HasPrefix(ReportForPercent(4.96, nil), "Risk: Moderate (5%)"))
	assert.True(t, strings.HasPrefix(ReportForPercent(4.94, nil), "Risk: Low (4.9%)"))
}

func TestReportForRisk(t *testing.T) {
	report := ReportForRisk("Severe", nil)
	assert.True(t, strings.HasPrefix(report, "Risk: High"), report)
	assert.NotContains(t, report, "%)")

	assert.Equal(t, unknownRiskMessage, ReportForRisk("banana", nil))
	assert.Equal(t, unknownRiskMessage, ReportForRisk("", Inputs{FieldAge: 60}))
}

func TestReportForTier(t *testing.T) {
	report := ReportForTier(TierLow, Inputs{FieldChol: 250})
	assert.Equal(t, []string{headlineLow, tipHighChol, universalTip}, tipLines(report))
	assert.Equal(t, unknownRiskMessage, ReportForTier(Tier(0), nil))
}

func TestHandleUserMessageWithInlineInputs(t *testing.T) {
	report := HandleUserMessage("risk=23%, age=60, bp=150, chol=240", nil)

	require.True(t, strings.HasPrefix(report, "Risk: High (23%)"), report)
	tips := tipLines(report)
	assert.Equal(t, headlineHigh, tips[0])
	assert.Contains(t, tips, tipHighBP)
	assert.Contains(t, tips, tipHighChol)
	assert.NotContains(t, tips, tipBorderlineChol)
}

func TestHandleUserMessageTierKeyword(t *testing.T) {
	report := HandleUserMessage("risk=high", nil)
	assert.True(t, strings.HasPrefix(report, "Risk: High"), report)
	assert.Equal(t, genericTips(TierHigh), tipLines(report))

	report = HandleUserMessage("My doctor said medium risk", nil)
	assert.True(t, strings.HasPrefix(report, "Risk: Moderate"), report)
}

func TestHandleUserMessageMergesPriorInputs(t *testing.T) {
	prior := Inputs{FieldTrestBPS: 135, FieldAge: 40}

	report := HandleUserMessage("low risk", prior)
	assert.Contains(t, tipLines(report), tipBorderlineBP)

	report = HandleUserMessage("low risk bp=160", prior)
	tips := tipLines(report)
	assert.Contains(t, tips, tipHighBP)
	assert.NotContains(t, tips, tipBorderlineBP)
	assert.Equal(t, 135.0, prior.Get(FieldTrestBPS), "prior inputs untouched")
}

func TestHandleUserMessageClarification(t *testing.T) {
	for _, text := range []string{"hello there", "", "age=60, bp=150", "risk=severe"} {
		assert.Equal(t, clarificationMessage, HandleUserMessage(text, nil), "text %q", text)
	}
}

func TestHandleUserMessageBareNumber(t *testing.T) {
	report := HandleUserMessage("4.9", nil)
	assert.True(t, strings.HasPrefix(report, "Risk: Low (4.9%)"), report)
}

func TestHandleUserMessageTruncatesToSix(t *testing.T) {
	text := "30% age=70 sex=1 bp=150 chol=250 glucose=200 exang=1 cp=3 restecg=1 hr=80"
	tips := tipLines(HandleUserMessage(text, nil))
	require.Len(t, tips, MaxDisplayTips)
	assert.Equal(t, headlineHigh, tips[0])
	assert.NotContains(t, tips, universalTip)
}

func TestGreeting(t *testing.T) {
	g := Greeting()
	assert.Contains(t, g, "%")
	assert.Contains(t, g, "risk=")
}

func TestHandleUserMessageConcurrent(t *testing.T) {
	prior := Inputs{FieldAge: 62, FieldSex: 1, FieldChol: 215}
	messages := []string{
		"risk=23%, bp=150, chol=240",
		"moderate risk restecg=1 oldpeak=2.5",
		"3.5",
		"hello there",
	}
	want := make([]string, len(messages))
	for i, m := range messages {
		want[i] = HandleUserMessage(m, prior)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				i := n % len(messages)
				assert.Equal(t, want[i], HandleUserMessage(messages[i], prior))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, Inputs{FieldAge: 62, FieldSex: 1, FieldChol: 215}, prior)
}
