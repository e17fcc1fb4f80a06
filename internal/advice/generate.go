package advice

// Tip texts.
const (
	headlineHigh     = "Your estimated risk is high: arrange a prompt review with a clinician, and seek urgent care for chest pain, breathlessness or fainting."
	headlineModerate = "Book a review with your clinician to go over your risk factors and whether preventive treatment is right for you."
	headlineLow      = "Your risk is low: keep up your current habits and recheck your risk every few years."

	tipHighBP           = "Your resting blood pressure is 140 or above: ask about treatment and check it at home regularly."
	tipBorderlineBP     = "Your resting blood pressure is borderline (130-139): cut back on salt, stay active and recheck it in a few weeks."
	tipHighChol         = "Your cholesterol is 240 or above: discuss a lipid panel and cholesterol-lowering options with your clinician."
	tipBorderlineChol   = "Your cholesterol is borderline high (200-239): favour fibre, whole grains and unsaturated fats."
	tipGlucose          = "Your fasting glucose is raised: ask about an HbA1c test and limit sugary foods and drinks."
	tipExertionalAngina = "Chest pain on exertion needs assessment: stop the activity when it happens and tell your clinician soon."
	tipChestPainLog     = "Keep a log of any chest pain: when it starts, how long it lasts and what eases it."
	tipECG              = "Your ECG findings may point to reduced blood flow to the heart: ask whether a stress test or cardiology review is needed."
	tipLowCapacity      = "Your peak heart rate is low for your age: ask whether an exercise test is appropriate before increasing activity."
	tipAgeSex           = "Age and sex put you in a higher-risk group: keep up regular check-ups for blood pressure, cholesterol and glucose."
	universalTip        = "Aim for 150 minutes of moderate activity a week, eat plenty of vegetables, don't smoke and keep alcohol low."
)

// Thresholds for input-aware tips.
const (
	highBPMin          = 140
	borderlineBPMin    = 130
	highCholMin        = 240
	borderlineCholMin  = 200
	ischemicOldpeakMin = 2.0
	downslopingSlope   = 2
	maxHRBase          = 220
	maxHRFloor         = 120
	capacityRatio      = 0.7
	maleAgeRiskMin     = 55
	femaleAgeRiskMin   = 65
)

// Generate returns the ordered, de-duplicated tips for tier. Without inputs it
// returns the fixed generic list for the tier.
func Generate(tier Tier, in Inputs) []string {
	if len(in) == 0 {
		return genericTips(tier)
	}

	var tips []string
	if h := headline(tier); h != "" {
		tips = append(tips, h)
	}

	bp := in.Get(FieldTrestBPS)
	if bp >= highBPMin {
		tips = append(tips, tipHighBP)
	} else if bp >= borderlineBPMin {
		tips = append(tips, tipBorderlineBP)
	}

	chol := in.Get(FieldChol)
	if chol >= highCholMin {
		tips = append(tips, tipHighChol)
	} else if chol >= borderlineCholMin {
		tips = append(tips, tipBorderlineChol)
	}

	if in.Get(FieldFBS) == 1 {
		tips = append(tips, tipGlucose)
	}
	if in.Get(FieldExang) == 1 {
		tips = append(tips, tipExertionalAngina)
	}
	if in.Get(FieldCP) > 0 {
		tips = append(tips, tipChestPainLog)
	}

	if in.Get(FieldRestECG) >= 1 {
		tips = append(tips, tipECG)
	}
	if in.Get(FieldOldpeak) >= ischemicOldpeakMin {
		tips = append(tips, tipECG)
	}
	if in.Get(FieldSlope) == downslopingSlope {
		tips = append(tips, tipECG)
	}

	age := in.Get(FieldAge)
	thalach := in.Get(FieldThalach)
	if thalach > 0 && thalach < capacityRatio*predictedMaxHR(age) {
		tips = append(tips, tipLowCapacity)
	}

	sex := in.Get(FieldSex)
	if (sex == 1 && age >= maleAgeRiskMin) || (sex == 0 && age >= femaleAgeRiskMin) {
		tips = append(tips, tipAgeSex)
	}

	tips = append(tips, universalTip)
	return dedupe(tips)
}

func predictedMaxHR(age float64) float64 {
	return max(maxHRFloor, maxHRBase-age)
}

func headline(tier Tier) string {
	switch tier {
	case TierHigh:
		return headlineHigh
	case TierModerate:
		return headlineModerate
	case TierLow:
		return headlineLow
	default:
		return ""
	}
}

func genericTips(tier Tier) []string {
	switch tier {
	case TierHigh:
		return []string{
			"Arrange a clinician review soon to discuss blood pressure, cholesterol and whether medication is needed.",
			"Seek urgent care for chest pain, severe breathlessness, fainting or sudden weakness.",
			"If you smoke, get support to stop now; it is the single biggest change you can make.",
			"Build up to daily walking and cut back on salt, processed meat and sugary drinks.",
		}
	case TierModerate:
		return []string{
			"Book a check-up to review your blood pressure, cholesterol and blood sugar.",
			"Aim for 150 minutes of moderate activity each week.",
			"Eat more vegetables, fruit and whole grains, and less salt and saturated fat.",
			"If you smoke, make a plan to quit.",
		}
	case TierLow:
		return []string{
			"Keep up regular physical activity and a balanced diet.",
			"Check your blood pressure and cholesterol every few years.",
			"Avoid tobacco and keep alcohol within recommended limits.",
		}
	default:
		return nil
	}
}

func dedupe(tips []string) []string {
	seen := make(map[string]bool, len(tips))
	out := make([]string, 0, len(tips))
	for _, t := range tips {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
