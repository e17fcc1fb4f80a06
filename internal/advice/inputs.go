package advice

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Canonical clinical input fields.
const (
	FieldAge      = "age"
	FieldSex      = "sex"
	FieldTrestBPS = "trestbps"
	FieldChol     = "chol"
	FieldFBS      = "fbs"
	FieldExang    = "exang"
	FieldCP       = "cp"
	FieldRestECG  = "restecg"
	FieldOldpeak  = "oldpeak"
	FieldSlope    = "slope"
	FieldThalach  = "thalach"
)

const glucoseKey = "glucose"

// fastingGlucoseCutoff is the mg/dL value above which glucose sets fbs=1.
const fastingGlucoseCutoff = 120

// Inputs maps canonical field names to values. Missing keys read as zero.
type Inputs map[string]float64

// Get returns the stored value for field, or 0 when absent.
func (in Inputs) Get(field string) float64 {
	return in[field]
}

// Has reports whether field was supplied.
func (in Inputs) Has(field string) bool {
	_, ok := in[field]
	return ok
}

var canonicalFields = map[string]bool{
	FieldAge:      true,
	FieldSex:      true,
	FieldTrestBPS: true,
	FieldChol:     true,
	FieldFBS:      true,
	FieldExang:    true,
	FieldCP:       true,
	FieldRestECG:  true,
	FieldOldpeak:  true,
	FieldSlope:    true,
	FieldThalach:  true,
}

var fieldAliases = map[string]string{
	"gender":      FieldSex,
	"bp":          FieldTrestBPS,
	"sbp":         FieldTrestBPS,
	"restingbp":   FieldTrestBPS,
	"cholesterol": FieldChol,
	"tc":          FieldChol,
	"hr":          FieldThalach,
	"maxhr":       FieldThalach,
	"heart_rate":  FieldThalach,
	"heartrate":   FieldThalach,
}

var sexWords = map[string]float64{
	"m":      1,
	"male":   1,
	"f":      0,
	"female": 0,
}

// CanonicalField resolves an alias (case-insensitive) to its canonical name.
// The second result is false for keys outside the canonical field set.
func CanonicalField(key string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := fieldAliases[k]; ok {
		k = alias
	}
	return k, canonicalFields[k]
}

// ParseInputs extracts key=value clinical inputs from free text. Tokens are
// separated by commas or whitespace; values that cannot be parsed are dropped.
func ParseInputs(text string) Inputs {
	out := Inputs{}
	for _, tok := range inputTokens(text) {
		key, raw, ok := strings.Cut(tok, "=")
		if !ok {
			continue
		}

		if field, _ := CanonicalField(key); field == FieldSex {
			if v, ok := sexWords[strings.ToLower(strings.TrimSpace(raw))]; ok {
				out[field] = v
				continue
			}
		}

		if v, ok := parseNumber(raw); ok {
			out.set(key, v)
		}
	}
	return out
}

// NormalizeInputs applies the same alias, glucose and rounding rules as
// ParseInputs to an already structured mapping, such as a decoded form.
// Canonical keys win over aliases that resolve to the same field.
func NormalizeInputs(raw map[string]float64) Inputs {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ci, cj := canonicalFields[strings.ToLower(keys[i])], canonicalFields[strings.ToLower(keys[j])]
		if ci != cj {
			return cj
		}
		return keys[i] < keys[j]
	})

	out := make(Inputs, len(raw))
	for _, k := range keys {
		v := raw[k]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out.set(k, v)
	}
	return out
}

func (in Inputs) set(key string, v float64) {
	if strings.EqualFold(strings.TrimSpace(key), glucoseKey) {
		in[FieldFBS] = glucoseFlag(v)
		return
	}

	field, ok := CanonicalField(key)
	if !ok {
		return
	}
	if field == FieldOldpeak {
		in[field] = v
		return
	}
	in[field] = math.Round(v)
}

// MergeInputs returns prior overlaid with inline. Neither argument is modified.
func MergeInputs(prior, inline Inputs) Inputs {
	out := make(Inputs, len(prior)+len(inline))
	for k, v := range prior {
		out[k] = v
	}
	for k, v := range inline {
		out[k] = v
	}
	return out
}

// inputTokens splits text into key=value tokens, rejoining "key = value"
// written with spaces. A key left without a value stays on its own.
func inputTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var out []string
	for i := 0; i < len(fields); i++ {
		tok := fields[i]
		if !strings.Contains(tok, "=") && i+1 < len(fields) && strings.HasPrefix(fields[i+1], "=") {
			i++
			tok += fields[i]
		}
		if strings.HasSuffix(tok, "=") && strings.Count(tok, "=") == 1 && isBareValue(fields, i+1) {
			i++
			tok += fields[i]
		}
		if strings.Contains(tok, "=") {
			out = append(out, tok)
		}
	}
	return out
}

// isBareValue reports whether fields[i] is a lone value rather than a key
// that is itself followed by "=".
func isBareValue(fields []string, i int) bool {
	if i >= len(fields) || strings.Contains(fields[i], "=") {
		return false
	}
	return i+1 >= len(fields) || !strings.HasPrefix(fields[i+1], "=")
}

func parseNumber(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return 0, false
	}

	if !strings.Contains(s, ".") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func glucoseFlag(mgdl float64) float64 {
	if mgdl > fastingGlucoseCutoff {
		return 1
	}
	return 0
}
