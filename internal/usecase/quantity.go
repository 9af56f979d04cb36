package usecase

import (
	"math"
	"strconv"
	"strings"
)

// vulgarFractions maps single Unicode fraction glyphs to their values.
var vulgarFractions = map[rune]float64{
	'¼': 0.25,
	'½': 0.5,
	'¾': 0.75,
	'⅓': 1.0 / 3.0,
	'⅔': 2.0 / 3.0,
	'⅛': 0.125,
	'⅜': 0.375,
	'⅝': 0.625,
	'⅞': 0.875,
}

// niceFraction is one display fraction preferred over a raw decimal.
type niceFraction struct {
	value float64
	text  string
}

// Matched within an absolute tolerance of 0.01 so that 0.333 and 0.667
// round-trip to thirds.
var niceFractions = []niceFraction{
	{0.25, "1/4"},
	{1.0 / 3.0, "1/3"},
	{0.5, "1/2"},
	{2.0 / 3.0, "2/3"},
	{0.75, "3/4"},
}

const quantityTolerance = 0.01

// ParseQuantityToken reads a quantity out of a token of ingredient text.
// Recognized, in priority order: a decimal number, a simple fraction a/b,
// a mixed number "a b/c", a Unicode vulgar-fraction glyph with an optional
// bare leading integer ("1½"), and a numeric range ("1-2", "1 to 2") whose
// first bound wins. Anything else, including negative values and zero
// denominators, yields ok=false rather than an error.
func ParseQuantityToken(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}

	// Decimal first so "1.5" never goes down the fraction path.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 {
			return 0, false
		}
		return v, true
	}

	if v, ok := parseSimpleFraction(s); ok {
		return v, true
	}
	if v, ok := parseMixedNumber(s); ok {
		return v, true
	}
	if v, ok := parseVulgarFraction(s); ok {
		return v, true
	}
	return parseRange(s)
}

func parseSimpleFraction(s string) (float64, bool) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	a, err := strconv.ParseFloat(num, 64)
	if err != nil || a < 0 {
		return 0, false
	}
	b, err := strconv.ParseFloat(den, 64)
	if err != nil || b <= 0 {
		return 0, false
	}
	return a / b, true
}

func parseMixedNumber(s string) (float64, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, false
	}
	whole, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || whole < 0 {
		return 0, false
	}
	frac, ok := parseSimpleFraction(fields[1])
	if !ok {
		return 0, false
	}
	return whole + frac, true
}

func parseVulgarFraction(s string) (float64, bool) {
	runes := []rune(s)
	frac, ok := vulgarFractions[runes[len(runes)-1]]
	if !ok {
		return 0, false
	}
	prefix := strings.TrimSpace(string(runes[:len(runes)-1]))
	if prefix == "" {
		return frac, true
	}
	whole, err := strconv.Atoi(prefix)
	if err != nil || whole < 0 {
		return 0, false
	}
	return float64(whole) + frac, true
}

func parseRange(s string) (float64, bool) {
	if first, _, found := strings.Cut(s, "-"); found {
		return ParseQuantityToken(first)
	}
	fields := strings.Fields(s)
	if len(fields) == 3 && strings.EqualFold(fields[1], "to") {
		return ParseQuantityToken(fields[0])
	}
	return 0, false
}

// FormatQuantity renders a quantity for display. Values within tolerance of
// a nice culinary fraction render as that fraction, near-integers render
// bare, and everything else falls back to two decimals with trailing zeros
// trimmed. Display-oriented and lossy: the fractional branch never composes
// a whole-number prefix, so 1.5 renders as "1.5", not "1 1/2".
func FormatQuantity(q float64) string {
	for _, nf := range niceFractions {
		if math.Abs(q-nf.value) < quantityTolerance {
			return nf.text
		}
	}
	if rounded := math.Round(q); math.Abs(q-rounded) < quantityTolerance {
		return strconv.FormatFloat(rounded, 'f', -1, 64)
	}
	out := strconv.FormatFloat(q, 'f', 2, 64)
	out = strings.TrimRight(out, "0")
	return strings.TrimRight(out, ".")
}
