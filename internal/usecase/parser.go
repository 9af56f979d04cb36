package usecase

import (
	"regexp"
	"strings"

	"github.com/pantrysync/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	parentheticalRegex = regexp.MustCompile(`\(([^)]*)\)`)

	// A trailing comma-led culinary descriptor, optionally preceded by an
	// intensity adverb ("finely chopped", "to taste").
	descriptorRegex = regexp.MustCompile(`(?i),\s*((?:finely|coarsely|roughly|thinly|freshly|lightly|very)\s+)?` +
		`(chopped|diced|minced|sliced|melted|softened|grated|shredded|beaten|peeled|crushed|mashed|cubed|` +
		`julienned|trimmed|halved|quartered|drained|rinsed|sifted|toasted|cooled|warmed|divided|` +
		`at room temperature|to taste|for garnish|for serving|plus more)\s*$`)
)

// IngredientParser turns one free-text ingredient line into a structured
// ParsedIngredient. Parsing never fails; anything it cannot interpret stays
// in the name.
type IngredientParser struct{}

// NewIngredientParser creates a new ingredient parser.
func NewIngredientParser() *IngredientParser {
	return &IngredientParser{}
}

// Parse reads "1 1/2 cups of flour (sifted), finely chopped" style lines.
// Notes come out first (parentheticals, then trailing descriptors), the
// remainder is tokenized, and the cursor walks quantity → unit → "of" →
// name. An empty name falls back to the original trimmed line, so a parsed
// line never comes back nameless.
func (p *IngredientParser) Parse(line string) domain.ParsedIngredient {
	original := strings.TrimSpace(line)

	rest, notes := extractNotes(original)
	tokens := strings.Fields(rest)
	idx := 0

	var quantity *float64
	if len(tokens) > 0 {
		if q, ok := ParseQuantityToken(tokens[0]); ok {
			value := q
			idx = 1
			// "1 1/2" arrives as two tokens; a combined parse yielding a
			// different value means the second token belongs to the quantity.
			if len(tokens) > 1 {
				if combined, ok := ParseQuantityToken(tokens[0] + " " + tokens[1]); ok && combined != q {
					value = combined
					idx = 2
				}
			}
			quantity = &value
		}
	}

	var unit string
	if idx < len(tokens) {
		if u, ok := NormalizeUnit(strings.TrimRight(tokens[idx], ".,;:")); ok {
			unit = u
			idx++
		}
	}

	// "2 cups of flour" — the "of" carries no information.
	if idx < len(tokens) && strings.EqualFold(tokens[idx], "of") {
		idx++
	}

	name := strings.Join(tokens[idx:], " ")
	if name == "" {
		name = original
	}

	return domain.ParsedIngredient{
		Quantity: quantity,
		Unit:     unit,
		Name:     name,
		Notes:    strings.Join(notes, ", "),
	}
}

// extractNotes strips every parenthetical group, then trailing comma-led
// descriptors. Parentheticals must go first so a descriptor inside
// parentheses is not matched twice.
func extractNotes(line string) (string, []string) {
	var notes []string

	rest := parentheticalRegex.ReplaceAllStringFunc(line, func(group string) string {
		inner := strings.TrimSpace(group[1 : len(group)-1])
		if inner != "" {
			notes = append(notes, inner)
		}
		return " "
	})
	rest = strings.TrimSpace(rest)

	for {
		loc := descriptorRegex.FindStringIndex(rest)
		if loc == nil {
			break
		}
		note := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest[loc[0]:loc[1]]), ","))
		notes = append(notes, note)
		rest = strings.TrimSpace(rest[:loc[0]])
	}

	return rest, notes
}
