package usecase

import (
	"strings"

	"github.com/pantrysync/backend/internal/domain"
)

// irregularSingulars is checked before any suffix rule. Culinary vocabulary
// has a handful of words the -ves rule would otherwise mangle ("cloves"
// must not become "clof").
var irregularSingulars = map[string]string{
	"olives":   "olive",
	"chives":   "chive",
	"cloves":   "clove",
	"children": "child",
	"feet":     "foot",
	"geese":    "goose",
	"mice":     "mouse",
	"people":   "person",
}

// Singularize reduces an English noun to an approximate singular stem:
// irregular lookup first, then ordered suffix rules. The order matters — a
// naive strip-trailing-s rule would mutate "grass", and -ies must run
// before -s so "cherries" stems to "cherry" rather than "cherrie".
// Idempotent: singularizing a singular form leaves it unchanged.
func Singularize(word string) string {
	if singular, ok := irregularSingulars[word]; ok {
		return singular
	}
	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 3 && strings.HasSuffix(word, "ves"):
		return word[:len(word)-3] + "f"
	case strings.HasSuffix(word, "es") && endsInSibilant(strings.TrimSuffix(word, "es")):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return strings.TrimSuffix(word, "s")
	default:
		return word
	}
}

// endsInSibilant reports whether a stem ends in s, sh, ch, x, z, or o —
// the stems whose plurals take -es.
func endsInSibilant(stem string) bool {
	if stem == "" {
		return false
	}
	if strings.HasSuffix(stem, "sh") || strings.HasSuffix(stem, "ch") {
		return true
	}
	switch stem[len(stem)-1] {
	case 's', 'x', 'z', 'o':
		return true
	}
	return false
}

// NormalizeName lowercases, trims, and singularizes every word of a name
// so "Apples" and "apple" compare equal.
func NormalizeName(name string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	for i, word := range words {
		words[i] = Singularize(word)
	}
	return strings.Join(words, " ")
}

// NamesMatch reports whether two ingredient names refer to the same
// shopping item.
func NamesMatch(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// UnitsMatch treats every flavor of "no unit" as equal and otherwise
// compares trimmed, case-insensitively. Synonym folding is not this
// layer's job — callers normalize through NormalizeUnit first.
func UnitsMatch(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" && b == "" {
		return true
	}
	return strings.EqualFold(a, b)
}

// CombineNotes merges an existing item's notes with an incoming mention's.
// A note already contained in the other ("chopped" inside "finely
// chopped") is not duplicated; genuinely different notes concatenate with
// "; ".
func CombineNotes(existing, incoming string) string {
	if existing == "" {
		return incoming
	}
	if incoming == "" {
		return existing
	}
	if existing == incoming {
		return existing
	}
	if strings.Contains(existing, incoming) {
		return existing
	}
	if strings.Contains(incoming, existing) {
		return incoming
	}
	return existing + "; " + incoming
}

// ItemMatcher decides whether an ingredient mention refers to an item
// already on a shopping list. It never mutates anything.
type ItemMatcher struct{}

// NewItemMatcher creates a new item matcher.
func NewItemMatcher() *ItemMatcher {
	return &ItemMatcher{}
}

// FindMatch returns the first unchecked candidate, in iteration order,
// whose normalized name and unit both equal the query's. Checked items are
// skipped no matter how well they match; first match wins over best match.
// Returns nil when nothing matches.
func (m *ItemMatcher) FindMatch(name, unit string, candidates []domain.ShoppingItem) *domain.ShoppingItem {
	for i := range candidates {
		candidate := &candidates[i]
		if candidate.Checked {
			continue
		}
		if NamesMatch(name, candidate.Name) && UnitsMatch(unit, candidate.Unit) {
			return candidate
		}
	}
	return nil
}
