package usecase

import "strings"

// unitSynonyms maps every accepted spelling to its canonical unit code.
// Size words act as pseudo-units so "2 large eggs" parses cleanly. Every
// canonical code maps to itself, which keeps NormalizeUnit idempotent.
var unitSynonyms = map[string]string{
	// Volume
	"cup": "cups", "cups": "cups", "c": "cups",
	"tablespoon": "tbsp", "tablespoons": "tbsp", "tbsp": "tbsp", "tbs": "tbsp",
	"teaspoon": "tsp", "teaspoons": "tsp", "tsp": "tsp",
	"milliliter": "ml", "milliliters": "ml", "millilitre": "ml", "millilitres": "ml", "ml": "ml",
	"liter": "l", "liters": "l", "litre": "l", "litres": "l", "l": "l",
	"pint": "pints", "pints": "pints", "pt": "pints",
	"quart": "quarts", "quarts": "quarts", "qt": "quarts",
	"gallon": "gallons", "gallons": "gallons", "gal": "gallons",

	// Weight
	"ounce": "oz", "ounces": "oz", "oz": "oz",
	"pound": "lbs", "pounds": "lbs", "lb": "lbs", "lbs": "lbs",
	"gram": "g", "grams": "g", "g": "g",
	"kilogram": "kg", "kilograms": "kg", "kg": "kg",

	// Count
	"clove": "cloves", "cloves": "cloves",
	"can": "cans", "cans": "cans",
	"slice": "slices", "slices": "slices",
	"piece": "pieces", "pieces": "pieces",
	"stick": "sticks", "sticks": "sticks",
	"package": "packages", "packages": "packages", "pkg": "packages",
	"bunch": "bunches", "bunches": "bunches",
	"head": "heads", "heads": "heads",
	"pinch": "pinch", "pinches": "pinch",
	"dash": "dash", "dashes": "dash",

	// Size descriptors
	"small": "small", "medium": "medium", "large": "large",
}

// NormalizeUnit maps a unit spelling to its canonical code,
// case-insensitively. Unrecognized tokens return ok=false rather than an
// error.
func NormalizeUnit(token string) (string, bool) {
	unit, ok := unitSynonyms[strings.ToLower(strings.TrimSpace(token))]
	return unit, ok
}
