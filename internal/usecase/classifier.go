package usecase

import (
	"strings"
	"unicode"

	"github.com/pantrysync/backend/internal/domain"
)

// allergenKeywords drives allergen tagging. Matching is whole-word and
// case-insensitive, so "coconut" never trips the nuts table and "nutmeg"
// never matches "nut". One line can feed several tags: "soy sauce" is both
// soy and gluten, since traditional soy sauce contains wheat. Fish sauce
// and worcestershire sit in the fish table because of their anchovy
// content; that is a domain judgment baked into the table, not a parsing
// rule.
var allergenKeywords = map[domain.AllergenTag][]string{
	domain.AllergenNuts: {
		"nut", "nuts", "almond", "almonds", "cashew", "cashews", "walnut", "walnuts",
		"pecan", "pecans", "pistachio", "pistachios", "hazelnut", "hazelnuts",
		"macadamia", "peanut", "peanuts", "praline", "nutella",
	},
	domain.AllergenEggs: {
		"egg", "eggs", "mayonnaise", "mayo", "meringue", "aioli",
	},
	domain.AllergenDairy: {
		"milk", "butter", "buttermilk", "cheese", "cream", "yogurt", "yoghurt",
		"ghee", "custard", "mozzarella", "parmesan", "cheddar", "ricotta", "feta",
		"mascarpone", "whey", "casein",
	},
	domain.AllergenGluten: {
		"flour", "wheat", "bread", "breadcrumbs", "panko", "pasta", "spaghetti",
		"noodles", "barley", "rye", "couscous", "semolina", "crackers",
		"tortilla", "tortillas", "soy sauce",
	},
	domain.AllergenShellfish: {
		"shrimp", "shrimps", "prawn", "prawns", "crab", "lobster", "scallop",
		"scallops", "clam", "clams", "mussel", "mussels", "oyster", "oysters",
		"crawfish", "crayfish",
	},
	domain.AllergenSoy: {
		"soy", "soybean", "soybeans", "soy sauce", "tofu", "edamame", "tempeh",
		"miso", "tamari",
	},
	domain.AllergenFish: {
		"fish", "salmon", "tuna", "cod", "trout", "anchovy", "anchovies",
		"sardine", "sardines", "haddock", "halibut", "tilapia", "mackerel",
		"fish sauce", "worcestershire",
	},
}

// allergenTagOrder fixes the emission order of allergen tags.
var allergenTagOrder = []domain.AllergenTag{
	domain.AllergenNuts,
	domain.AllergenEggs,
	domain.AllergenDairy,
	domain.AllergenGluten,
	domain.AllergenShellfish,
	domain.AllergenSoy,
	domain.AllergenFish,
}

var meatKeywords = []string{
	"meat", "beef", "steak", "pork", "bacon", "ham", "sausage", "chorizo",
	"prosciutto", "pepperoni", "salami", "chicken", "turkey", "duck", "lamb",
	"veal", "venison", "mince", "meatball", "meatballs", "brisket", "ribs",
	"pastrami", "hot dog",
}

// Animal derivatives beyond eggs and dairy that rule out a vegan tag.
var animalDerivativeKeywords = []string{
	"honey", "gelatin", "gelatine", "carmine", "lard", "tallow", "rennet",
}

// Classifier derives allergen and dietary tags from ingredient lines using
// fixed keyword tables. Classification cannot fail: an empty input yields
// empty tag sets.
type Classifier struct{}

// NewClassifier creates a new classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// ClassifyAllergens returns the allergen tags triggered by any of the
// lines, in fixed tag order.
func (c *Classifier) ClassifyAllergens(lines []string) []domain.AllergenTag {
	var tags []domain.AllergenTag
	for _, tag := range allergenTagOrder {
		if anyLineMatches(lines, allergenKeywords[tag]) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ClassifyDietary derives dietary tags from the whole ingredient list. The
// branches are mutually exclusive by construction — a recipe with meat gets
// no dietary tags at all, even when it also contains fish — so this must
// stay a single if/else chain, not independent predicates.
func (c *Classifier) ClassifyDietary(lines []string) []domain.DietaryTag {
	if len(lines) == 0 {
		return nil
	}

	hasMeat := anyLineMatches(lines, meatKeywords)
	hasFish := anyLineMatches(lines, allergenKeywords[domain.AllergenFish]) ||
		anyLineMatches(lines, allergenKeywords[domain.AllergenShellfish])
	hasAnimalProduct := anyLineMatches(lines, allergenKeywords[domain.AllergenEggs]) ||
		anyLineMatches(lines, allergenKeywords[domain.AllergenDairy]) ||
		anyLineMatches(lines, animalDerivativeKeywords)

	switch {
	case !hasMeat && !hasFish && !hasAnimalProduct:
		return []domain.DietaryTag{domain.DietaryVegan, domain.DietaryVegetarian}
	case !hasMeat && !hasFish:
		return []domain.DietaryTag{domain.DietaryVegetarian}
	case !hasMeat:
		return []domain.DietaryTag{domain.DietaryPescatarian}
	default:
		return nil
	}
}

// ClassifyRecipe produces the category rows the tagging collaborator
// persists per recipe.
func (c *Classifier) ClassifyRecipe(lines []string) []domain.RecipeCategory {
	var rows []domain.RecipeCategory
	for _, tag := range c.ClassifyAllergens(lines) {
		rows = append(rows, domain.RecipeCategory{Type: domain.CategoryTypeAllergen, Value: string(tag)})
	}
	for _, tag := range c.ClassifyDietary(lines) {
		rows = append(rows, domain.RecipeCategory{Type: domain.CategoryTypeDietary, Value: string(tag)})
	}
	return rows
}

func anyLineMatches(lines []string, keywords []string) bool {
	for _, line := range lines {
		lineWords := splitWords(line)
		for _, keyword := range keywords {
			if containsPhrase(lineWords, keyword) {
				return true
			}
		}
	}
	return false
}

// splitWords lowercases a line and splits it into alphanumeric words.
func splitWords(line string) []string {
	return strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsPhrase reports whether keyword occurs in lineWords on word
// boundaries. Multi-word keywords must match as a consecutive run, which
// keeps the whole-word guarantee without leaning on regex word-boundary
// semantics.
func containsPhrase(lineWords []string, keyword string) bool {
	keywordWords := strings.Fields(keyword)
	if len(keywordWords) == 0 || len(lineWords) < len(keywordWords) {
		return false
	}
	for i := 0; i+len(keywordWords) <= len(lineWords); i++ {
		matched := true
		for j, kw := range keywordWords {
			if lineWords[i+j] != kw {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
