package domain

// AllergenTag identifies one of the fixed allergen categories a recipe can
// be flagged with.
type AllergenTag string

// Allergen categories.
const (
	AllergenNuts      AllergenTag = "nuts"
	AllergenEggs      AllergenTag = "eggs"
	AllergenDairy     AllergenTag = "dairy"
	AllergenGluten    AllergenTag = "gluten"
	AllergenShellfish AllergenTag = "shellfish"
	AllergenSoy       AllergenTag = "soy"
	AllergenFish      AllergenTag = "fish"
)

// DietaryTag identifies a dietary classification. A recipe maps to zero,
// one, or two tags; vegan implies vegetarian, and vegetarian never mixes
// with pescatarian.
type DietaryTag string

// Dietary categories.
const (
	DietaryVegan       DietaryTag = "vegan"
	DietaryVegetarian  DietaryTag = "vegetarian"
	DietaryPescatarian DietaryTag = "pescatarian"
)

// Category row types persisted by the tagging collaborator.
const (
	CategoryTypeAllergen = "allergen"
	CategoryTypeDietary  = "dietary"
)

// RecipeCategory is one persisted classification row for a recipe.
type RecipeCategory struct {
	Type  string `json:"category_type"`
	Value string `json:"category_value"`
}
