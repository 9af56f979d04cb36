package domain

// ParsedIngredient is the structured form of one free-text ingredient line.
// It is produced by the ingredient parser, immutable once returned, and has
// no persistent identity of its own. Quantity and Unit are optional; Name
// is never empty.
type ParsedIngredient struct {
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Name     string   `json:"name"`
	Notes    string   `json:"notes,omitempty"`
}
