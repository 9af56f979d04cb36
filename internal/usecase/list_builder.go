package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantrysync/backend/internal/domain"
)

// ListBuilder converts recipes and meal plans into shopping list entries.
// It owns quantity scaling — serving ratios and repeat counts — so the
// merge service only ever sees pre-scaled inputs.
type ListBuilder struct {
	parser *IngredientParser
	merger *MergeService
}

// NewListBuilder creates a new list builder.
func NewListBuilder(parser *IngredientParser, merger *MergeService) *ListBuilder {
	return &ListBuilder{parser: parser, merger: merger}
}

// PlannedRecipe is one recipe's contribution to a meal plan. Repeats is how
// many times the recipe appears in the plan; values below 1 count as 1.
type PlannedRecipe struct {
	RecipeName  string   `json:"recipe_name"`
	Repeats     int      `json:"repeats"`
	Ingredients []string `json:"ingredients"`
}

// AddRecipeIngredients parses the given ingredient lines, scales each
// quantity by the serving ratio, attaches a "From <recipe>" attribution
// note, and merges everything into the target list in order.
func (b *ListBuilder) AddRecipeIngredients(ctx context.Context, listID uuid.UUID, recipeName string, ratio float64, lines []string) ([]domain.MergeResult, error) {
	if ratio <= 0 {
		ratio = 1
	}
	inputs := make([]domain.MergeInput, 0, len(lines))
	for _, line := range lines {
		inputs = append(inputs, b.buildInput(line, recipeName, ratio))
	}
	return b.merger.AddOrMergeAll(ctx, listID, inputs)
}

// AddMealPlanIngredients adds every recipe in a meal plan, multiplying
// quantities by how many times each recipe appears.
func (b *ListBuilder) AddMealPlanIngredients(ctx context.Context, listID uuid.UUID, recipes []PlannedRecipe) ([]domain.MergeResult, error) {
	var results []domain.MergeResult
	for _, recipe := range recipes {
		repeats := recipe.Repeats
		if repeats < 1 {
			repeats = 1
		}
		recipeResults, err := b.AddRecipeIngredients(ctx, listID, recipe.RecipeName, float64(repeats), recipe.Ingredients)
		if err != nil {
			return results, err
		}
		results = append(results, recipeResults...)
	}
	return results, nil
}

func (b *ListBuilder) buildInput(line, recipeName string, ratio float64) domain.MergeInput {
	parsed := b.parser.Parse(line)

	quantity := parsed.Quantity
	if quantity != nil {
		scaled := *quantity * ratio
		quantity = &scaled
	}

	notes := parsed.Notes
	if recipeName != "" {
		notes = CombineNotes(notes, fmt.Sprintf("From %s", recipeName))
	}

	return domain.MergeInput{
		Name:     parsed.Name,
		Unit:     parsed.Unit,
		Quantity: quantity,
		Notes:    notes,
	}
}
