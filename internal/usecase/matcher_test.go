package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrysync/backend/internal/domain"
)

func TestSingularize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{word: "apples", want: "apple"},
		{word: "cherries", want: "cherry"},
		{word: "tomatoes", want: "tomato"},
		{word: "potatoes", want: "potato"},
		{word: "dishes", want: "dish"},
		{word: "boxes", want: "box"},
		{word: "leaves", want: "leaf"},
		{word: "grass", want: "grass"},
		{word: "glasses", want: "glass"},
		{word: "cloves", want: "clove"},
		{word: "olives", want: "olive"},
		{word: "chives", want: "chive"},
		{word: "pies", want: "pie"},
		{word: "egg", want: "egg"},
		{word: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Singularize(tc.word))
		})
	}
}

func TestSingularizeIdempotent(t *testing.T) {
	t.Parallel()

	words := []string{
		"apples", "cherries", "tomatoes", "leaves", "grass", "glasses",
		"cloves", "boxes", "carrots", "flour", "bananas", "knives",
	}
	for _, word := range words {
		once := Singularize(word)
		assert.Equal(t, once, Singularize(once), "Singularize(%q)", word)
	}
}

func TestNamesMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "plural vs singular", a: "Apples", b: "apple", want: true},
		{name: "reflexive", a: "red onions", b: "red onions", want: true},
		{name: "each word singularized", a: "cherry tomatoes", b: "Cherry Tomato", want: true},
		{name: "whitespace ignored", a: "  green beans ", b: "green bean", want: true},
		{name: "different ingredients", a: "apples", b: "oranges", want: false},
		{name: "partial word is not a match", a: "apple", b: "apple sauce", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NamesMatch(tc.a, tc.b))
		})
	}
}

func TestUnitsMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, UnitsMatch("", ""))
	assert.True(t, UnitsMatch(" ", ""))
	assert.True(t, UnitsMatch("cups", "CUPS"))
	assert.True(t, UnitsMatch(" cups ", "cups"))
	assert.False(t, UnitsMatch("cups", ""))
	assert.False(t, UnitsMatch("", "tbsp"))
	assert.False(t, UnitsMatch("cups", "tbsp"))
}

func TestCombineNotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing string
		incoming string
		want     string
	}{
		{name: "both empty", existing: "", incoming: "", want: ""},
		{name: "existing empty", existing: "", incoming: "chopped", want: "chopped"},
		{name: "incoming empty", existing: "diced", incoming: "", want: "diced"},
		{name: "equal returns either", existing: "melted", incoming: "melted", want: "melted"},
		{name: "substring keeps the longer", existing: "chopped", incoming: "finely chopped", want: "finely chopped"},
		{name: "superstring keeps the longer", existing: "finely chopped", incoming: "chopped", want: "finely chopped"},
		{name: "distinct notes concatenate", existing: "melted", incoming: "From Pancakes", want: "melted; From Pancakes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CombineNotes(tc.existing, tc.incoming))
		})
	}
}

func TestFindMatch(t *testing.T) {
	t.Parallel()

	item := func(name, unit string, checked bool) domain.ShoppingItem {
		return domain.ShoppingItem{ID: uuid.New(), Name: name, Unit: unit, Checked: checked}
	}
	matcher := NewItemMatcher()

	t.Run("matches plural name with same unit", func(t *testing.T) {
		t.Parallel()
		candidates := []domain.ShoppingItem{item("Apples", "", false)}
		got := matcher.FindMatch("apple", "", candidates)
		require.NotNil(t, got)
		assert.Equal(t, candidates[0].ID, got.ID)
	})

	t.Run("checked items are never returned", func(t *testing.T) {
		t.Parallel()
		candidates := []domain.ShoppingItem{item("apples", "", true)}
		assert.Nil(t, matcher.FindMatch("apples", "", candidates))
	})

	t.Run("first match wins over later matches", func(t *testing.T) {
		t.Parallel()
		candidates := []domain.ShoppingItem{
			item("apples", "", false),
			item("apple", "", false),
		}
		got := matcher.FindMatch("Apples", "", candidates)
		require.NotNil(t, got)
		assert.Equal(t, candidates[0].ID, got.ID)
	})

	t.Run("checked first match falls through to unchecked", func(t *testing.T) {
		t.Parallel()
		candidates := []domain.ShoppingItem{
			item("apples", "", true),
			item("apple", "", false),
		}
		got := matcher.FindMatch("apples", "", candidates)
		require.NotNil(t, got)
		assert.Equal(t, candidates[1].ID, got.ID)
	})

	t.Run("unit mismatch prevents the match", func(t *testing.T) {
		t.Parallel()
		candidates := []domain.ShoppingItem{item("flour", "cups", false)}
		assert.Nil(t, matcher.FindMatch("flour", "g", candidates))
		assert.Nil(t, matcher.FindMatch("flour", "", candidates))
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, matcher.FindMatch("flour", "", nil))
	})
}
