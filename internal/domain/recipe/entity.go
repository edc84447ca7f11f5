// Package recipe contains the core domain logic for recipe records.
// A Recipe is a fixed-shape value: every field is supplied at construction
// and never changes afterwards.
package recipe

import (
	"slices"
	"strings"
	"time"
)

// Recipe represents a single recipe record.
type Recipe struct {
	ingredients []string
	cookingTime int // minutes
	difficulty  DifficultyLevel
	servings    int
}

// NewRecipe creates a fully populated Recipe with validation.
// The ingredients slice is copied.
func NewRecipe(ingredients []string, cookingTime int, difficulty DifficultyLevel, servings int) (*Recipe, error) {
	if err := validateIngredients(ingredients); err != nil {
		return nil, err
	}

	if cookingTime <= 0 {
		return nil, ErrInvalidCookingTime
	}

	if !difficulty.IsValid() {
		return nil, ErrInvalidDifficulty
	}

	if servings <= 0 {
		return nil, ErrInvalidServings
	}

	return &Recipe{
		ingredients: slices.Clone(ingredients),
		cookingTime: cookingTime,
		difficulty:  difficulty,
		servings:    servings,
	}, nil
}

// Ingredients returns a copy of the ordered ingredient names
func (r *Recipe) Ingredients() []string {
	return slices.Clone(r.ingredients)
}

// CookingTime returns the cooking time in minutes
func (r *Recipe) CookingTime() int {
	return r.cookingTime
}

// CookingDuration returns the cooking time as a duration
func (r *Recipe) CookingDuration() time.Duration {
	return time.Duration(r.cookingTime) * time.Minute
}

// Difficulty returns the recipe's difficulty level
func (r *Recipe) Difficulty() DifficultyLevel {
	return r.difficulty
}

// Servings returns the number of servings
func (r *Recipe) Servings() int {
	return r.servings
}

// Equal reports whether two recipes hold the same field values.
// Recipes carry no identity, so this is the only notion of sameness.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.cookingTime == other.cookingTime &&
		r.difficulty == other.difficulty &&
		r.servings == other.servings &&
		slices.Equal(r.ingredients, other.ingredients)
}

// validateIngredients checks the ingredient list shape
func validateIngredients(ingredients []string) error {
	if len(ingredients) == 0 {
		return ErrNoIngredients
	}
	for _, name := range ingredients {
		if strings.TrimSpace(name) == "" {
			return ErrBlankIngredient
		}
	}
	return nil
}
