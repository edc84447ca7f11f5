// Package testutils provides custom assertions and testing utilities
package testutils

import (
	"testing"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RecipeAssertions provides recipe-specific assertion methods
type RecipeAssertions struct {
	t *testing.T
}

// NewRecipeAssertions creates a new recipe assertions helper
func NewRecipeAssertions(t *testing.T) *RecipeAssertions {
	return &RecipeAssertions{t: t}
}

// ValidRecipe asserts that a recipe satisfies the shape invariants
func (ra *RecipeAssertions) ValidRecipe(r *recipe.Recipe, msgAndArgs ...interface{}) {
	require.NotNil(ra.t, r, "Recipe should not be nil")
	assert.NotEmpty(ra.t, r.Ingredients(), msgAndArgs...)
	assert.Positive(ra.t, r.CookingTime(), msgAndArgs...)
	assert.Positive(ra.t, r.Servings(), msgAndArgs...)
	assert.True(ra.t, r.Difficulty().IsValid(), msgAndArgs...)
}

// SameRecipe asserts field-for-field equality
func (ra *RecipeAssertions) SameRecipe(expected, actual *recipe.Recipe, msgAndArgs ...interface{}) {
	require.NotNil(ra.t, expected)
	require.NotNil(ra.t, actual)
	assert.Equal(ra.t, expected.Ingredients(), actual.Ingredients(), msgAndArgs...)
	assert.Equal(ra.t, expected.CookingTime(), actual.CookingTime(), msgAndArgs...)
	assert.Equal(ra.t, expected.Difficulty(), actual.Difficulty(), msgAndArgs...)
	assert.Equal(ra.t, expected.Servings(), actual.Servings(), msgAndArgs...)
	assert.True(ra.t, expected.Equal(actual), msgAndArgs...)
}

// QuickOnly asserts every recipe fits within maxTime
func (ra *RecipeAssertions) QuickOnly(recipes []*recipe.Recipe, maxTime int) {
	for i, r := range recipes {
		assert.LessOrEqual(ra.t, r.CookingTime(), maxTime, "recipe %d exceeds %d minutes", i, maxTime)
	}
}
