// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/brianvoe/gofakeit/v6"
)

// RecipeFactory provides methods to create test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{
		faker: gofakeit.New(seed),
	}
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	ingredients []string
	cookingTime int
	difficulty  recipe.DifficultyLevel
	servings    int
}

// NewRecipeBuilder creates a new recipe builder with default values
func NewRecipeBuilder() *RecipeBuilder {
	return &RecipeBuilder{
		ingredients: []string{"pasta", "tomato sauce", "cheese", "garlic"},
		cookingTime: 20,
		difficulty:  recipe.DifficultyLevelEasy,
		servings:    4,
	}
}

// WithIngredients sets the recipe ingredients
func (rb *RecipeBuilder) WithIngredients(ingredients ...string) *RecipeBuilder {
	rb.ingredients = ingredients
	return rb
}

// WithCookingTime sets the cooking time in minutes
func (rb *RecipeBuilder) WithCookingTime(minutes int) *RecipeBuilder {
	rb.cookingTime = minutes
	return rb
}

// WithDifficulty sets the recipe difficulty
func (rb *RecipeBuilder) WithDifficulty(difficulty recipe.DifficultyLevel) *RecipeBuilder {
	rb.difficulty = difficulty
	return rb
}

// WithServings sets the number of servings
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.servings = servings
	return rb
}

// Build constructs the recipe with validation
func (rb *RecipeBuilder) Build() (*recipe.Recipe, error) {
	return recipe.NewRecipe(rb.ingredients, rb.cookingTime, rb.difficulty, rb.servings)
}

// MustBuild is Build for fixtures known to be valid
func (rb *RecipeBuilder) MustBuild() *recipe.Recipe {
	r, err := rb.Build()
	if err != nil {
		panic(fmt.Sprintf("testutils: invalid fixture recipe: %v", err))
	}
	return r
}

// RecipeFactory methods for creating common recipe types

// Pasta returns the pasta recipe used throughout the examples
func (rf *RecipeFactory) Pasta() *recipe.Recipe {
	return NewRecipeBuilder().MustBuild()
}

// Pizza returns the pizza recipe used throughout the examples
func (rf *RecipeFactory) Pizza() *recipe.Recipe {
	return NewRecipeBuilder().
		WithIngredients("dough", "cheese", "pepperoni", "tomato sauce").
		WithCookingTime(30).
		WithDifficulty(recipe.DifficultyLevelMedium).
		WithServings(6).
		MustBuild()
}

// CreateRandomRecipe creates a valid recipe with random field values
func (rf *RecipeFactory) CreateRandomRecipe() *recipe.Recipe {
	count := rf.faker.Number(1, 6)
	ingredients := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if rf.faker.Bool() {
			ingredients = append(ingredients, rf.faker.Vegetable())
		} else {
			ingredients = append(ingredients, rf.faker.Fruit())
		}
	}

	return NewRecipeBuilder().
		WithIngredients(ingredients...).
		WithCookingTime(rf.faker.Number(1, 180)).
		WithDifficulty(recipe.DifficultyLevels[rf.faker.Number(0, len(recipe.DifficultyLevels)-1)]).
		WithServings(rf.faker.Number(1, 12)).
		MustBuild()
}

// CreateRandomRecipes creates n random recipes
func (rf *RecipeFactory) CreateRandomRecipes(n int) []*recipe.Recipe {
	recipes := make([]*recipe.Recipe, 0, n)
	for i := 0; i < n; i++ {
		recipes = append(recipes, rf.CreateRandomRecipe())
	}
	return recipes
}

// Number exposes the seeded faker for thresholds and sizes
func (rf *RecipeFactory) Number(min, max int) int {
	return rf.faker.Number(min, max)
}
