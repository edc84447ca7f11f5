// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"github.com/alchemorsel/recipebook/internal/domain/recipe"
)

// RecipeService defines the use cases over one recipe collection.
// Positions are the zero-based insertion order; the collection never
// removes recipes, so a position stays valid once returned.
type RecipeService interface {
	// Commands - operations that modify state
	AddRecipe(cmd AddRecipeCommand) (*RecipeDTO, error)
	AddBuiltRecipe(builder *recipe.Builder) (*RecipeDTO, error)

	// Queries - operations that read state
	GetRecipe(position int) (*RecipeDTO, error)
	ListRecipes() []RecipeDTO
	FindQuickRecipes(maxTime int) []RecipeDTO

	// Derived copies, not added to the collection
	DoubleRecipe(position int) (*RecipeDTO, error)
}

// AddRecipeCommand contains data for adding a recipe in one step
type AddRecipeCommand struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,ingredient"`
	CookingTime int      `json:"cooking_time" validate:"gt=0"`
	Difficulty  string   `json:"difficulty" validate:"required,difficulty"`
	Servings    int      `json:"servings" validate:"gt=0"`
}

// NotStored is the position reported for derived recipes
const NotStored = -1

// RecipeDTO is the read model handed to callers
type RecipeDTO struct {
	Position    int      `json:"position"`
	DoubledFrom *int     `json:"doubled_from,omitempty"`
	Ingredients []string `json:"ingredients"`
	CookingTime int      `json:"cooking_time"`
	Difficulty  string   `json:"difficulty"`
	Servings    int      `json:"servings"`
}
