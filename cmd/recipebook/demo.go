package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/alchemorsel/recipebook/internal/ports/inbound"
	"github.com/alchemorsel/recipebook/pkg/errors"
)

// runDemo walks through creating, using, filtering and doubling recipes,
// writing the narration to w.
func runDemo(w io.Writer, svc inbound.RecipeService, maxTime int) error {
	fmt.Fprintln(w, "=== CREATING RECIPES ===")

	// One step
	pasta, err := svc.AddRecipe(inbound.AddRecipeCommand{
		Ingredients: []string{"pasta", "tomato sauce", "cheese", "garlic"},
		CookingTime: 20,
		Difficulty:  "Easy",
		Servings:    4,
	})
	if err != nil {
		return errors.Wrap(err, "failed to add pasta recipe")
	}

	// Field by field
	pizza, err := svc.AddBuiltRecipe(recipe.NewBuilder().
		Ingredients("dough", "cheese", "pepperoni", "tomato sauce").
		CookingTime(30).
		Difficulty(recipe.DifficultyLevelMedium).
		Servings(6))
	if err != nil {
		return errors.Wrap(err, "failed to add pizza recipe")
	}

	fmt.Fprintln(w, "Pasta recipe:", describe(*pasta))
	fmt.Fprintln(w, "Pizza recipe:", describe(*pizza))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== USING THE RECIPES ===")
	cook(w, *pasta)
	cook(w, *pizza)

	fmt.Fprintln(w, "=== TYPE SAFETY BENEFITS ===")
	good, err := svc.AddRecipe(inbound.AddRecipeCommand{
		Ingredients: []string{"flour", "eggs", "milk"},
		CookingTime: 15,
		Difficulty:  "Easy",
		Servings:    2,
	})
	if err != nil {
		return errors.Wrap(err, "failed to add good recipe")
	}
	fmt.Fprintln(w, "Good recipe:", describe(*good))
	cook(w, *good)

	_, err = svc.AddRecipe(inbound.AddRecipeCommand{
		Ingredients: []string{"  "},
		CookingTime: 0,
		Difficulty:  "Easy",
		Servings:    2,
	})
	if err == nil {
		return errors.NewInternalError("bad recipe was accepted")
	}
	fmt.Fprintln(w, "Bad recipe rejected:", err)

	fmt.Fprintln(w, "=== WORKING WITH MULTIPLE RECIPES ===")
	quick := svc.FindQuickRecipes(maxTime)
	fmt.Fprintf(w, "Recipes under %d minutes: %d\n", maxTime, len(quick))
	for _, r := range quick {
		fmt.Fprintf(w, "- %s recipe (%d min)\n", r.Difficulty, r.CookingTime)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== MODIFYING RECIPES ===")
	doubled, err := svc.DoubleRecipe(pasta.Position)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Original pasta:", pasta.Servings, "servings")
	fmt.Fprintln(w, "Doubled pasta:", doubled.Servings, "servings")
	fmt.Fprintln(w, "Doubled pasta time:", doubled.CookingTime, "minutes")

	return nil
}

func cook(w io.Writer, r inbound.RecipeDTO) {
	fmt.Fprintf(w, "Cooking %s recipe...\n", r.Difficulty)
	fmt.Fprintf(w, "Ingredients: %s\n", strings.Join(r.Ingredients, ", "))
	fmt.Fprintf(w, "Time needed: %d minutes\n", r.CookingTime)
	fmt.Fprintf(w, "Serves: %d people\n", r.Servings)
	fmt.Fprintln(w, "---")
}

func describe(r inbound.RecipeDTO) string {
	return fmt.Sprintf("{ingredients: [%s], cooking_time: %d, difficulty: %s, servings: %d}",
		strings.Join(r.Ingredients, ", "), r.CookingTime, r.Difficulty, r.Servings)
}
