package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alchemorsel/recipebook/internal/application/recipe"
	"github.com/alchemorsel/recipebook/internal/infrastructure/monitoring"
	"github.com/alchemorsel/recipebook/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunDemo(t *testing.T) {
	svc := recipe.NewRecipeService(monitoring.NopMetrics{}, zap.NewNop())

	var out bytes.Buffer
	require.NoError(t, runDemo(&out, svc, 25))

	text := out.String()
	for _, section := range []string{
		"=== CREATING RECIPES ===",
		"=== USING THE RECIPES ===",
		"=== TYPE SAFETY BENEFITS ===",
		"=== WORKING WITH MULTIPLE RECIPES ===",
		"=== MODIFYING RECIPES ===",
	} {
		assert.Contains(t, text, section)
	}

	assert.Contains(t, text, "Cooking Easy recipe...\nIngredients: pasta, tomato sauce, cheese, garlic\nTime needed: 20 minutes\nServes: 4 people\n---\n")
	assert.Contains(t, text, "Cooking Medium recipe...\nIngredients: dough, cheese, pepperoni, tomato sauce\nTime needed: 30 minutes\nServes: 6 people\n---\n")
	assert.Contains(t, text, "Bad recipe rejected: VALIDATION_FAILED")
	assert.Contains(t, text, "Recipes under 25 minutes: 2\n- Easy recipe (20 min)\n- Easy recipe (15 min)\n")
	assert.Contains(t, text, "Original pasta: 4 servings\nDoubled pasta: 8 servings\nDoubled pasta time: 25 minutes\n")

	// The doubled copy is not stored and the bad recipe was rejected.
	assert.Len(t, svc.ListRecipes(), 3)
}

func TestRunDemo_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		maxTime int
		want    string
	}{
		{name: "nothing quick", maxTime: 10, want: "Recipes under 10 minutes: 0\n\n"},
		{name: "only good recipe", maxTime: 15, want: "Recipes under 15 minutes: 1\n- Easy recipe (15 min)\n"},
		{name: "everything", maxTime: 30, want: "Recipes under 30 minutes: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			svc := recipe.NewRecipeService(monitoring.NopMetrics{}, zap.NewNop())
			require.NoError(t, runDemo(&out, svc, tt.maxTime))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestDescribe(t *testing.T) {
	svc := recipe.NewRecipeService(monitoring.NopMetrics{}, zap.NewNop())
	var out bytes.Buffer
	require.NoError(t, runDemo(&out, svc, 25))

	line := ""
	for _, l := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(l, "Good recipe:") {
			line = l
		}
	}
	assert.Equal(t, "Good recipe: {ingredients: [flour, eggs, milk], cooking_time: 15, difficulty: Easy, servings: 2}", line)
}

func TestRunDemo_RecordsMetrics(t *testing.T) {
	metrics := testutils.NewMockRecipeMetrics()
	metrics.SetupStandardMockBehavior()
	svc := recipe.NewRecipeService(metrics, zap.NewNop())

	var out bytes.Buffer
	require.NoError(t, runDemo(&out, svc, 25))

	metrics.AssertNumberOfCalls(t, "RecordRecipeAdded", 3)
	metrics.AssertNumberOfCalls(t, "RecordRecipeDoubled", 1)
	metrics.AssertCalled(t, "RecordQuickFilter", 2)
	assert.Equal(t, 1, metrics.Rejected("validation"))
}
