package recipe

import (
	"math"
	"slices"
)

const (
	// DoubleServingsFactor multiplies servings when a recipe is doubled
	DoubleServingsFactor = 2
	// DoubleExtraMinutes is added to the cooking time of a doubled batch
	DoubleExtraMinutes = 5
)

// QuickFilter returns the recipes whose cooking time is at most maxTime
// minutes, in their original order. Nil entries are skipped. The input is
// not modified and the result is never nil.
func QuickFilter(recipes []*Recipe, maxTime int) []*Recipe {
	quick := make([]*Recipe, 0, len(recipes))
	for _, r := range recipes {
		if isQuick(r, maxTime) {
			quick = append(quick, r)
		}
	}
	return quick
}

func isQuick(r *Recipe, maxTime int) bool {
	return r != nil && r.cookingTime <= maxTime
}

// Double returns a new recipe for a doubled batch: twice the servings and
// DoubleExtraMinutes more cooking time. The original is left unchanged and
// the copy owns its ingredient slice. It fails with ErrDoubleOverflow when
// either adjusted field would not fit in an int.
func Double(r *Recipe) (*Recipe, error) {
	if r == nil {
		return nil, ErrNilRecipe
	}
	if r.servings > math.MaxInt/DoubleServingsFactor ||
		r.cookingTime > math.MaxInt-DoubleExtraMinutes {
		return nil, ErrDoubleOverflow
	}

	return &Recipe{
		ingredients: slices.Clone(r.ingredients),
		cookingTime: r.cookingTime + DoubleExtraMinutes,
		difficulty:  r.difficulty,
		servings:    r.servings * DoubleServingsFactor,
	}, nil
}
