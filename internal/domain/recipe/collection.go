package recipe

import "slices"

// Collection is an ordered, append-only sequence of recipes. It does not
// deduplicate and offers no removal. Not safe for concurrent use.
type Collection struct {
	recipes []*Recipe
}

// NewCollection creates a collection holding the given recipes in order
func NewCollection(recipes ...*Recipe) *Collection {
	c := &Collection{}
	for _, r := range recipes {
		c.Add(r)
	}
	return c
}

// Add appends a recipe and returns its position. Nil recipes are ignored
// and reported as -1.
func (c *Collection) Add(r *Recipe) int {
	if r == nil {
		return -1
	}
	c.recipes = append(c.recipes, r)
	return len(c.recipes) - 1
}

// Len returns the number of recipes held
func (c *Collection) Len() int {
	return len(c.recipes)
}

// At returns the recipe at position i
func (c *Collection) At(i int) (*Recipe, bool) {
	if i < 0 || i >= len(c.recipes) {
		return nil, false
	}
	return c.recipes[i], true
}

// All returns a copy of the recipe sequence
func (c *Collection) All() []*Recipe {
	return slices.Clone(c.recipes)
}

// QuickFilter applies QuickFilter to the whole collection
func (c *Collection) QuickFilter(maxTime int) []*Recipe {
	return QuickFilter(c.recipes, maxTime)
}

// QuickPositions returns the positions of the recipes QuickFilter keeps,
// in ascending order. The result is never nil.
func (c *Collection) QuickPositions(maxTime int) []int {
	positions := make([]int, 0, len(c.recipes))
	for i, r := range c.recipes {
		if isQuick(r, maxTime) {
			positions = append(positions, i)
		}
	}
	return positions
}
