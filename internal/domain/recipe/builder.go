package recipe

// Builder assembles a Recipe one field at a time. Build only succeeds once
// all four fields have been set.
type Builder struct {
	ingredients []string
	cookingTime int
	difficulty  DifficultyLevel
	servings    int

	hasIngredients bool
	hasCookingTime bool
	hasDifficulty  bool
	hasServings    bool
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Ingredients sets the ordered ingredient names
func (b *Builder) Ingredients(names ...string) *Builder {
	b.ingredients = append([]string(nil), names...)
	b.hasIngredients = true
	return b
}

// CookingTime sets the cooking time in minutes
func (b *Builder) CookingTime(minutes int) *Builder {
	b.cookingTime = minutes
	b.hasCookingTime = true
	return b
}

// Difficulty sets the difficulty level
func (b *Builder) Difficulty(level DifficultyLevel) *Builder {
	b.difficulty = level
	b.hasDifficulty = true
	return b
}

// Servings sets the number of servings
func (b *Builder) Servings(n int) *Builder {
	b.servings = n
	b.hasServings = true
	return b
}

// Missing returns the names of the fields not yet set, in shape order.
func (b *Builder) Missing() []string {
	var missing []string
	if !b.hasIngredients {
		missing = append(missing, FieldIngredients)
	}
	if !b.hasCookingTime {
		missing = append(missing, FieldCookingTime)
	}
	if !b.hasDifficulty {
		missing = append(missing, FieldDifficulty)
	}
	if !b.hasServings {
		missing = append(missing, FieldServings)
	}
	return missing
}

// Build validates and returns the Recipe. The builder can be reused.
func (b *Builder) Build() (*Recipe, error) {
	if missing := b.Missing(); len(missing) > 0 {
		return nil, &MissingFieldError{Field: missing[0]}
	}
	return NewRecipe(b.ingredients, b.cookingTime, b.difficulty, b.servings)
}
