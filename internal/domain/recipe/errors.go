package recipe

import (
	"errors"
	"fmt"
)

// Domain errors for recipe operations

var (
	// Shape validation errors
	ErrNoIngredients      = errors.New("recipe must have at least one ingredient")
	ErrBlankIngredient    = errors.New("ingredient name must not be blank")
	ErrInvalidCookingTime = errors.New("cooking time must be greater than 0")
	ErrInvalidServings    = errors.New("servings must be greater than 0")
	ErrInvalidDifficulty  = errors.New("difficulty must be one of Easy, Medium, Hard")

	// Construction errors
	ErrMissingField = errors.New("recipe field was never set")

	// Operation errors
	ErrNilRecipe      = errors.New("recipe is nil")
	ErrDoubleOverflow = errors.New("doubled recipe exceeds the servings or cooking time range")
)

// Field names as they appear in the recipe shape
const (
	FieldIngredients = "ingredients"
	FieldCookingTime = "cooking_time"
	FieldDifficulty  = "difficulty"
	FieldServings    = "servings"
)

// MissingFieldError reports which field a Builder was asked to build without.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// Is makes errors.Is(err, ErrMissingField) succeed
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
