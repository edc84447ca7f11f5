package recipe

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/alchemorsel/recipebook/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the recipe rules registered
func NewValidator() *validator.Validate {
	validate := validator.New()

	// Register custom validation rules
	_ = validate.RegisterValidation("ingredient", validateIngredient)
	_ = validate.RegisterValidation("difficulty", validateDifficulty)

	return validate
}

// validateIngredient rejects blank ingredient names
func validateIngredient(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateDifficulty accepts the known difficulty labels in any casing
func validateDifficulty(fl validator.FieldLevel) bool {
	_, err := recipe.ParseDifficulty(fl.Field().String())
	return err == nil
}

// toValidationError converts validator output into an AppError
func toValidationError(err error) *errors.AppError {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.NewValidationError(err.Error()).WithCause(err)
	}

	out := make([]errors.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, errors.ValidationError{
			Field:   fe.Field(),
			Value:   fe.Value(),
			Tag:     fe.Tag(),
			Message: validationMessage(fe),
		})
	}
	return errors.NewValidationErrors(out).WithCause(err)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s item(s)", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "ingredient":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "difficulty":
		return fmt.Sprintf("%s must be one of Easy, Medium, Hard", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
