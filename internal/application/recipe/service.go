// Package recipe provides the application layer for recipe management
// This implements the use cases defined in the inbound ports
package recipe

import (
	stderrors "errors"

	"github.com/alchemorsel/recipebook/internal/domain/recipe"
	"github.com/alchemorsel/recipebook/internal/ports/inbound"
	"github.com/alchemorsel/recipebook/internal/ports/outbound"
	"github.com/alchemorsel/recipebook/pkg/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Rejection reasons reported to metrics
const (
	reasonValidation   = "validation"
	reasonMissingField = "missing_field"
	reasonShape        = "shape"
)

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipes   *recipe.Collection
	validator *validator.Validate
	metrics   outbound.RecipeMetrics
	logger    *zap.Logger
}

// NewRecipeService creates a new recipe service over an empty collection
func NewRecipeService(metrics outbound.RecipeMetrics, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		recipes:   recipe.NewCollection(),
		validator: NewValidator(),
		metrics:   metrics,
		logger:    logger.Named("recipe-service"),
	}
}

var _ inbound.RecipeService = (*RecipeService)(nil)

// AddRecipe validates the command and appends the recipe to the collection
func (s *RecipeService) AddRecipe(cmd inbound.AddRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Debug("Adding recipe",
		zap.Strings("ingredients", cmd.Ingredients),
		zap.Int("cooking_time", cmd.CookingTime),
		zap.String("difficulty", cmd.Difficulty),
		zap.Int("servings", cmd.Servings),
	)

	if err := s.validator.Struct(cmd); err != nil {
		appErr := toValidationError(err)
		s.reject(reasonValidation, appErr)
		return nil, appErr
	}

	difficulty, err := recipe.ParseDifficulty(cmd.Difficulty)
	if err != nil {
		appErr := errors.NewValidationError(err.Error()).WithCause(err)
		s.reject(reasonValidation, appErr)
		return nil, appErr
	}

	r, err := recipe.NewRecipe(cmd.Ingredients, cmd.CookingTime, difficulty, cmd.Servings)
	if err != nil {
		appErr := errors.NewValidationError(err.Error()).WithCause(err)
		s.reject(reasonShape, appErr)
		return nil, appErr
	}

	return s.store(r), nil
}

// AddBuiltRecipe builds the recipe from an incrementally populated builder
// and appends it to the collection
func (s *RecipeService) AddBuiltRecipe(builder *recipe.Builder) (*inbound.RecipeDTO, error) {
	if builder == nil {
		return nil, errors.NewBadRequestError("builder is required")
	}

	r, err := builder.Build()
	if err != nil {
		var missing *recipe.MissingFieldError
		if stderrors.As(err, &missing) {
			appErr := errors.NewMissingFieldError(missing.Field, err)
			s.reject(reasonMissingField, appErr)
			return nil, appErr
		}
		appErr := errors.NewValidationError(err.Error()).WithCause(err)
		s.reject(reasonShape, appErr)
		return nil, appErr
	}

	return s.store(r), nil
}

// GetRecipe returns the recipe at a position
func (s *RecipeService) GetRecipe(position int) (*inbound.RecipeDTO, error) {
	r, ok := s.recipes.At(position)
	if !ok {
		return nil, errors.NewRecipeNotFoundError(position)
	}
	dto := toDTO(r, position)
	return &dto, nil
}

// ListRecipes returns every recipe in insertion order
func (s *RecipeService) ListRecipes() []inbound.RecipeDTO {
	all := s.recipes.All()
	dtos := make([]inbound.RecipeDTO, 0, len(all))
	for i, r := range all {
		dtos = append(dtos, toDTO(r, i))
	}
	return dtos
}

// FindQuickRecipes returns the recipes that cook in at most maxTime minutes
func (s *RecipeService) FindQuickRecipes(maxTime int) []inbound.RecipeDTO {
	positions := s.recipes.QuickPositions(maxTime)

	dtos := make([]inbound.RecipeDTO, 0, len(positions))
	for _, position := range positions {
		r, _ := s.recipes.At(position)
		dtos = append(dtos, toDTO(r, position))
	}

	s.metrics.RecordQuickFilter(len(dtos))
	s.logger.Debug("Quick recipes found",
		zap.Int("max_time", maxTime),
		zap.Int("matches", len(dtos)),
		zap.Int("total", s.recipes.Len()),
	)

	return dtos
}

// DoubleRecipe returns a doubled copy of the recipe at a position. The
// stored recipe is left unchanged and the copy is not stored.
func (s *RecipeService) DoubleRecipe(position int) (*inbound.RecipeDTO, error) {
	r, ok := s.recipes.At(position)
	if !ok {
		return nil, errors.NewRecipeNotFoundError(position)
	}

	doubled, err := recipe.Double(r)
	if err != nil {
		appErr := errors.NewValidationError(err.Error()).
			WithCause(err).
			WithMetadata("position", position)
		s.logger.Warn("Recipe not doubled",
			zap.Int("position", position),
			zap.Error(err),
		)
		return nil, appErr
	}
	s.metrics.RecordRecipeDoubled()

	s.logger.Info("Recipe doubled",
		zap.Int("position", position),
		zap.Int("servings", doubled.Servings()),
		zap.Int("cooking_time", doubled.CookingTime()),
	)

	dto := toDTO(doubled, inbound.NotStored)
	dto.DoubledFrom = &position
	return &dto, nil
}

// store appends a constructed recipe and reports it
func (s *RecipeService) store(r *recipe.Recipe) *inbound.RecipeDTO {
	position := s.recipes.Add(r)
	s.metrics.RecordRecipeAdded()

	s.logger.Info("Recipe added",
		zap.Int("position", position),
		zap.String("difficulty", r.Difficulty().String()),
		zap.Int("cooking_time", r.CookingTime()),
	)

	dto := toDTO(r, position)
	return &dto
}

func (s *RecipeService) reject(reason string, err *errors.AppError) {
	s.metrics.RecordRecipeRejected(reason)
	s.logger.Warn("Recipe rejected",
		zap.String("reason", reason),
		zap.String("code", string(errors.GetCode(err))),
		zap.String("details", err.Details),
	)
}

func toDTO(r *recipe.Recipe, position int) inbound.RecipeDTO {
	return inbound.RecipeDTO{
		Position:    position,
		Ingredients: r.Ingredients(),
		CookingTime: r.CookingTime(),
		Difficulty:  r.Difficulty().String(),
		Servings:    r.Servings(),
	}
}
