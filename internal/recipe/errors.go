package recipe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("invalid recipe")
	ErrNotFound           = errors.New("no recipe available for the current season")
	ErrIngredientMismatch = errors.New("ingredient has no base entry")
	ErrInvalidServings    = fmt.Errorf("%w: serving counts must be at least 1", ErrValidation)
	ErrInvalidQuantity    = fmt.Errorf("%w: quantity must be a non-negative number", ErrValidation)
	ErrRowOutOfRange      = errors.New("ingredient row out of range")
	ErrUnknownField       = errors.New("unknown ingredient field")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field of an Input that breaks an invariant.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+" "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IngredientMismatchError is returned when a displayed ingredient cannot be
// matched by name to the recipe's base ingredients.
type IngredientMismatchError struct {
	Name string
}

func (e *IngredientMismatchError) Error() string {
	return fmt.Sprintf("%s: %q", ErrIngredientMismatch.Error(), e.Name)
}

func (e *IngredientMismatchError) Unwrap() error {
	return ErrIngredientMismatch
}
