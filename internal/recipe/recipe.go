// Package recipe contains the recipe model and the pure operations
// performed on it: validation, serving rescaling and seasonal picking.
package recipe

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/matt-dz/cookingpuppy/internal/season"
)

type Ingredient struct {
	Name  string  `json:"name" validate:"notblank"`
	Value float64 `json:"value" validate:"gte=0"`
	Unit  string  `json:"unit"`
}

// Input is a recipe as submitted, before the store assigns it an id.
type Input struct {
	Name        string        `json:"name" validate:"notblank"`
	Season      season.Season `json:"season" validate:"validateFn"`
	NbPerson    int           `json:"nbPerson" validate:"min=1"`
	Ingredients []Ingredient  `json:"ingredients" validate:"required,min=1,dive"`
	Recipe      string        `json:"recipe"`
}

type Recipe struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Season      season.Season `json:"season"`
	NbPerson    int           `json:"nbPerson"`
	Ingredients []Ingredient  `json:"ingredients"`
	Recipe      string        `json:"recipe"`
}

var validate = newValidator()

func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(f.String()) != ""
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", notBlank)
	// Report json names so messages match what the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the input against the recipe invariants. The returned
// error is a *ValidationError.
func (in Input) Validate() error {
	return ValidateStruct(in)
}

// ValidateStruct checks v against its validate tags using the recipe rules,
// notblank included. Fields are reported by json name relative to v. The
// returned error is a *ValidationError.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &ValidationError{Fields: []FieldError{{Message: err.Error()}}}
	}

	verr := &ValidationError{}
	for _, e := range validationErrs {
		_, field, _ := strings.Cut(e.Namespace(), ".")
		verr.Fields = append(verr.Fields, FieldError{
			Field:   field,
			Message: fieldMessage(e),
		})
	}
	return verr
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "notblank", "required":
		return "must not be empty"
	case "min":
		if e.Kind() == reflect.Slice {
			return "must contain at least " + e.Param() + " element"
		}
		return "must be at least " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "validateFn":
		return "must be one of Toutes, Printemps, Été, Automne, Hiver"
	default:
		return "is invalid"
	}
}

// Clone returns a copy of in that shares no memory with it.
func (in Input) Clone() Input {
	out := in
	out.Ingredients = cloneIngredients(in.Ingredients)
	return out
}

// WithID builds the stored form of in.
func (in Input) WithID(id int64) Recipe {
	return Recipe{
		ID:          id,
		Name:        in.Name,
		Season:      in.Season,
		NbPerson:    in.NbPerson,
		Ingredients: cloneIngredients(in.Ingredients),
		Recipe:      in.Recipe,
	}
}

// Input returns r without its id.
func (r Recipe) Input() Input {
	return Input{
		Name:        r.Name,
		Season:      r.Season,
		NbPerson:    r.NbPerson,
		Ingredients: cloneIngredients(r.Ingredients),
		Recipe:      r.Recipe,
	}
}

// Steps splits the free-text instructions into lines.
func (r Recipe) Steps() []string {
	if r.Recipe == "" {
		return nil
	}
	return strings.Split(r.Recipe, "\n")
}

func cloneIngredients(in []Ingredient) []Ingredient {
	if in == nil {
		return nil
	}
	out := make([]Ingredient, len(in))
	copy(out, in)
	return out
}
