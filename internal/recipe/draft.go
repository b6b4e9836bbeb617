package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matt-dz/cookingpuppy/internal/season"
)

type Field string

const (
	FieldName  Field = "name"
	FieldValue Field = "value"
	FieldUnit  Field = "unit"
)

const defaultNbPerson = 1

// Draft is the editable state of a recipe being written. Edits are applied
// one field at a time; Input returns the value that gets submitted.
type Draft struct {
	name         string
	season       season.Season
	nbPerson     int
	ingredients  []Ingredient
	instructions string
}

// NewDraft returns an empty draft: all seasons, one person and a single
// blank ingredient row.
func NewDraft() *Draft {
	d := &Draft{}
	d.Reset()
	return d
}

// Reset returns d to the state of NewDraft, e.g. after a successful save.
func (d *Draft) Reset() {
	d.name = ""
	d.season = season.All
	d.nbPerson = defaultNbPerson
	d.ingredients = []Ingredient{{}}
	d.instructions = ""
}

func (d *Draft) Rows() int {
	return len(d.ingredients)
}

func (d *Draft) AddIngredientRow() {
	d.ingredients = append(d.ingredients, Ingredient{})
}

// RemoveIngredientRow drops the last row. The final row is never removed;
// false is returned in that case.
func (d *Draft) RemoveIngredientRow() bool {
	if len(d.ingredients) <= 1 {
		return false
	}
	d.ingredients = d.ingredients[:len(d.ingredients)-1]
	return true
}

// SetField sets one field of an ingredient row from its textual form.
func (d *Draft) SetField(row int, field Field, value string) error {
	if row < 0 || row >= len(d.ingredients) {
		return fmt.Errorf("row %d of %d: %w", row, len(d.ingredients), ErrRowOutOfRange)
	}

	ing := d.ingredients[row]
	switch field {
	case FieldName:
		ing.Name = value
	case FieldUnit:
		ing.Unit = value
	case FieldValue:
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || v < 0 {
			return fmt.Errorf("row %d value %q: %w", row, value, ErrInvalidQuantity)
		}
		ing.Value = v
	default:
		return fmt.Errorf("%q: %w", string(field), ErrUnknownField)
	}
	d.ingredients[row] = ing
	return nil
}

func (d *Draft) SetName(name string) {
	d.name = name
}

func (d *Draft) SetSeason(s season.Season) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	d.season = s
	return nil
}

func (d *Draft) SetNbPerson(n int) error {
	if n < 1 {
		return ErrInvalidServings
	}
	d.nbPerson = n
	return nil
}

func (d *Draft) SetInstructions(text string) {
	d.instructions = text
}

// Input returns a snapshot of the draft ready for submission.
func (d *Draft) Input() Input {
	return Input{
		Name:        d.name,
		Season:      d.season,
		NbPerson:    d.nbPerson,
		Ingredients: cloneIngredients(d.ingredients),
		Recipe:      d.instructions,
	}
}
