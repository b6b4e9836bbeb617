package recipe

import (
	"math"
	"strconv"
)

// Scale rescales base ingredient quantities from baseServings to
// targetServings. The result is a new slice and quantities are not rounded.
func Scale(baseServings, targetServings int, base []Ingredient) ([]Ingredient, error) {
	if baseServings < 1 || targetServings < 1 {
		return nil, ErrInvalidServings
	}

	ratio := float64(targetServings) / float64(baseServings)
	out := make([]Ingredient, len(base))
	for i, ing := range base {
		out[i] = Ingredient{
			Name:  ing.Name,
			Value: ratio * ing.Value,
			Unit:  ing.Unit,
		}
	}
	return out, nil
}

// Rescale recomputes every ingredient of current from its base entry, matched
// by exact name. Quantities always derive from base, so rescaling the same
// list repeatedly does not drift. An ingredient of current that is missing
// from base fails the whole call with an *IngredientMismatchError.
func Rescale(baseServings, targetServings int, base, current []Ingredient) ([]Ingredient, error) {
	scaled, err := Scale(baseServings, targetServings, base)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(base))
	for i, ing := range base {
		if _, ok := byName[ing.Name]; !ok {
			byName[ing.Name] = i
		}
	}

	out := make([]Ingredient, len(current))
	for i, ing := range current {
		idx, ok := byName[ing.Name]
		if !ok {
			return nil, &IngredientMismatchError{Name: ing.Name}
		}
		out[i] = Ingredient{
			Name:  ing.Name,
			Value: scaled[idx].Value,
			Unit:  ing.Unit,
		}
	}
	return out, nil
}

// FormatQuantity renders v for display with at most two decimals.
func FormatQuantity(v float64) string {
	//nolint:mnd
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
