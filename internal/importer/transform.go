package importer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matt-dz/cookingpuppy/internal/marmiton"
	"github.com/matt-dz/cookingpuppy/internal/recipe"
	"github.com/matt-dz/cookingpuppy/internal/season"
)

// Transform maps a provider record to a recipe input. The result is not
// validated; records without ingredients or servings fail at Validate.
func Transform(record marmiton.Record) recipe.Input {
	in := recipe.Input{
		Name:        record.Title,
		Season:      season.All,
		NbPerson:    record.Servings.Count,
		Ingredients: []recipe.Ingredient{},
	}

	if len(record.IngredientGroups) > 0 {
		for _, item := range record.IngredientGroups[0].Items {
			in.Ingredients = append(in.Ingredients, recipe.Ingredient{
				Name:  capitalize(item.Name),
				Value: item.IngredientQuantity,
				Unit:  item.UnitName,
			})
		}
	}

	lines := make([]string, 0, len(record.Steps)+1)
	lines = append(lines, formatDuration(record.TotalTime))
	for _, step := range record.Steps {
		lines = append(lines, step.Text)
	}
	in.Recipe = strings.Join(lines, "\n")

	return in
}

// formatDuration renders a duration in seconds as "{h}h {m}min", dropping
// leftover seconds.
func formatDuration(seconds int) string {
	minutes := max(seconds, 0) / 60
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

// capitalize upper-cases the first rune of s and leaves the rest unchanged.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
