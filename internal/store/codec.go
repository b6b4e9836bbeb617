package store

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/matt-dz/cookingpuppy/internal/recipe"
)

// encodeIngredients serializes ingredients to the JSON text stored in the
// ingredients column.
func encodeIngredients(ingredients []recipe.Ingredient) (string, error) {
	if ingredients == nil {
		ingredients = []recipe.Ingredient{}
	}
	b, err := json.Marshal(ingredients)
	if err != nil {
		return "", fmt.Errorf("encoding ingredients: %w", err)
	}
	return string(b), nil
}

func decodeIngredients(raw string) ([]recipe.Ingredient, error) {
	var ingredients []recipe.Ingredient
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return nil, fmt.Errorf("decoding ingredients: %w", err)
	}
	if ingredients == nil {
		ingredients = []recipe.Ingredient{}
	}
	return ingredients, nil
}
