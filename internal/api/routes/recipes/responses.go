package recipes

import "github.com/matt-dz/cookingpuppy/internal/recipe"

type CreateRecipeResponse struct {
	ID int64 `json:"id"`
}

// RandomRecipeResponse holds a null recipe when none is available for the
// current season.
type RandomRecipeResponse struct {
	Recipe *recipe.Recipe `json:"recipe"`
}

type ListRecipesResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

type ScaledIngredient struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

type ScaleRecipeResponse struct {
	NbPerson    int                `json:"nb_person"`
	Ingredients []ScaledIngredient `json:"ingredients"`
}

type ImportRecipesResponse struct {
	Imported int      `json:"imported"`
	Failed   []string `json:"failed"`
}
