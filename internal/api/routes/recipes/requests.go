package recipes

import "github.com/matt-dz/cookingpuppy/internal/recipe"

// ScaleRecipeRequest carries the stored quantities of a recipe and the list
// currently displayed. An empty Ingredients rescales the whole base list.
// Serving counts are checked by recipe.Rescale.
type ScaleRecipeRequest struct {
	BaseNbPerson    int                 `json:"base_nb_person"`
	NbPerson        int                 `json:"nb_person"`
	BaseIngredients []recipe.Ingredient `json:"base_ingredients" validate:"required,min=1,dive"`
	Ingredients     []recipe.Ingredient `json:"ingredients,omitempty" validate:"omitempty,dive"`
}
