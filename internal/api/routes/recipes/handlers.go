// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/cookingpuppy/internal/api/error"
	"github.com/matt-dz/cookingpuppy/internal/api/requestid"
	"github.com/matt-dz/cookingpuppy/internal/env"
	"github.com/matt-dz/cookingpuppy/internal/importer"
	mJson "github.com/matt-dz/cookingpuppy/internal/json"
	"github.com/matt-dz/cookingpuppy/internal/recipe"
	"github.com/matt-dz/cookingpuppy/internal/season"
	"github.com/matt-dz/cookingpuppy/internal/store"
)

const maxBodySize = 1 << 20 // 1 MB

// CreateRecipe godoc
//
//	@Summary		Submit a recipe.
//	@Description	Validates and stores a new recipe.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			recipe	body		recipe.Input	true	"Recipe to store"
//	@Success		201		{object}	CreateRecipeResponse
//	@Failure		400		{object}	apiError.Error	"Malformed body"
//	@Failure		422		{object}	apiError.Error	"Invalid recipe"
//	@Failure		500		{object}	apiError.Error	"Storage failure"
//	@Router			/api/recipes [POST]
func CreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.String(ctx)

	// Read request
	env.Logger.DebugContext(ctx, "reading request")
	var request recipe.Input
	if err := mJson.DecodeJSON(&request, http.MaxBytesReader(w, r.Body, maxBodySize)); err != nil {
		env.Logger.DebugContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed request body", requestID)
		return
	}

	// Validate recipe
	if err := request.Validate(); err != nil {
		env.Logger.DebugContext(ctx, "recipe rejected", slog.Any("error", err))
		var verr *recipe.ValidationError
		if errors.As(err, &verr) {
			_ = apiError.EncodeValidationError(w, verr, requestID)
			return
		}
		_ = apiError.EncodeError(w, apiError.ValidationError, err.Error(), requestID)
		return
	}

	// Store recipe
	env.Logger.DebugContext(ctx, "creating recipe")
	created, err := env.Store.Create(ctx, request)
	if errors.Is(err, store.ErrPersistence) {
		env.Logger.ErrorContext(ctx, "failed to create recipe", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.PersistenceError,
			"the recipe could not be saved, please try again", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	env.Logger.InfoContext(ctx, "created recipe", slog.Int64("recipe_id", created.ID))

	// Write response
	if err := mJson.EncodeJSON(w, http.StatusCreated, CreateRecipeResponse{ID: created.ID}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		return
	}
}

// GetRandomRecipe godoc
//
//	@Summary		Get a random recipe for the current season.
//	@Description	Recipes of the current season and all-season recipes are eligible.
//	@Description	The recipe is null when none is available.
//	@Tags			Recipes
//	@Produce		json
//	@Success		200	{object}	RandomRecipeResponse
//	@Failure		500	{object}	apiError.Error	"Storage failure"
//	@Router			/api/recipes/random [GET]
func GetRandomRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.String(ctx)

	now := env.Time()
	current := season.Current(now)
	env.Logger.DebugContext(ctx, "listing recipes", slog.String("season", current.String()))
	recipes, err := env.Store.ListBySeason(ctx, current)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.PersistenceError,
			"recipes could not be loaded, please try again", requestID)
		return
	}

	var response RandomRecipeResponse
	picked, err := recipe.PickRandom(now, recipes, env.Rand)
	if errors.Is(err, recipe.ErrNotFound) {
		env.Logger.DebugContext(ctx, "no recipe available", slog.String("season", current.String()))
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to pick recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	} else {
		response.Recipe = &picked
	}

	if err := mJson.EncodeJSON(w, http.StatusOK, response); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		return
	}
}

// ListRecipes godoc
//
//	@Summary	List every recipe.
//	@Tags		Recipes
//	@Produce	json
//	@Success	200	{object}	ListRecipesResponse
//	@Failure	500	{object}	apiError.Error	"Storage failure"
//	@Router		/api/recipes [GET]
func ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.String(ctx)

	recipes, err := env.Store.ListAll(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.PersistenceError,
			"recipes could not be loaded, please try again", requestID)
		return
	}
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}

	if err := mJson.EncodeJSON(w, http.StatusOK, ListRecipesResponse{Recipes: recipes}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		return
	}
}

// ScaleRecipe godoc
//
//	@Summary		Rescale ingredient quantities.
//	@Description	Recomputes the displayed ingredients for a new serving count from the stored quantities.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ScaleRecipeRequest	true	"Base recipe and target servings"
//	@Success		200		{object}	ScaleRecipeResponse
//	@Failure		400		{object}	apiError.Error	"Malformed body"
//	@Failure		422		{object}	apiError.Error	"Invalid servings, invalid ingredients or unknown ingredient"
//	@Router			/api/recipes/scale [POST]
func ScaleRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.String(ctx)

	var request ScaleRecipeRequest
	if err := mJson.DecodeJSON(&request, http.MaxBytesReader(w, r.Body, maxBodySize)); err != nil {
		env.Logger.DebugContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed request body", requestID)
		return
	}
	if err := recipe.ValidateStruct(request); err != nil {
		env.Logger.DebugContext(ctx, "scale request rejected", slog.Any("error", err))
		var verr *recipe.ValidationError
		if errors.As(err, &verr) {
			_ = apiError.EncodeValidationError(w, verr, requestID)
			return
		}
		_ = apiError.EncodeError(w, apiError.ValidationError, err.Error(), requestID)
		return
	}

	current := request.Ingredients
	if len(current) == 0 {
		current = request.BaseIngredients
	}
	scaled, err := recipe.Rescale(request.BaseNbPerson, request.NbPerson, request.BaseIngredients, current)
	var mismatch *recipe.IngredientMismatchError
	if errors.As(err, &mismatch) {
		env.Logger.DebugContext(ctx, "ingredient mismatch", slog.String("ingredient", mismatch.Name))
		_ = apiError.EncodeError(w, apiError.IngredientMismatch, mismatch.Error(), requestID)
		return
	} else if errors.Is(err, recipe.ErrInvalidServings) {
		_ = apiError.EncodeError(w, apiError.InvalidServings, "serving counts must be at least 1", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to scale recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	response := ScaleRecipeResponse{
		NbPerson:    request.NbPerson,
		Ingredients: make([]ScaledIngredient, len(scaled)),
	}
	for i, ing := range scaled {
		response.Ingredients[i] = ScaledIngredient{
			Name:    ing.Name,
			Value:   ing.Value,
			Unit:    ing.Unit,
			Display: recipe.FormatQuantity(ing.Value),
		}
	}

	if err := mJson.EncodeJSON(w, http.StatusOK, response); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		return
	}
}

// ImportRecipes godoc
//
//	@Summary		Import recipes from Marmiton.
//	@Description	Imports every recipe id listed in the configured ids file.
//	@Description	Ids that could not be fetched, validated or stored are listed in failed.
//	@Tags			Recipes, Import
//	@Produce		json
//	@Success		200	{object}	ImportRecipesResponse
//	@Failure		500	{object}	apiError.Error	"Ids unreadable"
//	@Failure		503	{object}	apiError.Error	"Import not configured"
//	@Router			/api/recipes/import [POST]
func ImportRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.String(ctx)

	if env.Importer == nil {
		env.Logger.WarnContext(ctx, "import requested but no importer is configured")
		_ = apiError.EncodeError(w, apiError.ImportNotConfigured, "import is not configured", requestID)
		return
	}

	ids, err := importer.LoadIDs(env.Config.Import.IDsPath)
	if errors.Is(err, importer.ErrNoIDsConfigured) {
		env.Logger.WarnContext(ctx, "import requested but no ids path is configured")
		_ = apiError.EncodeError(w, apiError.ImportNotConfigured, "import is not configured", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to load recipe ids", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// The batch outlives a client that disconnects.
	result := env.Importer.ImportBatch(context.WithoutCancel(ctx), ids)

	response := ImportRecipesResponse{Imported: result.Imported, Failed: result.Failed}
	if response.Failed == nil {
		response.Failed = []string{}
	}
	if err := mJson.EncodeJSON(w, http.StatusOK, response); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
		return
	}
}
