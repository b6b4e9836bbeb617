package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/matt-dz/cookingpuppy/internal/database"
	"github.com/matt-dz/cookingpuppy/internal/metrics"
	"github.com/matt-dz/cookingpuppy/internal/recipe"
	"github.com/matt-dz/cookingpuppy/internal/season"
)

const driverPostgres = "postgres"

var _ Store = (*Postgres)(nil)

// Postgres stores recipes in the recipes table.
type Postgres struct {
	db database.Querier
}

func NewPostgres(db database.Querier) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Create(ctx context.Context, in recipe.Input) (rec recipe.Recipe, err error) {
	defer observe("create", driverPostgres, time.Now(), &err)

	if in.NbPerson > math.MaxInt32 {
		return recipe.Recipe{}, persistenceError("create", fmt.Errorf("nbPerson %d out of range", in.NbPerson))
	}
	ingredients, err := encodeIngredients(in.Ingredients)
	if err != nil {
		return recipe.Recipe{}, persistenceError("create", err)
	}

	row, err := p.db.CreateRecipe(ctx, database.CreateRecipeParams{
		Name:        in.Name,
		Season:      in.Season.String(),
		NbPerson:    int32(in.NbPerson), //nolint:gosec // bounds checked above
		Ingredients: ingredients,
		Recipe:      in.Recipe,
	})
	if err != nil {
		return recipe.Recipe{}, persistenceError("create", err)
	}

	rec, err = fromRow(row)
	if err != nil {
		return recipe.Recipe{}, persistenceError("create", err)
	}
	metrics.RecipesCreated.Inc()
	return rec, nil
}

func (p *Postgres) ListAll(ctx context.Context) (recipes []recipe.Recipe, err error) {
	defer observe("list_all", driverPostgres, time.Now(), &err)

	rows, err := p.db.ListRecipes(ctx)
	if err != nil {
		return nil, persistenceError("list all", err)
	}
	recipes, err = fromRows(rows)
	if err != nil {
		return nil, persistenceError("list all", err)
	}
	return recipes, nil
}

func (p *Postgres) ListBySeason(ctx context.Context, s season.Season) (recipes []recipe.Recipe, err error) {
	defer observe("list_by_season", driverPostgres, time.Now(), &err)

	rows, err := p.db.ListRecipesBySeason(ctx, s.String())
	if err != nil {
		return nil, persistenceError("list by season", err)
	}
	recipes, err = fromRows(rows)
	if err != nil {
		return nil, persistenceError("list by season", err)
	}
	return recipes, nil
}

func fromRows(rows []database.Recipe) ([]recipe.Recipe, error) {
	out := make([]recipe.Recipe, 0, len(rows))
	for _, row := range rows {
		rec, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func fromRow(row database.Recipe) (recipe.Recipe, error) {
	ingredients, err := decodeIngredients(row.Ingredients)
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("recipe %d: %w", row.ID, err)
	}
	return recipe.Recipe{
		ID:          row.ID,
		Name:        row.Name,
		Season:      season.Season(row.Season),
		NbPerson:    int(row.NbPerson),
		Ingredients: ingredients,
		Recipe:      row.Recipe,
	}, nil
}

func observe(op, driver string, start time.Time, err *error) {
	metrics.RecordStoreOperation(op, driver, time.Since(start), *err)
}
