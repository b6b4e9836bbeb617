package store

import (
	"context"
	"sync"
	"time"

	"github.com/matt-dz/cookingpuppy/internal/metrics"
	"github.com/matt-dz/cookingpuppy/internal/recipe"
	"github.com/matt-dz/cookingpuppy/internal/season"
)

const driverMemory = "memory"

var _ Store = (*Memory)(nil)

// Memory is an in-memory recipe store. Safe for concurrent access.
type Memory struct {
	mu      sync.RWMutex
	recipes []recipe.Recipe
	nextID  int64
}

func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (m *Memory) Create(ctx context.Context, in recipe.Input) (recipe.Recipe, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		err = persistenceError("create", err)
		metrics.RecordStoreOperation("create", driverMemory, time.Since(start), err)
		return recipe.Recipe{}, err
	}

	m.mu.Lock()
	rec := in.WithID(m.nextID)
	m.nextID++
	m.recipes = append(m.recipes, rec)
	m.mu.Unlock()

	metrics.RecordStoreOperation("create", driverMemory, time.Since(start), nil)
	metrics.RecipesCreated.Inc()
	return cloneRecipe(rec), nil
}

func (m *Memory) ListAll(ctx context.Context) ([]recipe.Recipe, error) {
	return m.list(ctx, "list_all", func(recipe.Recipe) bool { return true })
}

func (m *Memory) ListBySeason(ctx context.Context, s season.Season) ([]recipe.Recipe, error) {
	return m.list(ctx, "list_by_season", func(r recipe.Recipe) bool {
		return season.Matches(r.Season, s)
	})
}

func (m *Memory) list(ctx context.Context, op string, keep func(recipe.Recipe) bool) ([]recipe.Recipe, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		err = persistenceError(op, err)
		metrics.RecordStoreOperation(op, driverMemory, time.Since(start), err)
		return nil, err
	}

	m.mu.RLock()
	out := make([]recipe.Recipe, 0, len(m.recipes))
	for _, r := range m.recipes {
		if keep(r) {
			out = append(out, cloneRecipe(r))
		}
	}
	m.mu.RUnlock()

	metrics.RecordStoreOperation(op, driverMemory, time.Since(start), nil)
	return out, nil
}

func cloneRecipe(r recipe.Recipe) recipe.Recipe {
	return r.Input().WithID(r.ID)
}
