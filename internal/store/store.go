// Package store persists recipes.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-dz/cookingpuppy/internal/recipe"
	"github.com/matt-dz/cookingpuppy/internal/season"
)

var ErrPersistence = errors.New("recipe storage failed")

// Store is the recipe store contract. Create must be atomic per record;
// inputs are expected to be validated by the caller.
type Store interface {
	Create(ctx context.Context, in recipe.Input) (recipe.Recipe, error)
	ListAll(ctx context.Context) ([]recipe.Recipe, error)
	// ListBySeason returns the recipes of s plus the all-season ones.
	ListBySeason(ctx context.Context, s season.Season) ([]recipe.Recipe, error)
}

// PersistenceError wraps a failure of the underlying storage.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence.Error(), e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

func persistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
