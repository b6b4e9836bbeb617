// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"
	"time"

	"github.com/matt-dz/cookingpuppy/internal/config"
	"github.com/matt-dz/cookingpuppy/internal/importer"
	"github.com/matt-dz/cookingpuppy/internal/log"
	"github.com/matt-dz/cookingpuppy/internal/recipe"
	"github.com/matt-dz/cookingpuppy/internal/store"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger *slog.Logger
	Store  store.Store
	// Importer is nil when imports are not configured.
	Importer *importer.Job
	Config   config.Config

	// Now and Rand default to the wall clock and the global source.
	Now  func() time.Time
	Rand recipe.Rand
}

func New(lg *slog.Logger, st store.Store) *Env {
	if lg == nil {
		lg = log.NullLogger()
	}

	return &Env{
		Logger: lg,
		Store:  st,
	}
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

// Time returns the current time according to e.
func (e *Env) Time() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// WithCtx stores env in ctx.
func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the env stored in ctx, or Null() when there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok && env != nil {
		return env
	}
	return Null()
}
