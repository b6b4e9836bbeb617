// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/matt-dz/cookingpuppy/docs"
	"github.com/matt-dz/cookingpuppy/internal/api/middleware"
	"github.com/matt-dz/cookingpuppy/internal/api/routes/ping"
	"github.com/matt-dz/cookingpuppy/internal/api/routes/recipes"
	"github.com/matt-dz/cookingpuppy/internal/env"
	"github.com/matt-dz/cookingpuppy/internal/metrics"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	serverPort      = 8080
	shutdownTimeout = 10 * time.Second
)

func addDocs(r *chi.Mux, serverAddr string) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/api/swagger/doc.json", serverAddr)),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

func addRoutes(router *chi.Mux, env *env.Env) {
	// Writes share one limiter so a client cannot spread its budget across routes.
	limit := middleware.RateLimit(env.Config.RateLimit.Requests, env.Config.RateLimit.Window)

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.ListRecipes)
			r.Get("/random", recipes.GetRandomRecipe)
			r.Post("/scale", recipes.ScaleRecipe)

			r.With(limit).Post("/", recipes.CreateRecipe)
			r.With(limit).Post("/import", recipes.ImportRecipes)
		})
	})

	router.Handle("/metrics", metrics.Handler())
}

// NewRouter returns the API handler with its middleware and routes.
func NewRouter(env *env.Env) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddCors(env.Config))

	addRoutes(router, env)
	addDocs(router, fmt.Sprintf("0.0.0.0:%d", serverPort))
	return router
}

// Start godoc
//
//	@title			Cooking Puppy API
//	@version		1.0
//	@description	API Server for the Cooking Puppy application.
//
//	@host			localhost:8080
//	@BasePath		/api
func Start(ctx context.Context, env *env.Env) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", serverPort),
		Handler:           NewRouter(env),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		env.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0:%d", serverPort))
		env.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0:%d/api/swagger/index.html", serverPort))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	env.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
