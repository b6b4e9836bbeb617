// Package middleware contains middleware functions for the API
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	apiError "github.com/matt-dz/cookingpuppy/internal/api/error"
	"github.com/matt-dz/cookingpuppy/internal/api/requestid"
	"github.com/matt-dz/cookingpuppy/internal/config"
	"github.com/matt-dz/cookingpuppy/internal/env"
	"github.com/matt-dz/cookingpuppy/internal/log"

	"github.com/oklog/ulid/v2"
)

const corsMaxAge = 86400

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != 0 {
				return []slog.Attr{slog.Uint64("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Now()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors allows the configured host origin in production and any origin
// otherwise.
func AddCors(conf config.Config) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}
	if conf.Env == config.EnvProd {
		options.AllowedOrigins = []string{conf.HostOrigin}
	} else {
		options.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return true
		}
	}
	return cors.Handler(options)
}

// RateLimit limits requests per client IP. A non-positive requests count
// disables the limit.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestid.String(ctx)
			env.EnvFromCtx(ctx).Logger.WarnContext(ctx, "rate limit exceeded",
				slog.String("remote_addr", r.RemoteAddr))
			_ = apiError.EncodeError(w, apiError.TooManyRequests, "too many requests", requestID)
		}),
	)
}
