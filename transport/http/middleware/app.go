package middleware

import (
	"context"
	"fmt"
	"net/http"

	"oceanview/config"
	"oceanview/infras/otel"
	"oceanview/shared/cache"
	"oceanview/shared/constant"
)

const (
	otelHTTPScopeName = "http"

	actorHeader = "X-Actor"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	Actor(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Actor records who performs the request so audit columns carry a name. Front
// desk clients send their operator id, everything else falls back to system.
func (a *appMiddleware) Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := r.Header.Get(actorHeader)
		if actor == constant.Empty {
			actor = constant.DefaultActor
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyActor, actor)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
