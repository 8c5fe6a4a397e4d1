// Package hosting предоставляет маршруты для основного приложения.
package hosting

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hackerhosting/backend/internal/config"
	"github.com/hackerhosting/backend/internal/http/handlers/auth/login"
	"github.com/hackerhosting/backend/internal/http/handlers/auth/signup"
	"github.com/hackerhosting/backend/internal/http/handlers/health"
	planlist "github.com/hackerhosting/backend/internal/http/handlers/plan/list"
	servercreate "github.com/hackerhosting/backend/internal/http/handlers/server/create"
	serverlist "github.com/hackerhosting/backend/internal/http/handlers/server/list"
	"github.com/hackerhosting/backend/internal/http/middlewarectx"
	authservice "github.com/hackerhosting/backend/internal/services/auth"
	hostingservice "github.com/hackerhosting/backend/internal/services/hosting"
	"github.com/hackerhosting/backend/internal/ws"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, authSvc *authservice.Service, hostingSvc *hostingservice.Service, parser middlewarectx.TokenParser, consoleHandler *ws.Handler) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Get("/plans", planlist.New(logger, hostingSvc).ServeHTTP)
		r.Post("/signup", signup.New(logger, authSvc).ServeHTTP)
		r.Post("/login", login.New(logger, authSvc).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(parser, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RPS, cfg.Burst))
			r.Get("/myservers", serverlist.New(logger, hostingSvc).ServeHTTP)
			r.Post("/create-server", servercreate.New(logger, hostingSvc).ServeHTTP)
		})
	})

	// Живой канал консоли на том же порту
	r.Handle("/ws", consoleHandler)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	// Статика фронтенда
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
}
