// Package hosting собирает приложение хостинг-панели: хранилище, сервисы,
// маршруты HTTP API и живой канал консоли на одном порту.
package hosting

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/hackerhosting/backend/internal/config"
	jwtlib "github.com/hackerhosting/backend/internal/lib/jwt"
	authservice "github.com/hackerhosting/backend/internal/services/auth"
	hostingservice "github.com/hackerhosting/backend/internal/services/hosting"
	"github.com/hackerhosting/backend/internal/storage/jsonfile"
	"github.com/hackerhosting/backend/internal/ws"
)

// App — собранное приложение с HTTP-сервером.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New создает приложение: открывает хранилище, заполняет каталог тарифов
// при первом запуске и регистрирует все маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store := jsonfile.New(cfg.FilePath)

	hostingSvc := hostingservice.New(store)
	if err := hostingSvc.SeedPlans(ctx); err != nil {
		return nil, err
	}

	jwtMaker := jwtlib.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authSvc := authservice.New(store, jwtMaker)
	consoleHandler := ws.NewHandler(logger, cfg.HeartbeatInterval)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authSvc, hostingSvc, jwtMaker, consoleHandler)

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до остановки контекста
// или фатальной ошибки сервера. При остановке контекста сервер
// завершает работу корректно с 15-секундным лимитом.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
