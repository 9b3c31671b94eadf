// Package playplace собирает и запускает основное приложение:
// хранилище, миграции, кэш, файловое хранилище, сервисы и HTTP-сервер.
package playplace

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/playplace/internal/cache"
	"github.com/magabrotheeeer/playplace/internal/config"
	"github.com/magabrotheeeer/playplace/internal/lib/jwt"
	"github.com/magabrotheeeer/playplace/internal/migrations"
	authservice "github.com/magabrotheeeer/playplace/internal/services/auth"
	eventservice "github.com/magabrotheeeer/playplace/internal/services/event"
	platformservice "github.com/magabrotheeeer/playplace/internal/services/platform"
	userservice "github.com/magabrotheeeer/playplace/internal/services/user"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
	"github.com/magabrotheeeer/playplace/internal/uploads"
)

// App содержит все зависимости приложения и HTTP-сервер.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New создает приложение: подключает базу, применяет миграции,
// инициализирует кэш и файловое хранилище, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	fileStore, err := uploads.New(cfg.Uploads.Dir)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey,
		cfg.JWTToken.AccessTokenTTL, cfg.JWTToken.RefreshTokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	userService := userservice.NewUserService(db, fileStore, logger)
	platformService := platformservice.NewPlatformService(db, cacheRedis, fileStore, logger)
	eventService := eventservice.NewEventService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg,
		authService, userService, platformService, eventService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
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
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
