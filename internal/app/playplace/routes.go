// Package playplace предоставляет маршруты для основного приложения.
package playplace

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/playplace/internal/config"
	"github.com/magabrotheeeer/playplace/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/playplace/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/playplace/internal/http/handlers/auth/register"
	eventcreate "github.com/magabrotheeeer/playplace/internal/http/handlers/event/create"
	eventlist "github.com/magabrotheeeer/playplace/internal/http/handlers/event/list"
	eventread "github.com/magabrotheeeer/playplace/internal/http/handlers/event/read"
	eventremove "github.com/magabrotheeeer/playplace/internal/http/handlers/event/remove"
	eventupdate "github.com/magabrotheeeer/playplace/internal/http/handlers/event/update"
	platformcreate "github.com/magabrotheeeer/playplace/internal/http/handlers/platform/create"
	platformimage "github.com/magabrotheeeer/playplace/internal/http/handlers/platform/image"
	platformlist "github.com/magabrotheeeer/playplace/internal/http/handlers/platform/list"
	platformread "github.com/magabrotheeeer/playplace/internal/http/handlers/platform/read"
	platformremove "github.com/magabrotheeeer/playplace/internal/http/handlers/platform/remove"
	platformupdate "github.com/magabrotheeeer/playplace/internal/http/handlers/platform/update"
	userphoto "github.com/magabrotheeeer/playplace/internal/http/handlers/user/photo"
	userprofile "github.com/magabrotheeeer/playplace/internal/http/handlers/user/profile"
	userread "github.com/magabrotheeeer/playplace/internal/http/handlers/user/read"
	userupdate "github.com/magabrotheeeer/playplace/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/playplace/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/playplace/internal/services/auth"
	eventservice "github.com/magabrotheeeer/playplace/internal/services/event"
	platformservice "github.com/magabrotheeeer/playplace/internal/services/platform"
	userservice "github.com/magabrotheeeer/playplace/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	authService *authservice.AuthService, userService *userservice.UserService,
	platformService *platformservice.PlatformService, eventService *eventservice.EventService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	baseURL := cfg.Uploads.PublicBaseURL

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/token", login.New(logger, authService).ServeHTTP)
		r.Post("/token/refresh", refresh.New(logger, authService).ServeHTTP)
		r.Get("/users/{id}", userread.New(logger, userService, baseURL).ServeHTTP)
		r.Get("/platforms", platformlist.New(logger, platformService, baseURL).ServeHTTP)
		r.Get("/platforms/{id}", platformread.New(logger, platformService, baseURL).ServeHTTP)
		r.Get("/events", eventlist.New(logger, eventService).ServeHTTP)
		r.Get("/events/{id}", eventread.New(logger, eventService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/users/me", userprofile.New(logger, baseURL).ServeHTTP)
			r.Put("/users/me", userupdate.New(logger, userService, baseURL).ServeHTTP)
			r.Put("/users/me/photo", userphoto.New(logger, userService, baseURL).ServeHTTP)
			r.Post("/platforms", platformcreate.New(logger, platformService, baseURL).ServeHTTP)
			r.Put("/platforms/{id}", platformupdate.New(logger, platformService, baseURL).ServeHTTP)
			r.Delete("/platforms/{id}", platformremove.New(logger, platformService).ServeHTTP)
			r.Put("/platforms/{id}/image", platformimage.New(logger, platformService, baseURL).ServeHTTP)
			r.Post("/events", eventcreate.New(logger, eventService).ServeHTTP)
			r.Put("/events/{id}", eventupdate.New(logger, eventService).ServeHTTP)
			r.Delete("/events/{id}", eventremove.New(logger, eventService).ServeHTTP)
		})
	})

	// Статическая раздача загруженных изображений
	r.Handle(baseURL+"/*", http.StripPrefix(baseURL+"/",
		http.FileServer(http.Dir(cfg.Uploads.Dir))))

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
