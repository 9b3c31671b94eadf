// Package list реализует HTTP-обработчик получения списка площадок.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/playplace/internal/http/response"
	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
)

// Handler обрабатывает HTTP-запросы списка площадок.
type Handler struct {
	log           *slog.Logger
	service       Service
	publicBaseURL string
}

// Service описывает интерфейс получения списка площадок.
type Service interface {
	List(ctx context.Context) ([]*models.Platform, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, publicBaseURL string) *Handler {
	return &Handler{
		log:           log,
		service:       service,
		publicBaseURL: publicBaseURL,
	}
}

// ServeHTTP godoc
// @Summary Получить список площадок
// @Tags Platforms
// @Produce  json
// @Success 200 {object} map[string]any "Список площадок"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /platforms [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.platform.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	platforms, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list platforms", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list platforms"))
		return
	}

	views := make([]models.PlatformView, 0, len(platforms))
	for _, p := range platforms {
		views = append(views, models.NewPlatformView(p, h.publicBaseURL))
	}
	render.JSON(w, r, response.OKWithData(views))
}
