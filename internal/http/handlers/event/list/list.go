// Package list реализует HTTP-обработчик получения списка событий.
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

// Handler обрабатывает HTTP-запросы списка событий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения списка событий.
type Service interface {
	List(ctx context.Context) ([]*models.Event, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список событий
// @Tags Events
// @Produce  json
// @Success 200 {object} map[string]any "Список событий"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	events, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list events", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list events"))
		return
	}

	views := make([]models.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, models.NewEventView(e))
	}
	render.JSON(w, r, response.OKWithData(views))
}
