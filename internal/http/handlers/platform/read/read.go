// Package read реализует HTTP-обработчик получения площадки по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/playplace/internal/http/response"
	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы чтения площадки.
type Handler struct {
	log           *slog.Logger
	service       Service
	publicBaseURL string
}

// Service описывает интерфейс чтения площадки.
type Service interface {
	Get(ctx context.Context, id int) (*models.Platform, error)
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
// @Summary Получить площадку по ID
// @Tags Platforms
// @Produce  json
// @Param id path int true "ID площадки"
// @Success 200 {object} map[string]any "Данные площадки"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Площадка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /platforms/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.platform.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid platform id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid platform id"))
		return
	}

	platform, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("platform not found"))
			return
		}
		log.Error("failed to get platform", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get platform"))
		return
	}

	render.JSON(w, r, response.OKWithData(models.NewPlatformView(platform, h.publicBaseURL)))
}
