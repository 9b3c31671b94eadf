// Package update реализует HTTP-обработчик частичного обновления площадки.
//
// Отсутствующие в теле поля не меняются; пустое тело возвращает
// текущее состояние записи без изменений.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/playplace/internal/http/response"
	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы обновления площадки.
type Handler struct {
	log           *slog.Logger
	service       Service
	validate      *validator.Validate
	publicBaseURL string
}

// Service описывает интерфейс обновления площадки.
type Service interface {
	Update(ctx context.Context, id int, req models.DummyPlatformUpdate) (*models.Platform, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, publicBaseURL string) *Handler {
	return &Handler{
		log:           log,
		service:       service,
		validate:      validator.New(),
		publicBaseURL: publicBaseURL,
	}
}

// ServeHTTP godoc
// @Summary Обновить площадку
// @Description Частичное обновление: отсутствующие поля не меняются.
// @Tags Platforms
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID площадки"
// @Param request body models.DummyPlatformUpdate true "Изменяемые поля"
// @Success 200 {object} map[string]any "Обновлённая площадка"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Площадка не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /platforms/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.platform.update"
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

	var req models.DummyPlatformUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	platform, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("platform not found"))
			return
		}
		log.Error("failed to update platform", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update platform"))
		return
	}

	log.Info("platform updated", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(models.NewPlatformView(platform, h.publicBaseURL)))
}
