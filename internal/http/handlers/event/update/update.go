// Package update реализует HTTP-обработчик частичного обновления события.
//
// Обновлять событие может только его владелец: чужое событие
// отклоняется с HTTP 403.
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

	"github.com/magabrotheeeer/playplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/playplace/internal/http/response"
	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/services/event"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы обновления события.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс обновления события.
type Service interface {
	Update(ctx context.Context, userID, id int, req models.DummyEventUpdate) (*models.Event, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить событие
// @Description Частичное обновление: отсутствующие поля не меняются. Доступно только владельцу.
// @Tags Events
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Param request body models.DummyEventUpdate true "Изменяемые поля"
// @Success 200 {object} map[string]any "Обновлённое событие"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID, JSON или диапазон дат"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Событие принадлежит другому пользователю"
// @Failure 404 {object} response.ErrorResponse "Событие или площадка не найдены"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid event id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid event id"))
		return
	}

	var req models.DummyEventUpdate
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

	updated, err := h.service.Update(r.Context(), user.ID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("event belongs to another user"))
		case errors.Is(err, event.ErrBadDateRange):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("event end date must not be earlier than start date"))
		case errors.Is(err, repository.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
		default:
			log.Error("failed to update event", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update event"))
		}
		return
	}

	log.Info("event updated", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(models.NewEventView(updated)))
}
