// Package create реализует HTTP-обработчик создания события.
//
// Владельцем события становится пользователь текущей сессии; площадка
// должна существовать, иначе возвращается HTTP 404.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

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

// Handler обрабатывает HTTP-запросы на создание события.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс создания события.
type Service interface {
	Create(ctx context.Context, userID int, req models.DummyEvent) (*models.Event, error)
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
// @Summary Создать событие
// @Description Событие привязывается к существующей площадке и текущему пользователю.
// @Tags Events
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyEvent true "Данные события"
// @Success 201 {object} map[string]any "Созданное событие"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или диапазон дат"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Площадка не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.create"
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

	var req models.DummyEvent
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

	created, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrBadDateRange):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("event end date must not be earlier than start date"))
		case errors.Is(err, repository.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("platform not found"))
		default:
			log.Error("failed to create event", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create event"))
		}
		return
	}

	log.Info("event created", slog.Int("id", created.ID), slog.Int("user_id", user.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(models.NewEventView(created)))
}
