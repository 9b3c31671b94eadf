// Package remove реализует HTTP-обработчик удаления события.
//
// Удалять событие может только его владелец.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/playplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/playplace/internal/http/response"
	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/services/event"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы удаления события.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс удаления события.
type Service interface {
	Delete(ctx context.Context, userID, id int) error
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить событие
// @Description Доступно только владельцу события.
// @Tags Events
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID события"
// @Success 200 {object} response.Response "Событие удалено"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Событие принадлежит другому пользователю"
// @Failure 404 {object} response.ErrorResponse "Событие не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.remove"
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

	if err := h.service.Delete(r.Context(), user.ID, id); err != nil {
		switch {
		case errors.Is(err, event.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("event belongs to another user"))
		case errors.Is(err, repository.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
		default:
			log.Error("failed to delete event", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not delete event"))
		}
		return
	}

	log.Info("event deleted", slog.Int("id", id))
	render.JSON(w, r, response.OK())
}
