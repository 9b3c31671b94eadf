// Package profile реализует HTTP-обработчик чтения профиля текущей сессии.
// Запись пользователя уже загружена middleware и всегда актуальна.
package profile

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/playplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/playplace/internal/http/response"
	"github.com/magabrotheeeer/playplace/internal/models"
)

// Handler обрабатывает HTTP-запросы на чтение собственного профиля.
type Handler struct {
	log           *slog.Logger
	publicBaseURL string
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, publicBaseURL string) *Handler {
	return &Handler{
		log:           log,
		publicBaseURL: publicBaseURL,
	}
}

// ServeHTTP godoc
// @Summary Получить профиль текущего пользователя
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Данные профиля"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Router /users/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"
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

	render.JSON(w, r, response.OKWithData(models.NewUserView(user, h.publicBaseURL)))
}
