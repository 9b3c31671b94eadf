// Package create реализует HTTP-обработчик создания площадки.
//
// Handler принимает JSON-запрос с данными площадки, валидирует их,
// вызывает бизнес-логику создания и возвращает созданную запись.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/playplace/internal/http/response"
	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
)

// Handler обрабатывает HTTP-запросы на создание площадки.
type Handler struct {
	log           *slog.Logger
	service       Service
	validate      *validator.Validate
	publicBaseURL string
}

// Service описывает интерфейс создания площадки.
type Service interface {
	Create(ctx context.Context, req models.DummyPlatform) (*models.Platform, error)
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
// @Summary Создать площадку
// @Tags Platforms
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyPlatform true "Данные площадки"
// @Success 201 {object} map[string]any "Созданная площадка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /platforms [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.platform.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPlatform
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

	platform, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create platform", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create platform"))
		return
	}

	log.Info("platform created", slog.Int("id", platform.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(models.NewPlatformView(platform, h.publicBaseURL)))
}
