// Package photo реализует HTTP-обработчик загрузки фотографии профиля.
package photo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/playplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/playplace/internal/http/response"
	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/uploads"
)

// максимальный размер тела multipart-запроса с фотографией
const maxUploadSize = 10 << 20

// Handler обрабатывает HTTP-запросы на загрузку фото профиля.
type Handler struct {
	log           *slog.Logger
	service       Service
	publicBaseURL string
}

// Service описывает интерфейс замены фотографии профиля.
type Service interface {
	SetPhoto(ctx context.Context, id int, contentType, originalName string, src io.Reader) (*models.User, error)
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
// @Summary Загрузить фотографию профиля
// @Description Принимает multipart/form-data с полем photo. Старый файл удаляется после успешной замены.
// @Tags Users
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param photo formData file true "Файл изображения (png, jpg, jpeg, gif)"
// @Success 200 {object} map[string]any "Обновлённый профиль"
// @Failure 400 {object} response.ErrorResponse "Файл отсутствует или не является изображением"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/me/photo [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.photo"
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

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		log.Error("photo file is missing", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("photo file is required"))
		return
	}
	defer file.Close()

	updated, err := h.service.SetPhoto(r.Context(), user.ID,
		header.Header.Get("Content-Type"), header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrNotImage), errors.Is(err, uploads.ErrBadExtension):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("file must be an image (png, jpg, jpeg, gif)"))
		default:
			log.Error("failed to set photo", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not save photo"))
		}
		return
	}

	log.Info("photo updated", slog.Int("id", user.ID))
	render.JSON(w, r, response.OKWithData(models.NewUserView(updated, h.publicBaseURL)))
}
