// Package image реализует HTTP-обработчик загрузки изображения площадки.
package image

import (
	"context"
	"errors"
	"io"
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
	"github.com/magabrotheeeer/playplace/internal/uploads"
)

// максимальный размер тела multipart-запроса с изображением
const maxUploadSize = 10 << 20

// Handler обрабатывает HTTP-запросы загрузки изображения площадки.
type Handler struct {
	log           *slog.Logger
	service       Service
	publicBaseURL string
}

// Service описывает интерфейс замены изображения площадки.
type Service interface {
	SetImage(ctx context.Context, id int, contentType, originalName string, src io.Reader) (*models.Platform, error)
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
// @Summary Загрузить изображение площадки
// @Description Принимает multipart/form-data с полем image. Старый файл удаляется после успешной замены.
// @Tags Platforms
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID площадки"
// @Param image formData file true "Файл изображения (png, jpg, jpeg, gif)"
// @Success 200 {object} map[string]any "Обновлённая площадка"
// @Failure 400 {object} response.ErrorResponse "Файл отсутствует или не является изображением"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Площадка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /platforms/{id}/image [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.platform.image"
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

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Error("image file is missing", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("image file is required"))
		return
	}
	defer file.Close()

	platform, err := h.service.SetImage(r.Context(), id,
		header.Header.Get("Content-Type"), header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("platform not found"))
		case errors.Is(err, uploads.ErrNotImage), errors.Is(err, uploads.ErrBadExtension):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("file must be an image (png, jpg, jpeg, gif)"))
		default:
			log.Error("failed to set image", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not save image"))
		}
		return
	}

	log.Info("platform image updated", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(models.NewPlatformView(platform, h.publicBaseURL)))
}
