// Package user содержит бизнес-логику чтения и обновления профиля,
// включая замену фотографии пользователя.
package user

import (
	"context"
	"io"
	"log/slog"

	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/uploads"
)

// Repository определяет методы для работы с пользователями в хранилище.
type Repository interface {
	// GetUserByID возвращает пользователя по ID.
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	// UpdateUser применяет частичное обновление и возвращает запись.
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)
}

// FileStore описывает методы для работы с файлами изображений.
type FileStore interface {
	// Save сохраняет файл и возвращает его относительный путь.
	Save(subdir, contentType, originalName string, src io.Reader) (string, error)
	// Remove удаляет файл, отсутствие файла не считается ошибкой.
	Remove(rel string) error
}

// UserService реализует операции над профилем пользователя.
type UserService struct {
	repo  Repository
	files FileStore
	log   *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo Repository, files FileStore, log *slog.Logger) *UserService {
	return &UserService{
		repo:  repo,
		files: files,
		log:   log,
	}
}

// GetByID возвращает пользователя по его ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// UpdateProfile применяет частичное обновление профиля. Пустой patch
// не меняет запись и возвращает её текущее состояние.
func (s *UserService) UpdateProfile(ctx context.Context, id int, req models.DummyUserUpdate) (*models.User, error) {
	return s.repo.UpdateUser(ctx, id, req.Patch())
}

// SetPhoto сохраняет новую фотографию пользователя и записывает её путь
// в профиль. Старый файл удаляется только после того, как новый сохранён
// и профиль обновлён, чтобы сбой записи не оставил профиль без фотографии.
func (s *UserService) SetPhoto(ctx context.Context, id int, contentType, originalName string, src io.Reader) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rel, err := s.files.Save(uploads.UsersDir, contentType, originalName, src)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateUser(ctx, id, models.UserPatch{Photo: &rel})
	if err != nil {
		if removeErr := s.files.Remove(rel); removeErr != nil {
			s.log.Warn("failed to remove orphan photo", slog.String("path", rel), sl.Err(removeErr))
		}
		return nil, err
	}

	if user.Photo != nil && *user.Photo != rel {
		if removeErr := s.files.Remove(*user.Photo); removeErr != nil {
			s.log.Warn("failed to remove previous photo", slog.String("path", *user.Photo), sl.Err(removeErr))
		}
	}
	return updated, nil
}
