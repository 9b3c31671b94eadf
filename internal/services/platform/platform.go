// Package platform содержит бизнес-логику управления площадками,
// включая кеширование чтений и замену изображения.
package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
)

// Repository определяет методы для работы с площадками в хранилище.
type Repository interface {
	// CreatePlatform добавляет новую площадку и возвращает её ID.
	CreatePlatform(ctx context.Context, platform models.Platform) (int, error)
	// GetPlatformByID возвращает площадку по ID.
	GetPlatformByID(ctx context.Context, id int) (*models.Platform, error)
	// ListPlatforms возвращает список всех площадок.
	ListPlatforms(ctx context.Context) ([]*models.Platform, error)
	// UpdatePlatform применяет частичное обновление и возвращает запись.
	UpdatePlatform(ctx context.Context, id int, patch models.PlatformPatch) (*models.Platform, error)
	// DeletePlatform удаляет площадку по ID.
	DeletePlatform(ctx context.Context, id int) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// FileStore описывает методы для работы с файлами изображений.
type FileStore interface {
	Save(subdir, contentType, originalName string, src io.Reader) (string, error)
	Remove(rel string) error
}

// PlatformService реализует бизнес-логику работы с площадками.
type PlatformService struct {
	repo  Repository
	cache Cache
	files FileStore
	log   *slog.Logger
}

// NewPlatformService создает новый экземпляр PlatformService.
func NewPlatformService(repo Repository, cache Cache, files FileStore, log *slog.Logger) *PlatformService {
	return &PlatformService{
		repo:  repo,
		cache: cache,
		files: files,
		log:   log,
	}
}

// Create создает новую площадку и возвращает её.
func (s *PlatformService) Create(ctx context.Context, req models.DummyPlatform) (*models.Platform, error) {
	platform := models.Platform{
		Name:      req.Name,
		City:      req.City,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	id, err := s.repo.CreatePlatform(ctx, platform)
	if err != nil {
		return nil, err
	}
	platform.ID = id

	s.log.Info("created new platform", slog.Int("id", id))
	return &platform, nil
}

// Get возвращает площадку по ID, используя кеш или репозиторий.
func (s *PlatformService) Get(ctx context.Context, id int) (*models.Platform, error) {
	var result *models.Platform
	cacheKey := cacheKey(id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.GetPlatformByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// List возвращает все площадки.
func (s *PlatformService) List(ctx context.Context) ([]*models.Platform, error) {
	return s.repo.ListPlatforms(ctx)
}

// Update применяет частичное обновление площадки и инвалидирует кеш.
func (s *PlatformService) Update(ctx context.Context, id int, req models.DummyPlatformUpdate) (*models.Platform, error) {
	platform, err := s.repo.UpdatePlatform(ctx, id, req.Patch())
	if err != nil {
		return nil, err
	}
	s.invalidate(id)
	return platform, nil
}

// SetImage сохраняет новое изображение площадки и записывает его путь.
// Старый файл удаляется только после успешного сохранения нового.
func (s *PlatformService) SetImage(ctx context.Context, id int, contentType, originalName string, src io.Reader) (*models.Platform, error) {
	platform, err := s.repo.GetPlatformByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rel, err := s.files.Save("", contentType, originalName, src)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdatePlatform(ctx, id, models.PlatformPatch{Image: &rel})
	if err != nil {
		if removeErr := s.files.Remove(rel); removeErr != nil {
			s.log.Warn("failed to remove orphan image", slog.String("path", rel), sl.Err(removeErr))
		}
		return nil, err
	}

	if platform.Image != nil && *platform.Image != rel {
		if removeErr := s.files.Remove(*platform.Image); removeErr != nil {
			s.log.Warn("failed to remove previous image", slog.String("path", *platform.Image), sl.Err(removeErr))
		}
	}
	s.invalidate(id)
	return updated, nil
}

// Delete удаляет площадку и инвалидирует кеш. Файл изображения
// удаляется после удаления строки, его отсутствие не считается ошибкой.
func (s *PlatformService) Delete(ctx context.Context, id int) error {
	platform, err := s.repo.GetPlatformByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeletePlatform(ctx, id); err != nil {
		return err
	}

	if platform.Image != nil {
		if removeErr := s.files.Remove(*platform.Image); removeErr != nil {
			s.log.Warn("failed to remove platform image", slog.String("path", *platform.Image), sl.Err(removeErr))
		}
	}
	s.invalidate(id)
	return nil
}

func (s *PlatformService) invalidate(id int) {
	key := cacheKey(id)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", key), sl.Err(err))
	}
}

func cacheKey(id int) string {
	return fmt.Sprintf("platform:%d", id)
}
