// Package event содержит бизнес-логику управления событиями на площадках.
package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
)

// ErrNotOwner — попытка изменить или удалить чужое событие.
var ErrNotOwner = errors.New("event belongs to another user")

// ErrBadDateRange — дата окончания события раньше даты начала.
var ErrBadDateRange = errors.New("event end date must not be earlier than start date")

// Repository определяет методы для работы с событиями в хранилище.
type Repository interface {
	// CreateEvent добавляет новое событие и возвращает его ID.
	CreateEvent(ctx context.Context, event models.Event) (int, error)
	// GetEventByID возвращает событие по ID.
	GetEventByID(ctx context.Context, id int) (*models.Event, error)
	// ListEvents возвращает список всех событий.
	ListEvents(ctx context.Context) ([]*models.Event, error)
	// UpdateEvent применяет частичное обновление и возвращает запись.
	UpdateEvent(ctx context.Context, id int, patch models.EventPatch) (*models.Event, error)
	// DeleteEvent удаляет событие по ID.
	DeleteEvent(ctx context.Context, id int) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// EventService реализует бизнес-логику работы с событиями.
type EventService struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// NewEventService создает новый экземпляр EventService.
func NewEventService(repo Repository, cache Cache, log *slog.Logger) *EventService {
	return &EventService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новое событие. Владельцем становится пользователь
// текущей сессии, идентификатор из тела запроса не принимается.
func (s *EventService) Create(ctx context.Context, userID int, req models.DummyEvent) (*models.Event, error) {
	dateStart, err := time.Parse(models.DateLayout, req.DateStart)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	dateEnd, err := time.Parse(models.DateLayout, req.DateEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	if dateEnd.Before(dateStart) {
		return nil, ErrBadDateRange
	}

	event := models.Event{
		UserID:      userID,
		PlatformID:  req.PlatformID,
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		DateStart:   &dateStart,
		DateEnd:     &dateEnd,
		TimeStart:   &req.TimeStart,
		TimeEnd:     &req.TimeEnd,
		Description: req.Description,
	}
	id, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id

	s.log.Info("created new event", slog.Int("id", id), slog.Int("user_id", userID))
	return &event, nil
}

// Get возвращает событие по ID, используя кеш или репозиторий.
func (s *EventService) Get(ctx context.Context, id int) (*models.Event, error) {
	var result *models.Event
	cacheKey := cacheKey(id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// List возвращает все события.
func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.repo.ListEvents(ctx)
}

// Update применяет частичное обновление события. Обновлять событие
// может только его владелец.
func (s *EventService) Update(ctx context.Context, userID, id int, req models.DummyEventUpdate) (*models.Event, error) {
	existing, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrNotOwner
	}

	patch := models.EventPatch{
		PlatformID:  req.PlatformID,
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		TimeStart:   req.TimeStart,
		TimeEnd:     req.TimeEnd,
		Description: req.Description,
	}
	if req.DateStart != nil {
		dateStart, err := time.Parse(models.DateLayout, *req.DateStart)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		patch.DateStart = &dateStart
	}
	if req.DateEnd != nil {
		dateEnd, err := time.Parse(models.DateLayout, *req.DateEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		patch.DateEnd = &dateEnd
	}
	if patch.DateStart != nil && patch.DateEnd != nil && patch.DateEnd.Before(*patch.DateStart) {
		return nil, ErrBadDateRange
	}

	event, err := s.repo.UpdateEvent(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(id)
	return event, nil
}

// Delete удаляет событие. Удалять событие может только его владелец.
func (s *EventService) Delete(ctx context.Context, userID, id int) error {
	existing, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrNotOwner
	}

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *EventService) invalidate(id int) {
	key := cacheKey(id)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", key), sl.Err(err))
	}
}

func cacheKey(id int) string {
	return fmt.Sprintf("event:%d", id)
}
