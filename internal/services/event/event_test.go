package event_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/services/event"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
)

// Мок для Repository
type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateEvent(ctx context.Context, e models.Event) (int, error) {
	args := m.Called(ctx, e)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *RepoMock) ListEvents(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *RepoMock) UpdateEvent(ctx context.Context, id int, patch models.EventPatch) (*models.Event, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *RepoMock) DeleteEvent(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Мок для Cache
type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func strPtr(s string) *string { return &s }

func validRequest() models.DummyEvent {
	return models.DummyEvent{
		PlatformID: 3,
		Name:       "Вечерний футбол",
		DateStart:  "01-09-2026",
		DateEnd:    "01-09-2026",
		TimeStart:  "18:00:00",
		TimeEnd:    "20:00:00",
	}
}

func TestEventService_Create(t *testing.T) {
	t.Run("владелец берётся из сессии", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateEvent", mock.Anything, mock.MatchedBy(func(e models.Event) bool {
			return e.UserID == 42 && e.PlatformID == 3 && e.Name == "Вечерний футбол"
		})).Return(10, nil).Once()

		service := event.NewEventService(repo, new(CacheMock), newLogger())
		created, err := service.Create(context.Background(), 42, validRequest())

		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
		assert.Equal(t, 42, created.UserID)
		repo.AssertExpectations(t)
	})

	t.Run("окончание раньше начала", func(t *testing.T) {
		req := validRequest()
		req.DateStart = "02-09-2026"
		req.DateEnd = "01-09-2026"

		service := event.NewEventService(new(RepoMock), new(CacheMock), newLogger())
		_, err := service.Create(context.Background(), 42, req)

		assert.ErrorIs(t, err, event.ErrBadDateRange)
	})

	t.Run("несуществующая площадка", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateEvent", mock.Anything, mock.Anything).
			Return(0, repository.ErrNotFound).Once()

		service := event.NewEventService(repo, new(CacheMock), newLogger())
		_, err := service.Create(context.Background(), 42, validRequest())

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestEventService_Update_Ownership(t *testing.T) {
	stored := &models.Event{ID: 10, UserID: 42, Name: "Вечерний футбол"}

	t.Run("владелец обновляет своё событие", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		updated := &models.Event{ID: 10, UserID: 42, Name: "Утренний футбол"}

		repo.On("GetEventByID", mock.Anything, 10).Return(stored, nil).Once()
		repo.On("UpdateEvent", mock.Anything, 10, mock.Anything).Return(updated, nil).Once()
		cache.On("Invalidate", "event:10").Return(nil).Once()

		service := event.NewEventService(repo, cache, newLogger())
		got, err := service.Update(context.Background(), 42, 10,
			models.DummyEventUpdate{Name: strPtr("Утренний футбол")})

		require.NoError(t, err)
		assert.Equal(t, "Утренний футбол", got.Name)
		cache.AssertExpectations(t)
	})

	t.Run("чужое событие отклоняется", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetEventByID", mock.Anything, 10).Return(stored, nil).Once()

		service := event.NewEventService(repo, new(CacheMock), newLogger())
		_, err := service.Update(context.Background(), 99, 10,
			models.DummyEventUpdate{Name: strPtr("Захваченное событие")})

		assert.ErrorIs(t, err, event.ErrNotOwner)
		repo.AssertNotCalled(t, "UpdateEvent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("некорректный диапазон дат в патче", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetEventByID", mock.Anything, 10).Return(stored, nil).Once()

		service := event.NewEventService(repo, new(CacheMock), newLogger())
		_, err := service.Update(context.Background(), 42, 10, models.DummyEventUpdate{
			DateStart: strPtr("02-09-2026"),
			DateEnd:   strPtr("01-09-2026"),
		})

		assert.ErrorIs(t, err, event.ErrBadDateRange)
	})
}

func TestEventService_Delete_Ownership(t *testing.T) {
	stored := &models.Event{ID: 10, UserID: 42, Name: "Вечерний футбол"}

	t.Run("владелец удаляет своё событие", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		repo.On("GetEventByID", mock.Anything, 10).Return(stored, nil).Once()
		repo.On("DeleteEvent", mock.Anything, 10).Return(nil).Once()
		cache.On("Invalidate", "event:10").Return(nil).Once()

		service := event.NewEventService(repo, cache, newLogger())
		require.NoError(t, service.Delete(context.Background(), 42, 10))

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("чужое событие отклоняется", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetEventByID", mock.Anything, 10).Return(stored, nil).Once()

		service := event.NewEventService(repo, new(CacheMock), newLogger())
		err := service.Delete(context.Background(), 99, 10)

		assert.ErrorIs(t, err, event.ErrNotOwner)
		repo.AssertNotCalled(t, "DeleteEvent", mock.Anything, mock.Anything)
	})

	t.Run("несуществующее событие", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetEventByID", mock.Anything, 404).Return(nil, repository.ErrNotFound).Once()

		service := event.NewEventService(repo, new(CacheMock), newLogger())
		err := service.Delete(context.Background(), 42, 404)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestEventService_Get_CacheMiss(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	stored := &models.Event{ID: 10, UserID: 42, Name: "Вечерний футбол"}

	cache.On("Get", "event:10", mock.Anything).Return(false, nil).Once()
	repo.On("GetEventByID", mock.Anything, 10).Return(stored, nil).Once()
	cache.On("Set", "event:10", stored, time.Hour).Return(nil).Once()

	service := event.NewEventService(repo, cache, newLogger())
	got, err := service.Get(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "Вечерний футбол", got.Name)
	cache.AssertExpectations(t)
}
