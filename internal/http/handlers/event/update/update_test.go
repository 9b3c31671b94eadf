package update

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/playplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/services/event"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, userID, id int, req models.DummyEventUpdate) (*models.Event, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	currentUser := &models.User{ID: 42, Login: "testuser"}

	tests := []struct {
		name           string
		url            string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "владелец обновляет событие",
			url:  "/events/10",
			body: `{"name":"Утренний футбол"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 42, 10, mock.Anything).
					Return(&models.Event{ID: 10, UserID: 42, Name: "Утренний футбол"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Утренний футбол"`,
		},
		{
			name: "чужое событие",
			url:  "/events/10",
			body: `{"name":"Захваченное событие"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 42, 10, mock.Anything).
					Return(nil, event.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"event belongs to another user"`,
		},
		{
			name:           "некорректный id",
			url:            "/events/abc",
			body:           `{"name":"x"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid event id"`,
		},
		{
			name:           "некорректный формат даты",
			url:            "/events/10",
			body:           `{"date_start":"2026-09-01"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "событие не найдено",
			url:  "/events/404",
			body: `{"name":"x"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 42, 404, mock.Anything).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"event not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, tt.url, strings.NewReader(tt.body))
			ctx := context.WithValue(req.Context(), middlewarectx.CurrentUser, currentUser)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/events/"))
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
