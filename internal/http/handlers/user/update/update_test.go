package update

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/playplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateProfile(ctx context.Context, id int, req models.DummyUserUpdate) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	currentUser := &models.User{ID: 7, Login: "testuser", Email: "test@example.com"}

	tests := []struct {
		name           string
		body           string
		withUser       bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "обновление одного поля",
			body:     `{"city":"Казань"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				city := "Казань"
				m.On("UpdateProfile", mock.Anything, 7, mock.MatchedBy(func(req models.DummyUserUpdate) bool {
					return req.City != nil && *req.City == "Казань" && req.Login == nil
				})).Return(&models.User{ID: 7, Login: "testuser", Email: "test@example.com", City: &city}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"city":"Казань"`,
		},
		{
			name:     "пустое тело не меняет профиль",
			body:     `{}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("UpdateProfile", mock.Anything, 7, models.DummyUserUpdate{}).
					Return(currentUser, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"login":"testuser"`,
		},
		{
			name:           "без пользователя в контексте",
			body:           `{"city":"Казань"}`,
			withUser:       false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"city":`,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "некорректный email",
			body:           `{"email":"not-an-email"}`,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name:     "новый логин уже занят",
			body:     `{"login":"taken"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("UpdateProfile", mock.Anything, 7, mock.Anything).
					Return(nil, repository.ErrLoginTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"login is already taken"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService, "/uploads")

			req := httptest.NewRequest(http.MethodPut, "/users/me", strings.NewReader(tt.body))
			if tt.withUser {
				ctx := context.WithValue(req.Context(), middlewarectx.CurrentUser, currentUser)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
