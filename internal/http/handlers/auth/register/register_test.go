package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req models.DummyRegister) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"login":"testuser","password":"password123","email":"test@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.MatchedBy(func(req models.DummyRegister) bool {
					return req.Login == "testuser" && req.Email == "test@example.com"
				})).Return(7, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"user_id":7`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"login":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "слишком короткий логин",
			body:           `{"login":"ab","password":"password123","email":"test@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Login is too short`,
		},
		{
			name:           "некорректный email",
			body:           `{"login":"testuser","password":"password123","email":"not-an-email"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name: "логин уже занят",
			body: `{"login":"testuser","password":"password123","email":"test@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).Return(0, repository.ErrLoginTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"login is already taken"`,
		},
		{
			name: "email уже занят",
			body: `{"login":"testuser","password":"password123","email":"test@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).Return(0, repository.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"email is already taken"`,
		},
		{
			name: "ошибка сервиса",
			body: `{"login":"testuser","password":"password123","email":"test@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
