package middlewarectx_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/playplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/services/auth"
)

// MockResolver реализует интерфейс middlewarectx.Service
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestJWTMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name             string
		authHeader       string
		setupMock        func(*MockResolver)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name:       "валидный токен пропускает запрос дальше",
			authHeader: "Bearer good-token",
			setupMock: func(m *MockResolver) {
				m.On("ResolveToken", mock.Anything, "good-token").
					Return(&models.User{ID: 7, Login: "testuser"}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:           "заголовок отсутствует",
			authHeader:     "",
			setupMock:      func(_ *MockResolver) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "не bearer-схема",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMock:      func(_ *MockResolver) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "битый или просроченный токен",
			authHeader: "Bearer tampered-token",
			setupMock: func(m *MockResolver) {
				m.On("ResolveToken", mock.Anything, "tampered-token").
					Return(nil, auth.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(MockResolver)
			tt.setupMock(resolver)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				user, ok := middlewarectx.UserFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, 7, user.ID)
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewarectx.JWTMiddleware(resolver, logger)(next)

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
			resolver.AssertExpectations(t)
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	_, ok := middlewarectx.UserFromContext(context.Background())
	assert.False(t, ok)
}
