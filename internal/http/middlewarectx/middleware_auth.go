// Package middlewarectx содержит HTTP middleware для проверки bearer-токенов
// и разрешения сессии.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization, загружает актуальную запись пользователя и добавляет её
// в контекст для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с заголовком
// WWW-Authenticate: Bearer.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/playplace/internal/http/response"
	"github.com/magabrotheeeer/playplace/internal/lib/sl"
	"github.com/magabrotheeeer/playplace/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// CurrentUser — ключ для записи пользователя текущей сессии в контексте.
const CurrentUser Key = "current_user"

// Service описывает интерфейс разрешения сессии по bearer-токену.
type Service interface {
	// ResolveToken декодирует токен и возвращает актуальную запись пользователя.
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке
// Authorization и кладёт запись пользователя в контекст запроса.
//
// Битый токен, просроченный токен и токен удалённого пользователя дают
// одинаковый ответ 401 — наружу не раскрывается, что именно не так.
func JWTMiddleware(resolver Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.Header().Set("WWW-Authenticate", "Bearer")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := resolver.ResolveToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.Header().Set("WWW-Authenticate", "Bearer")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), CurrentUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext извлекает запись пользователя текущей сессии из контекста.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(CurrentUser).(*models.User)
	return user, ok && user != nil
}
