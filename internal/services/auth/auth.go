// Package auth содержит бизнес-логику регистрации, выдачи токенов
// и разрешения сессии по bearer-токену.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/playplace/internal/lib/jwt"
	"github.com/magabrotheeeer/playplace/internal/lib/password"
	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/storage/repository"
)

// ErrInvalidCredentials — неверная пара логин/пароль. Неизвестный логин
// и неверный пароль дают одну и ту же ошибку, чтобы не раскрывать,
// что именно не совпало.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken — битый, просроченный или не сопоставимый
// с существующим пользователем токен.
var ErrInvalidToken = errors.New("invalid token")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)

	// GetUserByLogin возвращает пользователя по логину или ErrNotFound.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// GetUserByID возвращает пользователя по ID или ErrNotFound.
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}

// AuthService отвечает за регистрацию, выдачу токенов и разрешение сессии.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Дубликат логина или email даёт repository.ErrLoginTaken/ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, req models.DummyRegister) (int, error) {
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return 0, err
	}
	user := models.User{
		Login:        req.Login,
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Surname:      req.Surname,
		Patronymic:   req.Patronymic,
		City:         req.City,
		Phone:        req.Phone,
	}
	return s.users.CreateUser(ctx, user)
}

// Login проверяет пароль пользователя и выдаёт пару токенов: access и refresh.
func (s *AuthService) Login(ctx context.Context, login, rawPassword string) (access, refresh string, err error) {
	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	access, err = s.jwtMaker.GenerateToken(user.ID, jwt.Access)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.jwtMaker.GenerateToken(user.ID, jwt.Refresh)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Refresh проверяет refresh-токен и выдаёт новый access-токен.
// Пользователь перечитывается из базы: для удалённой учётной записи
// перевыпуск невозможен.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	user, err := s.ResolveToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	return s.jwtMaker.GenerateToken(user.ID, jwt.Access)
}

// ResolveToken декодирует токен и возвращает актуальную запись пользователя.
// Запись всегда перечитывается из базы, из payload берётся только
// идентификатор. Любая причина отказа — одна ошибка ErrInvalidToken:
// отсутствие пользователя не отличается от битого токена.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
