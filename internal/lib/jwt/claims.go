package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает данные, хранящиеся в токене. Идентификатор пользователя
// передаётся строкой в стандартном поле Subject; никаких собственных полей,
// списков отзыва или audience нет — токен без состояния и действует до
// истечения срока.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID возвращает идентификатор пользователя из поля Subject.
func (c *Claims) UserID() (int, error) {
	const op = "jwt.UserID"
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// GenerateToken создает JWT токен с заданным userID в качестве subject,
// подписывая его секретным ключом алгоритмом HS256.
//
// Время жизни определяется видом токена: accessTTL для Access,
// refreshTTL для Refresh.
func (j *MakerImpl) GenerateToken(userID int, kind Kind) (string, error) {
	ttl := j.accessTTL
	if kind == Refresh {
		ttl = j.refreshTTL
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет его подпись и срок действия,
// возвращает Claims, если токен корректен.
//
// Битый формат, неверная подпись и истёкший срок дают одну и ту же
// ошибку "невалидный токен" с человекочитаемой причиной внутри —
// вызывающий код их не различает.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
