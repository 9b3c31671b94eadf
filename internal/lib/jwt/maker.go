// Package jwt реализует генерацию и парсинг JWT токенов доступа.
//
// Maker определяет интерфейс для создания и проверки токенов двух видов:
// access (короткоживущий) и refresh (долгоживущий). MakerImpl — конкретная
// реализация с использованием секретного ключа и двух сроков жизни.
package jwt

import (
	"time"
)

// Kind определяет вид выпускаемого токена.
type Kind int

const (
	// Access — короткоживущий токен для доступа к защищённым операциям.
	Access Kind = iota
	// Refresh — долгоживущий токен для перевыпуска access-токена.
	Refresh
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает подписанный токен указанного вида
	// с идентификатором пользователя в качестве subject.
	GenerateToken(userID int, kind Kind) (string, error)
	// ParseToken проверяет подпись и срок действия токена
	// и возвращает его claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и отдельных времён жизни для access и refresh токенов.
type MakerImpl struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTMaker создаёт новый экземпляр MakerImpl.
func NewJWTMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}
