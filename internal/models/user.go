// Package models содержит доменные структуры площадок, событий и пользователей,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// User представляет зарегистрированного пользователя системы.
// Поле Photo хранит относительный путь файла в каталоге загрузок,
// абсолютный URL собирается только на границе сериализации ответа.
type User struct {
	ID           int     // Уникальный идентификатор пользователя
	Login        string  // Логин, уникален
	Email        string  // Email, уникален
	PasswordHash string  // bcrypt-хэш пароля
	Name         *string // Имя (опционально)
	Surname      *string // Фамилия (опционально)
	Patronymic   *string // Отчество (опционально)
	City         *string // Город (опционально)
	Phone        *string // Телефон (опционально)
	Photo        *string // Относительный путь фотографии (опционально)
}

// UserPatch описывает частичное обновление профиля. Поле nil означает
// "оставить без изменений"; возможности очистить поле до пустого значения
// намеренно нет.
type UserPatch struct {
	Login      *string
	Email      *string
	Name       *string
	Surname    *string
	Patronymic *string
	City       *string
	Phone      *string
	Photo      *string
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Login      string  `json:"login" validate:"required,min=3,max=50"`
	Password   string  `json:"password" validate:"required,min=6"`
	Email      string  `json:"email" validate:"required,email"`
	Name       *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Surname    *string `json:"surname,omitempty" validate:"omitempty,max=255"`
	Patronymic *string `json:"patronymic,omitempty" validate:"omitempty,max=255"`
	City       *string `json:"city,omitempty" validate:"omitempty,max=255"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// DummyUserUpdate используется для приёма частичного обновления профиля.
// Отсутствующее поле и явный null трактуются одинаково — без изменений.
type DummyUserUpdate struct {
	Login      *string `json:"login,omitempty" validate:"omitempty,min=3,max=50"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Name       *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Surname    *string `json:"surname,omitempty" validate:"omitempty,max=255"`
	Patronymic *string `json:"patronymic,omitempty" validate:"omitempty,max=255"`
	City       *string `json:"city,omitempty" validate:"omitempty,max=255"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// Patch конвертирует запрос в UserPatch для слоя хранилища.
func (d DummyUserUpdate) Patch() UserPatch {
	return UserPatch{
		Login:      d.Login,
		Email:      d.Email,
		Name:       d.Name,
		Surname:    d.Surname,
		Patronymic: d.Patronymic,
		City:       d.City,
		Phone:      d.Phone,
	}
}

// UserView — представление пользователя для JSON-ответа. Хэш пароля
// наружу не отдаётся, фотография — абсолютным URL.
type UserView struct {
	ID         int     `json:"id"`
	Login      string  `json:"login"`
	Email      string  `json:"email"`
	Name       *string `json:"name,omitempty"`
	Surname    *string `json:"surname,omitempty"`
	Patronymic *string `json:"patronymic,omitempty"`
	City       *string `json:"city,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	PhotoURL   *string `json:"photo_url,omitempty"`
}

// NewUserView собирает UserView, дополняя относительный путь фотографии
// публичным префиксом из конфигурации.
func NewUserView(u *User, publicBaseURL string) UserView {
	return UserView{
		ID:         u.ID,
		Login:      u.Login,
		Email:      u.Email,
		Name:       u.Name,
		Surname:    u.Surname,
		Patronymic: u.Patronymic,
		City:       u.City,
		Phone:      u.Phone,
		PhotoURL:   publicURL(u.Photo, publicBaseURL),
	}
}
