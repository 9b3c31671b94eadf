package models

import "time"

// DateLayout — формат календарных дат в JSON-запросах и ответах.
const DateLayout = "02-01-2006"

// Event представляет событие, запланированное пользователем на площадке.
// Календарная дата и время суток хранятся раздельно: DateStart/DateEnd —
// даты без времени, TimeStart/TimeEnd — строки вида HH:MM:SS.
type Event struct {
	ID          int        // Уникальный идентификатор события
	UserID      int        // Владелец события
	PlatformID  int        // Площадка, на которой проходит событие
	Name        string     // Название
	City        *string    // Город (опционально)
	Address     *string    // Адрес (опционально)
	DateStart   *time.Time // Дата начала
	DateEnd     *time.Time // Дата окончания
	TimeStart   *string    // Время начала, HH:MM:SS
	TimeEnd     *string    // Время окончания, HH:MM:SS
	Description *string    // Описание (опционально)
}

// EventPatch описывает частичное обновление события,
// поле nil означает "оставить без изменений".
type EventPatch struct {
	PlatformID  *int
	Name        *string
	City        *string
	Address     *string
	DateStart   *time.Time
	DateEnd     *time.Time
	TimeStart   *string
	TimeEnd     *string
	Description *string
}

// DummyEvent используется для приёма данных нового события из JSON-запроса.
// Даты приходят строками в формате 02-01-2006, время — HH:MM:SS.
// Владелец события берётся из сессии, а не из тела запроса.
type DummyEvent struct {
	PlatformID  int     `json:"platform_id" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required,max=255"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=255"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=255"`
	DateStart   string  `json:"date_start" validate:"required,datetime=02-01-2006"`
	DateEnd     string  `json:"date_end" validate:"required,datetime=02-01-2006"`
	TimeStart   string  `json:"time_start" validate:"required,datetime=15:04:05"`
	TimeEnd     string  `json:"time_end" validate:"required,datetime=15:04:05"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// DummyEventUpdate используется для приёма частичного обновления события.
type DummyEventUpdate struct {
	PlatformID  *int    `json:"platform_id,omitempty" validate:"omitempty,gt=0"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=255"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=255"`
	DateStart   *string `json:"date_start,omitempty" validate:"omitempty,datetime=02-01-2006"`
	DateEnd     *string `json:"date_end,omitempty" validate:"omitempty,datetime=02-01-2006"`
	TimeStart   *string `json:"time_start,omitempty" validate:"omitempty,datetime=15:04:05"`
	TimeEnd     *string `json:"time_end,omitempty" validate:"omitempty,datetime=15:04:05"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// EventView — представление события для JSON-ответа.
type EventView struct {
	ID          int     `json:"id"`
	UserID      int     `json:"user_id"`
	PlatformID  int     `json:"platform_id"`
	Name        string  `json:"name"`
	City        *string `json:"city,omitempty"`
	Address     *string `json:"address,omitempty"`
	DateStart   *string `json:"date_start,omitempty"`
	DateEnd     *string `json:"date_end,omitempty"`
	TimeStart   *string `json:"time_start,omitempty"`
	TimeEnd     *string `json:"time_end,omitempty"`
	Description *string `json:"description,omitempty"`
}

// NewEventView собирает EventView, форматируя даты в 02-01-2006.
func NewEventView(e *Event) EventView {
	return EventView{
		ID:          e.ID,
		UserID:      e.UserID,
		PlatformID:  e.PlatformID,
		Name:        e.Name,
		City:        e.City,
		Address:     e.Address,
		DateStart:   formatDate(e.DateStart),
		DateEnd:     formatDate(e.DateEnd),
		TimeStart:   e.TimeStart,
		TimeEnd:     e.TimeEnd,
		Description: e.Description,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
