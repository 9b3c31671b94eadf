package models

import "strings"

// Platform представляет спортивную площадку.
// Поле Image хранит относительный путь файла в каталоге загрузок.
type Platform struct {
	ID        int      // Уникальный идентификатор площадки
	Name      string   // Название
	City      *string  // Город (опционально)
	Address   *string  // Адрес (опционально)
	Image     *string  // Относительный путь изображения (опционально)
	Latitude  *float64 // Широта (опционально)
	Longitude *float64 // Долгота (опционально)
}

// PlatformPatch описывает частичное обновление площадки,
// поле nil означает "оставить без изменений".
type PlatformPatch struct {
	Name      *string
	City      *string
	Address   *string
	Image     *string
	Latitude  *float64
	Longitude *float64
}

// DummyPlatform используется для приёма данных новой площадки из JSON-запроса.
// Изображение загружается отдельным запросом.
type DummyPlatform struct {
	Name      string   `json:"name" validate:"required,max=255"`
	City      *string  `json:"city,omitempty" validate:"omitempty,max=255"`
	Address   *string  `json:"address,omitempty" validate:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// DummyPlatformUpdate используется для приёма частичного обновления площадки.
type DummyPlatformUpdate struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	City      *string  `json:"city,omitempty" validate:"omitempty,max=255"`
	Address   *string  `json:"address,omitempty" validate:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// Patch конвертирует запрос в PlatformPatch для слоя хранилища.
func (d DummyPlatformUpdate) Patch() PlatformPatch {
	return PlatformPatch{
		Name:      d.Name,
		City:      d.City,
		Address:   d.Address,
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
	}
}

// PlatformView — представление площадки для JSON-ответа.
type PlatformView struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	City      *string  `json:"city,omitempty"`
	Address   *string  `json:"address,omitempty"`
	ImageURL  *string  `json:"image_url,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// NewPlatformView собирает PlatformView с абсолютным URL изображения.
func NewPlatformView(p *Platform, publicBaseURL string) PlatformView {
	return PlatformView{
		ID:        p.ID,
		Name:      p.Name,
		City:      p.City,
		Address:   p.Address,
		ImageURL:  publicURL(p.Image, publicBaseURL),
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

// publicURL дополняет относительный путь файла публичным префиксом.
func publicURL(rel *string, publicBaseURL string) *string {
	if rel == nil || *rel == "" {
		return nil
	}
	url := strings.TrimSuffix(publicBaseURL, "/") + "/" + strings.TrimPrefix(*rel, "/")
	return &url
}
