package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNewUserView_HidesPasswordAndComposesURL(t *testing.T) {
	user := &User{
		ID:           7,
		Login:        "testuser",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$secret",
		Photo:        strPtr("users/abc.png"),
	}

	view := NewUserView(user, "/uploads")

	assert.Equal(t, "testuser", view.Login)
	assert.Equal(t, "/uploads/users/abc.png", *view.PhotoURL)
}

func TestNewUserView_NoPhoto(t *testing.T) {
	view := NewUserView(&User{ID: 7, Login: "testuser"}, "/uploads")
	assert.Nil(t, view.PhotoURL)
}

func TestPublicURL_SlashHandling(t *testing.T) {
	tests := []struct {
		name string
		base string
		rel  string
		want string
	}{
		{"без слэшей", "/uploads", "abc.png", "/uploads/abc.png"},
		{"база со слэшем", "/uploads/", "abc.png", "/uploads/abc.png"},
		{"путь со слэшем", "/uploads", "/abc.png", "/uploads/abc.png"},
		{"абсолютная база", "https://cdn.example.com/static", "users/abc.png", "https://cdn.example.com/static/users/abc.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := publicURL(strPtr(tt.rel), tt.base)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestDummyUserUpdate_Patch(t *testing.T) {
	req := DummyUserUpdate{
		City:  strPtr("Казань"),
		Phone: strPtr("+79001234567"),
	}
	patch := req.Patch()

	assert.Equal(t, "Казань", *patch.City)
	assert.Equal(t, "+79001234567", *patch.Phone)
	assert.Nil(t, patch.Login)
	assert.Nil(t, patch.Email)
	assert.Nil(t, patch.Photo)
}

func TestNewEventView_FormatsDates(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	event := &Event{
		ID:         10,
		UserID:     42,
		PlatformID: 3,
		Name:       "Вечерний футбол",
		DateStart:  &start,
		DateEnd:    &end,
		TimeStart:  strPtr("18:00:00"),
		TimeEnd:    strPtr("20:00:00"),
	}

	view := NewEventView(event)

	assert.Equal(t, "01-09-2026", *view.DateStart)
	assert.Equal(t, "02-09-2026", *view.DateEnd)
	assert.Equal(t, "18:00:00", *view.TimeStart)
}

func TestNewPlatformView_ComposesImageURL(t *testing.T) {
	platform := &Platform{ID: 5, Name: "Стадион", Image: strPtr("abc.png")}

	view := NewPlatformView(platform, "/uploads")

	assert.Equal(t, "/uploads/abc.png", *view.ImageURL)

	bare := NewPlatformView(&Platform{ID: 6, Name: "Корт"}, "/uploads")
	assert.Nil(t, bare.ImageURL)
}
