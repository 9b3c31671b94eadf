package user_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/playplace/internal/models"
	"github.com/magabrotheeeer/playplace/internal/services/user"
	"github.com/magabrotheeeer/playplace/internal/uploads"
)

// Мок для Repository
type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Мок для FileStore
type FileStoreMock struct {
	mock.Mock
}

func (m *FileStoreMock) Save(subdir, contentType, originalName string, src io.Reader) (string, error) {
	args := m.Called(subdir, contentType, originalName, src)
	return args.String(0), args.Error(1)
}

func (m *FileStoreMock) Remove(rel string) error {
	args := m.Called(rel)
	return args.Error(0)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func strPtr(s string) *string { return &s }

func TestUserService_UpdateProfile_EmptyPatch(t *testing.T) {
	repo := new(RepoMock)
	current := &models.User{ID: 7, Login: "testuser"}
	repo.On("UpdateUser", mock.Anything, 7, models.UserPatch{}).Return(current, nil).Once()

	service := user.NewUserService(repo, new(FileStoreMock), newLogger())
	got, err := service.UpdateProfile(context.Background(), 7, models.DummyUserUpdate{})

	require.NoError(t, err)
	assert.Equal(t, "testuser", got.Login)
	repo.AssertExpectations(t)
}

func TestUserService_SetPhoto_ReplacesOld(t *testing.T) {
	repo := new(RepoMock)
	files := new(FileStoreMock)

	existing := &models.User{ID: 7, Login: "testuser", Photo: strPtr("users/old.png")}
	updated := &models.User{ID: 7, Login: "testuser", Photo: strPtr("users/new.png")}

	repo.On("GetUserByID", mock.Anything, 7).Return(existing, nil).Once()
	files.On("Save", uploads.UsersDir, "image/png", "avatar.png", mock.Anything).
		Return("users/new.png", nil).Once()
	repo.On("UpdateUser", mock.Anything, 7, models.UserPatch{Photo: strPtr("users/new.png")}).
		Return(updated, nil).Once()
	files.On("Remove", "users/old.png").Return(nil).Once()

	service := user.NewUserService(repo, files, newLogger())
	got, err := service.SetPhoto(context.Background(), 7, "image/png", "avatar.png",
		strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "users/new.png", *got.Photo)
	repo.AssertExpectations(t)
	files.AssertExpectations(t)
}

func TestUserService_SetPhoto_BadUpload(t *testing.T) {
	repo := new(RepoMock)
	files := new(FileStoreMock)

	existing := &models.User{ID: 7, Login: "testuser", Photo: strPtr("users/old.png")}
	repo.On("GetUserByID", mock.Anything, 7).Return(existing, nil).Once()
	files.On("Save", uploads.UsersDir, "text/plain", "notes.txt", mock.Anything).
		Return("", uploads.ErrNotImage).Once()

	service := user.NewUserService(repo, files, newLogger())
	_, err := service.SetPhoto(context.Background(), 7, "text/plain", "notes.txt",
		strings.NewReader("text"))

	assert.ErrorIs(t, err, uploads.ErrNotImage)
	// старая фотография не тронута
	files.AssertNotCalled(t, "Remove", mock.Anything)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}
