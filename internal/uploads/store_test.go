package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndRemove(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	rel, err := store.Save(UsersDir, "image/png", "avatar.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, UsersDir+"/"))
	assert.True(t, strings.HasSuffix(rel, ".png"))
	// имя файла случайное, не исходное
	assert.NotContains(t, rel, "avatar")

	require.NoError(t, store.Remove(rel))
	// повторное удаление не ошибка
	require.NoError(t, store.Remove(rel))
}

func TestStore_SaveToRoot(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	rel, err := store.Save("", "image/jpeg", "field.JPG", strings.NewReader("jpg-bytes"))
	require.NoError(t, err)
	// расширение приводится к нижнему регистру
	assert.True(t, strings.HasSuffix(rel, ".jpg"))
	assert.NotContains(t, rel, "/")

	data, err := os.ReadFile(filepath.Join(dir, rel))
	require.NoError(t, err)
	assert.Equal(t, "jpg-bytes", string(data))
}

func TestStore_RejectsBeforeWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	tests := []struct {
		name        string
		contentType string
		fileName    string
		wantErr     error
	}{
		{
			name:        "не изображение по content type",
			contentType: "text/plain",
			fileName:    "notes.png",
			wantErr:     ErrNotImage,
		},
		{
			name:        "запрещённое расширение",
			contentType: "image/svg+xml",
			fileName:    "vector.svg",
			wantErr:     ErrBadExtension,
		},
		{
			name:        "расширение отсутствует",
			contentType: "image/png",
			fileName:    "noext",
			wantErr:     ErrBadExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Save("", tt.contentType, tt.fileName, strings.NewReader("data"))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// отклонённые загрузки не оставляют файлов
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, UsersDir, e.Name())
	}
}
