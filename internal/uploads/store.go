// Package uploads реализует хранение загружаемых изображений в плоском
// каталоге на диске. Файлы получают случайные имена, в базе остаётся
// только относительный путь внутри каталога.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UsersDir — подкаталог для фотографий пользователей.
const UsersDir = "users"

// Типизированные ошибки валидации загрузки.
var (
	// ErrNotImage — заявленный content type не является изображением.
	ErrNotImage = errors.New("file is not an image")
	// ErrBadExtension — расширение файла не входит в список разрешённых.
	ErrBadExtension = errors.New("unsupported file extension")
)

// allowedExts — разрешённые расширения изображений. Один список для
// фотографий пользователей и изображений площадок.
var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Store сохраняет и удаляет файлы в каталоге baseDir.
type Store struct {
	baseDir string
}

// New создаёт Store и каталоги для загрузок, если их ещё нет.
func New(baseDir string) (*Store, error) {
	const op = "uploads.New"
	if err := os.MkdirAll(filepath.Join(baseDir, UsersDir), 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save проверяет заявленный content type и расширение исходного имени,
// затем записывает содержимое под случайным именем в подкаталог subdir
// (пустая строка — корень каталога загрузок). Возвращает относительный
// путь сохранённого файла. Проверки выполняются до записи на диск.
func (s *Store) Save(subdir, contentType, originalName string, src io.Reader) (string, error) {
	const op = "uploads.Save"

	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%s: %w", op, ErrNotImage)
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExts[ext] {
		return "", fmt.Errorf("%s: %w", op, ErrBadExtension)
	}

	rel := path.Join(subdir, uuid.NewString()+ext)
	dst, err := os.Create(filepath.Join(s.baseDir, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = dst.Close()
	}()

	if _, err = io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return rel, nil
}

// Remove удаляет файл по относительному пути. Уже отсутствующий файл
// не считается ошибкой.
func (s *Store) Remove(rel string) error {
	const op = "uploads.Remove"
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
