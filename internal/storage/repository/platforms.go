package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/playplace/internal/models"
)

const platformColumns = `id, name, city, address, image, latitude, longitude`

// CreatePlatform сохраняет новую площадку и возвращает её ID.
func (s *Storage) CreatePlatform(ctx context.Context, platform models.Platform) (int, error) {
	const op = "storage.CreatePlatform"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO platforms (name, city, address, image, latitude, longitude)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		platform.Name, platform.City, platform.Address, platform.Image,
		platform.Latitude, platform.Longitude).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetPlatformByID возвращает площадку по её ID или ErrNotFound.
func (s *Storage) GetPlatformByID(ctx context.Context, id int) (*models.Platform, error) {
	const op = "storage.GetPlatformByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + platformColumns + ` FROM platforms WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)
	platform, err := scanPlatform(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return platform, nil
}

// ListPlatforms возвращает все площадки, упорядоченные по ID.
func (s *Storage) ListPlatforms(ctx context.Context) ([]*models.Platform, error) {
	const op = "storage.ListPlatforms"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + platformColumns + ` FROM platforms ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Platform
	for rows.Next() {
		platform, err := scanPlatform(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, platform)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdatePlatform применяет частичное обновление площадки и возвращает
// обновлённую запись. Пустой patch возвращает текущее состояние.
func (s *Storage) UpdatePlatform(ctx context.Context, id int, patch models.PlatformPatch) (*models.Platform, error) {
	const op = "storage.UpdatePlatform"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var clause setClause
	if patch.Name != nil {
		clause.add("name", *patch.Name)
	}
	if patch.City != nil {
		clause.add("city", *patch.City)
	}
	if patch.Address != nil {
		clause.add("address", *patch.Address)
	}
	if patch.Image != nil {
		clause.add("image", *patch.Image)
	}
	if patch.Latitude != nil {
		clause.add("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		clause.add("longitude", *patch.Longitude)
	}
	if clause.empty() {
		return s.GetPlatformByID(ctx, id)
	}

	query, args := clause.build("platforms", platformColumns, id)
	row := s.DB.QueryRowContext(ctx, query, args...)
	platform, err := scanPlatform(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return platform, nil
}

// DeletePlatform удаляет площадку по ID. Отсутствующая запись даёт ErrNotFound.
func (s *Storage) DeletePlatform(ctx context.Context, id int) error {
	const op = "storage.DeletePlatform"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM platforms WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// scanPlatform вычитывает строку площадки, переводя NULL-колонки в nil.
func scanPlatform(scan func(dest ...any) error) (*models.Platform, error) {
	p := &models.Platform{}
	var city, address, image sql.NullString
	var latitude, longitude sql.NullFloat64
	if err := scan(&p.ID, &p.Name, &city, &address, &image, &latitude, &longitude); err != nil {
		return nil, err
	}

	p.City = nullToPtr(city)
	p.Address = nullToPtr(address)
	p.Image = nullToPtr(image)
	if latitude.Valid {
		p.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		p.Longitude = &longitude.Float64
	}
	return p, nil
}
