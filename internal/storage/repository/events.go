package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/playplace/internal/models"
)

// Время суток хранится колонкой TIME, наружу вычитывается текстом HH:MM:SS.
const eventColumns = `id, user_id, platform_id, name, city, address,
	date_start, date_end, time_start::text, time_end::text, description`

// CreateEvent сохраняет новое событие и возвращает его ID.
// Несуществующая площадка или пользователь дают ErrNotFound.
func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (int, error) {
	const op = "storage.CreateEvent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO events (user_id, platform_id, name, city, address,
			      date_start, date_end, time_start, time_end, description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8::time, $9::time, $10)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		event.UserID, event.PlatformID, event.Name, event.City, event.Address,
		event.DateStart, event.DateEnd, event.TimeStart, event.TimeEnd,
		event.Description).Scan(&newID); err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetEventByID возвращает событие по его ID или ErrNotFound.
func (s *Storage) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	const op = "storage.GetEventByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)
	event, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return event, nil
}

// ListEvents возвращает все события, упорядоченные по ID.
func (s *Storage) ListEvents(ctx context.Context) ([]*models.Event, error) {
	const op = "storage.ListEvents"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateEvent применяет частичное обновление события и возвращает
// обновлённую запись. Пустой patch возвращает текущее состояние.
func (s *Storage) UpdateEvent(ctx context.Context, id int, patch models.EventPatch) (*models.Event, error) {
	const op = "storage.UpdateEvent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var clause setClause
	if patch.PlatformID != nil {
		clause.add("platform_id", *patch.PlatformID)
	}
	if patch.Name != nil {
		clause.add("name", *patch.Name)
	}
	if patch.City != nil {
		clause.add("city", *patch.City)
	}
	if patch.Address != nil {
		clause.add("address", *patch.Address)
	}
	if patch.DateStart != nil {
		clause.add("date_start", *patch.DateStart)
	}
	if patch.DateEnd != nil {
		clause.add("date_end", *patch.DateEnd)
	}
	if patch.TimeStart != nil {
		clause.add("time_start", *patch.TimeStart)
	}
	if patch.TimeEnd != nil {
		clause.add("time_end", *patch.TimeEnd)
	}
	if patch.Description != nil {
		clause.add("description", *patch.Description)
	}
	if clause.empty() {
		return s.GetEventByID(ctx, id)
	}

	query, args := clause.build("events", eventColumns, id)
	row := s.DB.QueryRowContext(ctx, query, args...)
	event, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return event, nil
}

// DeleteEvent удаляет событие по ID. Отсутствующая запись даёт ErrNotFound.
func (s *Storage) DeleteEvent(ctx context.Context, id int) error {
	const op = "storage.DeleteEvent"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM events WHERE id = $1`
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

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// scanEvent вычитывает строку события, переводя NULL-колонки в nil.
func scanEvent(scan func(dest ...any) error) (*models.Event, error) {
	e := &models.Event{}
	var city, address, timeStart, timeEnd, description sql.NullString
	var dateStart, dateEnd sql.NullTime
	if err := scan(&e.ID, &e.UserID, &e.PlatformID, &e.Name, &city, &address,
		&dateStart, &dateEnd, &timeStart, &timeEnd, &description); err != nil {
		return nil, err
	}

	e.City = nullToPtr(city)
	e.Address = nullToPtr(address)
	e.TimeStart = nullToPtr(timeStart)
	e.TimeEnd = nullToPtr(timeEnd)
	e.Description = nullToPtr(description)
	if dateStart.Valid {
		e.DateStart = &dateStart.Time
	}
	if dateEnd.Valid {
		e.DateEnd = &dateEnd.Time
	}
	return e, nil
}
