package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/playplace/internal/models"
)

const userColumns = `id, login, email, password_hash, name, surname, patronymic, city, phone, photo`

// CreateUser сохраняет нового пользователя в базу данных и возвращает его ID.
// Дубликат логина или email даёт ErrLoginTaken/ErrEmailTaken.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO users (login, email, password_hash, name, surname, patronymic, city, phone, photo)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Login, user.Email, user.PasswordHash, user.Name, user.Surname,
		user.Patronymic, user.City, user.Phone, user.Photo).Scan(&newID); err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return 0, fmt.Errorf("%s: %w", op, mapped)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByID возвращает пользователя по его ID или ErrNotFound.
func (s *Storage) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, id), op)
}

// GetUserByLogin возвращает пользователя по его логину или ErrNotFound.
func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetUserByLogin"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, login), op)
}

// UpdateUser применяет частичное обновление профиля и возвращает
// обновлённую запись. Пустой patch не выполняет UPDATE и возвращает
// текущее состояние записи без изменений.
func (s *Storage) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var clause setClause
	if patch.Login != nil {
		clause.add("login", *patch.Login)
	}
	if patch.Email != nil {
		clause.add("email", *patch.Email)
	}
	if patch.Name != nil {
		clause.add("name", *patch.Name)
	}
	if patch.Surname != nil {
		clause.add("surname", *patch.Surname)
	}
	if patch.Patronymic != nil {
		clause.add("patronymic", *patch.Patronymic)
	}
	if patch.City != nil {
		clause.add("city", *patch.City)
	}
	if patch.Phone != nil {
		clause.add("phone", *patch.Phone)
	}
	if patch.Photo != nil {
		clause.add("photo", *patch.Photo)
	}
	if clause.empty() {
		return s.GetUserByID(ctx, id)
	}

	query, args := clause.build("users", userColumns, id)
	user, err := s.scanUser(s.DB.QueryRowContext(ctx, query, args...), op)
	if err != nil {
		if mapped := mapUniqueViolation(err); errors.Is(mapped, ErrLoginTaken) || errors.Is(mapped, ErrEmailTaken) {
			return nil, fmt.Errorf("%s: %w", op, mapped)
		}
		return nil, err
	}
	return user, nil
}

// scanUser вычитывает строку пользователя, переводя NULL-колонки в nil.
func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var name, surname, patronymic, city, phone, photo sql.NullString
	if err := row.Scan(&u.ID, &u.Login, &u.Email, &u.PasswordHash,
		&name, &surname, &patronymic, &city, &phone, &photo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u.Name = nullToPtr(name)
	u.Surname = nullToPtr(surname)
	u.Patronymic = nullToPtr(patronymic)
	u.City = nullToPtr(city)
	u.Phone = nullToPtr(phone)
	u.Photo = nullToPtr(photo)
	return u, nil
}

func nullToPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
