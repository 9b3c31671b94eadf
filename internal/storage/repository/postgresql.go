// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями, площадками и событиями. Предоставляет
// методы создания, чтения, частичного обновления и удаления записей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Типизированные ошибки хранилища. Обработчики выбирают HTTP-статус
// по ним, не протаскивая наружу текст драйвера.
var (
	// ErrNotFound — запись с указанным идентификатором отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrLoginTaken — пользователь с таким логином уже существует.
	ErrLoginTaken = errors.New("login is already taken")
	// ErrEmailTaken — пользователь с таким email уже существует.
	ErrEmailTaken = errors.New("email is already taken")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями, площадками и событиями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// mapUniqueViolation переводит нарушение уникального индекса users
// в типизированную ошибку конфликта. Прочие ошибки возвращает как есть.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "login"):
			return ErrLoginTaken
		case strings.Contains(pgErr.ConstraintName, "email"):
			return ErrEmailTaken
		}
	}
	return err
}

// setClause накапливает пары колонка/значение для частичного UPDATE.
type setClause struct {
	sets []string
	args []any
}

func (c *setClause) add(column string, value any) {
	c.args = append(c.args, value)
	c.sets = append(c.sets, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

func (c *setClause) empty() bool {
	return len(c.sets) == 0
}

func (c *setClause) build(table, returning string, id int) (string, []any) {
	args := append(c.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(c.sets, ", "), len(args), returning)
	return query, args
}
