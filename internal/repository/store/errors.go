package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"parcel-service/internal/repository"
)

var (
	// ErrUnavailable хранилище недоступно (соединение, сеть), ошибка пробрасывается как есть.
	ErrUnavailable = errors.New("store unavailable")
	ErrDuplicate   = errors.New("duplicate key")
	// ErrConstraint запись нарушила check constraint таблицы (инварианты статусов посылки).
	ErrConstraint = errors.New("constraint violation")
)

func wrapError(op string, collection Collection, err error) error {
	if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
		return fmt.Errorf("%s %s: %w: %w", op, collection, ErrDuplicate, err)
	}

	if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
		return fmt.Errorf("%s %s: %w: %w", op, collection, ErrConstraint, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", op, collection, err)
	}

	return fmt.Errorf("%s %s: %w: %w", op, collection, ErrUnavailable, err)
}
