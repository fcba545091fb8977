package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey is returned on unique constraint violations.
	ErrDuplicateKey = errors.New("database: duplicate key")

	// ErrForeignKeyViolation is returned when a foreign key constraint is violated.
	ErrForeignKeyViolation = errors.New("database: foreign key violation")
)

// ConstraintError keeps the driver error behind one of the sentinels above.
type ConstraintError struct {
	Sentinel error
	Cause    error
}

func (e *ConstraintError) Error() string        { return e.Sentinel.Error() + ": " + e.Cause.Error() }
func (e *ConstraintError) Is(target error) bool { return e.Sentinel == target }
func (e *ConstraintError) Unwrap() error        { return e.Cause }

// MapError translates constraint failures from gorm, pgx or sqlite into
// ErrDuplicateKey / ErrForeignKeyViolation. Other errors are returned as is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var ce *ConstraintError
	if errors.As(err, &ce) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintError{Sentinel: ErrDuplicateKey, Cause: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConstraintError{Sentinel: ErrForeignKeyViolation, Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return &ConstraintError{Sentinel: ErrDuplicateKey, Cause: err}
		case "23503": // foreign_key_violation
			return &ConstraintError{Sentinel: ErrForeignKeyViolation, Cause: err}
		}
		return err
	}

	// go-sqlite3 only exposes these as messages.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &ConstraintError{Sentinel: ErrDuplicateKey, Cause: err}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &ConstraintError{Sentinel: ErrForeignKeyViolation, Cause: err}
	}
	return err
}
