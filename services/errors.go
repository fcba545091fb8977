package services

import (
	"errors"
	"fmt"

	"github.com/krishkalaria12/blog-serve/database"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("conflict")
)

// Error pairs one of the sentinels above with a message safe to show to clients.
type Error struct {
	Sentinel error
	Message  string
}

func (e *Error) Error() string        { return fmt.Sprintf("%s: %s", e.Sentinel, e.Message) }
func (e *Error) Is(target error) bool { return e.Sentinel == target }

func notFound(message string) error { return &Error{Sentinel: ErrNotFound, Message: message} }
func conflict(message string) error { return &Error{Sentinel: ErrConflict, Message: message} }

var (
	errUserNotFound = notFound("User not found")
	errPostNotFound = notFound("Post not found")
)

// fromStorage turns constraint violations that slipped past the pre-checks
// into service errors.
func fromStorage(err error, duplicateMessage string) error {
	err = database.MapError(err)
	switch {
	case errors.Is(err, database.ErrDuplicateKey):
		return conflict(duplicateMessage)
	case errors.Is(err, database.ErrForeignKeyViolation):
		return errUserNotFound
	}
	return err
}
