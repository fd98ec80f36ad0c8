// Package apperr defines the error kinds shared by repositories, services and handlers.
package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Fields  Fields
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Fields collects field-level validation messages keyed by wire field name.
type Fields map[string]string

func (f Fields) Add(field, msg string) {
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

func (f Fields) Empty() bool { return len(f) == 0 }

// Err returns a validation error when any field failed, nil otherwise.
func (f Fields) Err() error {
	if f.Empty() {
		return nil
	}
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: f}
}

func Validation(field, msg string) error {
	return Fields{field: msg}.Err()
}

func Invalid(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(what string) error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func Conflict(msg string, err error) error {
	return &Error{Kind: KindConflict, Message: msg, Err: err}
}

func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// KindOf reports the kind of err; unclassified errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PostgreSQL integrity violation codes.
const (
	codeForeignKey = "23503"
	codeUnique     = "23505"
	codeCheck      = "23514"
)

// FromDB translates driver errors into application errors. what names the
// entity the statement touched, e.g. "category".
func FromDB(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound(what)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUnique:
			return Conflict(fmt.Sprintf("%s already exists", what), err)
		case codeForeignKey:
			if strings.HasPrefix(pqErr.Message, "update or delete") {
				return Conflict(fmt.Sprintf("%s is still referenced by other records", what), err)
			}
			return Conflict(fmt.Sprintf("%s references a missing record", what), err)
		case codeCheck:
			return Conflict(fmt.Sprintf("%s violates constraint %s", what, pqErr.Constraint), err)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}
