package apperr

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Resolve parses a write-side identifier and loads the referenced row,
// reporting a field error on field when either step fails.
func Resolve[T any](ctx context.Context, field, raw string, load func(context.Context, uuid.UUID) (T, error)) (T, error) {
	var zero T
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return zero, Validation(field, fmt.Sprintf("%q is not a valid UUID.", raw))
	}
	v, err := load(ctx, id)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return zero, Validation(field, fmt.Sprintf("Invalid pk %q - object does not exist.", raw))
		}
		return zero, err
	}
	return v, nil
}
