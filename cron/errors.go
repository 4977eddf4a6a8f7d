package cron

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is returned when a cron expression fails validation due
// to an incorrect field count, out-of-range values, or malformed syntax.
var ErrInvalidExpression = errors.New("invalid cron expression")

// ErrUnknownDialect is returned by ParseDialect for unrecognised dialect names.
var ErrUnknownDialect = errors.New("unknown cron dialect")

// FieldError reports which field of an expression was rejected.
type FieldError struct {
	Field Field
	Value string
	Err   error
}

// Error returns the field name, the offending value and the reason.
func (e *FieldError) Error() string {
	if e == nil {
		return ErrInvalidExpression.Error()
	}

	return fmt.Sprintf("invalid %s field %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap exposes the underlying reason, which always wraps ErrInvalidExpression.
func (e *FieldError) Unwrap() error {
	if e == nil {
		return ErrInvalidExpression
	}

	return e.Err
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidExpression}, args...)...)
}
