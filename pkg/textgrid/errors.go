package textgrid

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a semantically invalid value was supplied.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfRange indicates a row, column or insertion index is outside the grid.
var ErrOutOfRange = errors.New("index out of range")

// GridError represents a failed grid operation.
type GridError struct {
	Op   string // "new", "parse", "insert_row", "get", "stringify", ...
	Kind error  // ErrInvalidArgument or ErrOutOfRange
	Msg  string
}

func (e *GridError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *GridError) Unwrap() error {
	return e.Kind
}

// NewGridError creates a new GridError.
func NewGridError(op string, kind error, format string, args ...any) *GridError {
	return &GridError{
		Op:   op,
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func invalidArgument(op, format string, args ...any) error {
	return NewGridError(op, ErrInvalidArgument, format, args...)
}

func outOfRange(op, format string, args ...any) error {
	return NewGridError(op, ErrOutOfRange, format, args...)
}
