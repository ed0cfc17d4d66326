package xlsxgrid

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidRange indicates a cell range could not be parsed.
var ErrInvalidRange = errors.New("invalid cell range")

// ErrNoPrintArea indicates the sheet has no print area defined.
var ErrNoPrintArea = errors.New("no print area defined")

// LoadError represents an error while loading or saving a grid.
type LoadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("xlsx %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("xlsx %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheet string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}
