// Package errors provides the error types shared by the giongo source readers.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a source or document was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a source whose shape cannot be read
	ErrInvalidInput = errors.New("invalid input")
)

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a source whose rows do not have the expected shape.
type ParseError struct {
	Format  string // Format being parsed (e.g., "tab-delimited", "sheet")
	Path    string // File path, if applicable
	Row     int    // Zero-based row index, or -1 when not row specific
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	where := e.Path
	if e.Row >= 0 {
		if where != "" {
			where = fmt.Sprintf("%s row %d", where, e.Row)
		} else {
			where = fmt.Sprintf("row %d", e.Row)
		}
	}
	if where != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, where, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError that is not tied to a row.
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Row:     -1,
		Message: message,
	}
}

// NewRowParse creates a ParseError for a single row.
func NewRowParse(format, path string, row int, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Row:     row,
		Message: message,
	}
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
