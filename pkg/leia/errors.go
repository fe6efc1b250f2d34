package leia

import (
	"errors"
	"fmt"

	"github.com/moonlight-stereo/leia-go/internal/native"
)

var (
	// ErrUnavailable wraps every failure to load or link the display library.
	ErrUnavailable = errors.New("leia: library unavailable")

	// ErrClosed is returned by Close when the adapter was already closed.
	ErrClosed = errors.New("leia: adapter closed")

	// ErrNotBuilt reports a binary compiled without a dynamic loader.
	ErrNotBuilt = native.ErrNotBuilt

	// ErrLibraryNotFound reports that no candidate path could be opened.
	ErrLibraryNotFound = native.ErrLibraryNotFound

	// ErrSymbolMissing reports a library lacking leiaSet3DOn or leiaSet3DOff.
	ErrSymbolMissing = native.ErrSymbolMissing

	// ErrInvalidConfig reports a configuration that fails Validate.
	ErrInvalidConfig = errors.New("leia: invalid config")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("leia.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type panicError struct{ v any }

func (p panicError) Error() string { return fmt.Sprintf("panic: %v", p.v) }

func unavailable(op string, err error) error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
}
