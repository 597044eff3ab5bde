// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNullMove indicates an attempt to execute the null-move sentinel.
	ErrNullMove = errors.New("null move cannot be executed")

	// ErrNoKing indicates a board with a missing king.
	ErrNoKing = errors.New("board does not have a king")

	// ErrInvalidBoard indicates an inconsistent board configuration.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed or off-board square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPerftMismatch indicates leaf counts that differ from the reference
	// move generator.
	ErrPerftMismatch = errors.New("perft mismatch")
)

// BoardError wraps errors with position context. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type BoardError struct {
	Err    error  // The underlying error
	Square string // Algebraic square involved (if applicable)
	FEN    string // Position the error relates to (if known)
}

// Error returns a formatted error message including all available context.
func (e *BoardError) Error() string {
	var parts []string
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}
	if e.Square != "" {
		parts = append(parts, "square "+e.Square)
	}
	if len(parts) == 0 {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "board error"
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *BoardError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with the move and ply that caused them.
type MoveError struct {
	Err  error  // The underlying error
	Move string // Move text (if applicable)
	Ply  int    // Ply number where the error occurred (0 if not applicable)
}

// Error returns a formatted error message with move context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Fatal marks err as a broken engine invariant by attaching a stack trace.
// The sentinel stays reachable through errors.Is().
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithStack(err)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
