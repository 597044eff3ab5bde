package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrNullMove, ErrNoKing, ErrInvalidBoard, ErrInvalidFEN,
		ErrInvalidSquare, ErrIllegalMove, ErrInvalidConfig, ErrPerftMismatch,
	}
	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrNoKing, ErrInvalidBoard) {
		t.Error("ErrNoKing should not match ErrInvalidBoard")
	}
	if errors.Is(ErrIllegalMove, ErrNullMove) {
		t.Error("ErrIllegalMove should not match ErrNullMove")
	}
}

// TestBoardError_Error verifies the error message format
func TestBoardError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BoardError
		contains []string
	}{
		{
			name: "full context",
			err: &BoardError{
				Err:    ErrNoKing,
				Square: "e1",
				FEN:    "8/8/8/8/8/8/8/8 w - - 0 1",
			},
			contains: []string{"square e1", "8/8/8/8", "does not have a king"},
		},
		{
			name:     "minimal context",
			err:      &BoardError{Err: ErrInvalidBoard},
			contains: []string{"invalid board"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("BoardError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestBoardError_As(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", &BoardError{Err: ErrInvalidFEN, Square: "z9"})

	var extracted *BoardError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract BoardError")
	}
	if extracted.Square != "z9" {
		t.Errorf("extracted.Square = %q, want %q", extracted.Square, "z9")
	}
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MoveError
		want string
	}{
		{"full", &MoveError{Err: ErrIllegalMove, Move: "Nf3", Ply: 7}, `ply 7, move "Nf3": illegal move`},
		{"no context", &MoveError{Err: ErrIllegalMove}, "illegal move"},
		{"no error", &MoveError{Move: "e4"}, `move "e4"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFatal(t *testing.T) {
	err := Fatal(ErrNullMove)
	if !errors.Is(err, ErrNullMove) {
		t.Error("Fatal should preserve the underlying error")
	}
	if trace := fmt.Sprintf("%+v", err); !strings.Contains(trace, "TestFatal") {
		t.Errorf("Fatal should carry a stack trace, got %q", trace)
	}
	if Fatal(nil) != nil {
		t.Error("Fatal(nil) should be nil")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d of %s", 15, "self-play")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
