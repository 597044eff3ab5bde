package testutil

import (
	"fmt"
	"testing"

	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

// These tests verify the assertion helpers on their success paths and the
// message formatting used on failure.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, []string{"e2e4", "d2d4"}, []string{"e2e4", "d2d4"})
	AssertEqual(t, 20, 20)
}

func TestAssertErrorIs_Success(t *testing.T) {
	err := fmt.Errorf("loading: %w", chesserrors.ErrInvalidFEN)
	AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
	AssertNoError(t, nil)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "exd6 e.p.", "e.p.")
	AssertTrue(t, true)
	AssertFalse(t, false)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"plain", []interface{}{"depth"}, "depth"},
		{"formatted", []interface{}{"depth %d", 3}, "depth 3"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
	if got := prefix("ply %d", 2); got != "ply 2: " {
		t.Errorf("prefix() = %q, want %q", got, "ply 2: ")
	}
}
