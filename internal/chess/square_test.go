package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestSquareRankFile(t *testing.T) {
	tests := []struct {
		sq       Square
		wantRank int
		wantFile int
		wantName string
	}{
		{0, 0, 0, "a8"},
		{7, 0, 7, "h8"},
		{4, 0, 4, "e8"},
		{36, 4, 4, "e4"},
		{56, 7, 0, "a1"},
		{60, 7, 4, "e1"},
		{63, 7, 7, "h1"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if got := tt.sq.Rank(); got != tt.wantRank {
				t.Errorf("Rank() = %d, want %d", got, tt.wantRank)
			}
			if got := tt.sq.File(); got != tt.wantFile {
				t.Errorf("File() = %d, want %d", got, tt.wantFile)
			}
			if got := tt.sq.String(); got != tt.wantName {
				t.Errorf("String() = %q, want %q", got, tt.wantName)
			}
			if got := SquareAt(tt.wantRank, tt.wantFile); got != tt.sq {
				t.Errorf("SquareAt(%d, %d) = %d, want %d", tt.wantRank, tt.wantFile, got, tt.sq)
			}
		})
	}
}

func TestSquareIsValid(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{-1, false},
		{0, true},
		{63, true},
		{64, false},
	}
	for _, tt := range tests {
		if got := tt.sq.IsValid(); got != tt.want {
			t.Errorf("Square(%d).IsValid() = %v, want %v", tt.sq, got, tt.want)
		}
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q, want %q", NoSquare.String(), "-")
	}
}

func TestSquareWrapsFile(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		maxFiles int
		offset   int
		want     bool
	}{
		{"rook right from h-file", "h4", 1, Offset(0, 1), true},
		{"rook left from a-file", "a4", 1, Offset(0, -1), true},
		{"rook right inside board", "d4", 1, Offset(0, 1), false},
		{"bishop up-right from h-file", "h3", 1, Offset(-1, 1), true},
		{"knight two files from g-file", "g1", 2, Offset(-1, 2), true},
		{"knight two files from f-file", "f1", 2, Offset(-1, 2), false},
		{"knight one file from a-file", "a1", 2, Offset(-2, -1), true},
		{"pawn push never wraps", "a2", 1, Offset(-1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := MustParseSquare(tt.from)
			if got := sq.WrapsFile(tt.maxFiles, tt.offset); got != tt.want {
				t.Errorf("WrapsFile(%d, %d) from %s = %v, want %v", tt.maxFiles, tt.offset, tt.from, got, tt.want)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error = %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %d, want %d", sq.String(), got, sq)
		}
	}

	for _, bad := range []string{"", "e", "e9", "i1", "E4", "e44"} {
		if _, err := ParseSquare(bad); !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", bad, err)
		}
	}
}

func TestSquareIsLight(t *testing.T) {
	if !MustParseSquare("a8").IsLight() {
		t.Error("a8 should be light")
	}
	if MustParseSquare("a1").IsLight() {
		t.Error("a1 should be dark")
	}
	if !MustParseSquare("h1").IsLight() {
		t.Error("h1 should be light")
	}
}
