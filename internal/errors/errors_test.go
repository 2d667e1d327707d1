package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidMove", ErrInvalidMove, ErrInvalidMove},
		{"ErrMissingPromotion", ErrMissingPromotion, ErrMissingPromotion},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestIllegalMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *IllegalMoveError
		contains []string
	}{
		{
			name:     "with move text",
			err:      &IllegalMoveError{Move: "e1g1", Reason: ReasonAttackedTransit},
			contains: []string{"illegal move", "e1g1", "attacked square"},
		},
		{
			name:     "without move text",
			err:      &IllegalMoveError{Reason: ReasonExposesKing},
			contains: []string{"illegal move", "own king in check"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

func TestIllegalMoveError_Unwrap(t *testing.T) {
	err := fmt.Errorf("apply: %w", NewIllegalMove("a1a8", ReasonBlocked))

	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(err, ErrIllegalMove) = false, want true")
	}

	var ime *IllegalMoveError
	if !errors.As(err, &ime) {
		t.Fatal("errors.As(err, *IllegalMoveError) = false, want true")
	}
	if ime.Reason != ReasonBlocked {
		t.Errorf("Reason = %v, want %v", ime.Reason, ReasonBlocked)
	}
	if ime.Move != "a1a8" {
		t.Errorf("Move = %q, want %q", ime.Move, "a1a8")
	}
}

func TestReason_String(t *testing.T) {
	reasons := []Reason{
		ReasonNoPiece, ReasonWrongSide, ReasonBlocked,
		ReasonExposesKing, ReasonNoCastlingRights, ReasonAttackedTransit,
	}
	seen := make(map[string]bool)
	for _, r := range reasons {
		s := r.String()
		if s == "unknown" {
			t.Errorf("Reason(%d).String() = unknown", r)
		}
		if seen[s] {
			t.Errorf("Reason(%d).String() = %q duplicates another reason", r, s)
		}
		seen[s] = true
	}
	if got := Reason(99).String(); got != "unknown" {
		t.Errorf("Reason(99).String() = %q, want unknown", got)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
	})

	t.Run("preserves sentinel", func(t *testing.T) {
		err := Wrap(ErrOutOfBounds, "profile i9")
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("errors.Is(Wrap(ErrOutOfBounds), ErrOutOfBounds) = false")
		}
		if !strings.HasPrefix(err.Error(), "profile i9: ") {
			t.Errorf("Wrap() message = %q, want prefix %q", err.Error(), "profile i9: ")
		}
	})
}

func TestWrapf(t *testing.T) {
	if got := Wrapf(nil, "square %s", "z0"); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}

	err := Wrapf(ErrInvalidFEN, "field %d", 2)
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(Wrapf(ErrInvalidFEN), ErrInvalidFEN) = false")
	}
	if err.Error() != "field 2: invalid FEN string" {
		t.Errorf("Wrapf() = %q, want %q", err.Error(), "field 2: invalid FEN string")
	}
}
