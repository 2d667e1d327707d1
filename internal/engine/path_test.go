package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"e4", "e5", true},
		{"e4", "d3", true},
		{"e4", "f5", true},
		{"e4", "e4", false},
		{"e4", "e6", false},
		{"a1", "h8", false},
		{"h1", "g2", true},
	}

	for _, tt := range tests {
		a, b := testutil.MustSquare(t, tt.a), testutil.MustSquare(t, tt.b)
		if got := isAdjacent(a, b); got != tt.want {
			t.Errorf("isAdjacent(%s, %s) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsPathClear(t *testing.T) {
	pos := chess.NewInitialPosition()
	tests := []struct {
		from, to string
		want     bool
	}{
		{"a1", "a2", true},
		{"a1", "a8", false},
		{"a3", "h3", true},
		{"c1", "h6", false},
		{"a3", "e7", true},
	}

	for _, tt := range tests {
		from, to := testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to)
		if got := isPathClear(pos, from, to); got != tt.want {
			t.Errorf("isPathClear(%s, %s) = %v; want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
