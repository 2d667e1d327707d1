package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name    string
		want    Square
		wantErr bool
	}{
		{"a1", Sq(1, 1), false},
		{"h8", Sq(8, 8), false},
		{"e4", Sq(5, 4), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a0", Square{}, true},
		{"A1", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSquare(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrOutOfBounds) {
					t.Errorf("ParseSquare(%q) error = %v, want ErrOutOfBounds", tt.name, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if got.String() != tt.name {
				t.Errorf("ParseSquare(%q).String() = %q", tt.name, got.String())
			}
		})
	}
}

func TestCheckSquares(t *testing.T) {
	if err := CheckSquares(Sq(1, 1), Sq(8, 8)); err != nil {
		t.Errorf("CheckSquares(a1, h8) = %v, want nil", err)
	}
	if err := CheckSquares(Sq(1, 1), Sq(9, 1)); !errors.Is(err, chesserrors.ErrOutOfBounds) {
		t.Errorf("CheckSquares(a1, (9,1)) = %v, want ErrOutOfBounds", err)
	}
}

func TestSortSquares(t *testing.T) {
	squares := []Square{Sq(5, 4), Sq(1, 8), Sq(5, 3), Sq(1, 2)}
	SortSquares(squares)

	want := []Square{Sq(1, 2), Sq(1, 8), Sq(5, 3), Sq(5, 4)}
	for i := range want {
		if squares[i] != want[i] {
			t.Fatalf("SortSquares = %v, want %v", squares, want)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		text    string
		want    Move
		wantErr error
	}{
		{"e2e4", Move{From: Sq(5, 2), To: Sq(5, 4)}, nil},
		{"e7e8q", Move{From: Sq(5, 7), To: Sq(5, 8), Promotion: Queen}, nil},
		{"a2a1n", Move{From: Sq(1, 2), To: Sq(1, 1), Promotion: Knight}, nil},
		{"e7e8k", Move{}, chesserrors.ErrInvalidPromotion},
		{"e2", Move{}, chesserrors.ErrInvalidMove},
		{"e2e9", Move{}, chesserrors.ErrOutOfBounds},
		{"z2e4", Move{}, chesserrors.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseMove(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
			if got.String() != tt.text {
				t.Errorf("ParseMove(%q).String() = %q", tt.text, got.String())
			}
		})
	}
}

func TestMatrix(t *testing.T) {
	var m Matrix

	m.Set(Sq(5, 4), MarkQuiet)
	m.Set(Sq(4, 5), MarkCapture)
	m.Set(Sq(0, 5), MarkCapture)

	if got := m.At(Sq(5, 4)); got != MarkQuiet {
		t.Errorf("At(e4) = %v, want quiet", got)
	}
	if got := m.At(Sq(0, 5)); got != MarkNone {
		t.Errorf("At off board = %v, want none", got)
	}
	if got := m.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	targets := m.Targets()
	if len(targets) != 2 || targets[0] != Sq(4, 5) || targets[1] != Sq(5, 4) {
		t.Errorf("Targets() = %v, want [d5 e4]", targets)
	}
}
