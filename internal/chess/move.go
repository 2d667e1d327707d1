package chess

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square identifies a board square by file (1 = a) and rank (1 = White's home rank).
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the 8x8 playing area.
func (s Square) Valid() bool {
	return s.File >= FirstFile && s.File <= LastFile &&
		s.Rank >= FirstRank && s.Rank <= LastRank
}

// Offset returns the square displaced by the given file and rank deltas.
// The result may lie off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File - 1), byte('1' + s.Rank - 1)})
}

// Less orders squares by file, then by rank.
func (s Square) Less(o Square) bool {
	if s.File != o.File {
		return s.File < o.File
	}
	return s.Rank < o.Rank
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrOutOfBounds)
	}
	sq := Square{File: int(name[0]-'a') + 1, Rank: int(name[1]-'1') + 1}
	if name[0] < 'a' || name[1] < '1' || !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrOutOfBounds)
	}
	return sq, nil
}

// CheckSquares returns ErrOutOfBounds for the first square outside the board.
func CheckSquares(squares ...Square) error {
	for _, sq := range squares {
		if !sq.Valid() {
			return fmt.Errorf("square %s: %w", sq, errors.ErrOutOfBounds)
		}
	}
	return nil
}

// SortSquares sorts squares in place by file, then by rank.
func SortSquares(squares []Square) {
	sort.Slice(squares, func(i, j int) bool { return squares[i].Less(squares[j]) })
}

// Move is a source-destination pair with an optional promotion kind.
type Move struct {
	From      Square
	To        Square
	Promotion Kind // Empty unless a pawn reaches the last rank
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion.IsPromotion() {
		s += string(m.Promotion.Letter() | 0x20)
	}
	return s
}

// ParseMove parses coordinate notation: "e2e4", "e7e8q".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	move := Move{From: from, To: to}
	if len(text) == 5 {
		move.Promotion = KindFromLetter(text[4])
		if !move.Promotion.IsPromotion() {
			return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidPromotion)
		}
	}
	return move, nil
}

// Mark classifies a square in a move profile.
type Mark uint8

const (
	MarkNone    Mark = iota // Unreachable
	MarkQuiet               // Move to an empty square
	MarkCapture             // Capture of an enemy piece on the square
	MarkSpecial             // En passant capture or castling hop
)

// String returns the name of the mark.
func (m Mark) String() string {
	switch m {
	case MarkQuiet:
		return "quiet"
	case MarkCapture:
		return "capture"
	case MarkSpecial:
		return "special"
	default:
		return "none"
	}
}

// Matrix is a move profile: the classification of every square a piece
// can reach. It is laid out like Position.Squares, indexed [file][rank].
type Matrix [GridSize][GridSize]Mark

// At returns the mark for a square, or MarkNone if the square is off the board.
func (m *Matrix) At(sq Square) Mark {
	if !sq.Valid() {
		return MarkNone
	}
	return m[sq.File][sq.Rank]
}

// Set marks a square. Squares off the board are ignored.
func (m *Matrix) Set(sq Square, mark Mark) {
	if sq.Valid() {
		m[sq.File][sq.Rank] = mark
	}
}

// Targets returns every marked square, ordered by file then rank.
func (m *Matrix) Targets() []Square {
	var targets []Square
	for file := FirstFile; file <= LastFile; file++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			if m[file][rank] != MarkNone {
				targets = append(targets, Square{File: file, Rank: rank})
			}
		}
	}
	return targets
}

// Count returns the number of marked squares.
func (m *Matrix) Count() int {
	n := 0
	for file := FirstFile; file <= LastFile; file++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			if m[file][rank] != MarkNone {
				n++
			}
		}
	}
	return n
}
