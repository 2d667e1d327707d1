package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position represents a chess position with all state needed by the rules engine.
type Position struct {
	// The board squares with a border of one Off square on each side.
	// Squares[file][rank] where file and rank are 0-9; 1-8 are playable.
	Squares [GridSize][GridSize]Piece

	// Who has the next move.
	ToMove Colour

	// Special holds one row per colour. Columns 1-8 mark the file of a pawn
	// that colour double-stepped on the previous ply (capturable en passant
	// by the opponent's next move only). Column 0 is set once the queenside
	// castle is forbidden, column 9 once the kingside castle is forbidden.
	Special [2][GridSize]uint8
}

// NewPosition creates a new empty position with White to move.
func NewPosition() *Position {
	p := &Position{ToMove: White}
	// Initialize all squares to Off (border) or Empty
	for file := 0; file < GridSize; file++ {
		for rank := 0; rank < GridSize; rank++ {
			if Sq(file, rank).Valid() {
				p.Squares[file][rank] = NoPiece
			} else {
				p.Squares[file][rank] = OffBoard
			}
		}
	}
	return p
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	*p = *NewPosition()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := FirstFile; file <= LastFile; file++ {
		p.Squares[file][White.HomeRank()] = W(backRank[file-1])
		p.Squares[file][White.PawnRank()] = W(Pawn)
		p.Squares[file][Black.PawnRank()] = B(Pawn)
		p.Squares[file][Black.HomeRank()] = B(backRank[file-1])
	}
}

// Get returns the piece on a square, or OffBoard if the square is outside the board.
func (p *Position) Get(sq Square) Piece {
	if !sq.Valid() {
		return OffBoard
	}
	return p.Squares[sq.File][sq.Rank]
}

// Set places a piece on a square. Squares outside the board are ignored.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p.Squares[sq.File][sq.Rank] = piece
	}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}

// Flipped returns a copy rotated by 180 degrees: every piece moves to the
// point-symmetric square and the special-state columns are reversed.
// Rows of the special state are indexed by colour and stay in place.
// The receiver is not modified.
func (p *Position) Flipped() *Position {
	f := &Position{ToMove: p.ToMove}
	last := GridSize - 1
	for file := 0; file < GridSize; file++ {
		for rank := 0; rank < GridSize; rank++ {
			f.Squares[file][rank] = p.Squares[last-file][last-rank]
		}
	}
	for row := range p.Special {
		for col := 0; col < GridSize; col++ {
			f.Special[row][col] = p.Special[row][last-col]
		}
	}
	return f
}

// KingSquare locates the king of the given colour.
func (p *Position) KingSquare(colour Colour) (Square, bool) {
	king := MakePiece(colour, King)
	for file := FirstFile; file <= LastFile; file++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			if p.Squares[file][rank] == king {
				return Sq(file, rank), true
			}
		}
	}
	return Square{}, false
}

// PieceSquares returns the squares holding pieces of the given colour,
// ordered by file then rank.
func (p *Position) PieceSquares(colour Colour) []Square {
	var squares []Square
	for file := FirstFile; file <= LastFile; file++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			if p.Squares[file][rank].IsFriendOf(colour) {
				squares = append(squares, Sq(file, rank))
			}
		}
	}
	return squares
}

// EnPassantFile returns the file of the pawn the given colour double-stepped
// on the previous ply, or 0 if there is none.
func (p *Position) EnPassantFile(colour Colour) int {
	for file := FirstFile; file <= LastFile; file++ {
		if p.Special[colour][file] != 0 {
			return file
		}
	}
	return 0
}

// SetEnPassant marks a file as capturable en passant against colour's pawn.
func (p *Position) SetEnPassant(colour Colour, file int) {
	if file >= FirstFile && file <= LastFile {
		p.Special[colour][file] = 1
	}
}

// ClearEnPassant clears every en passant mark of the given colour, keeping
// the castling flags.
func (p *Position) ClearEnPassant(colour Colour) {
	for file := FirstFile; file <= LastFile; file++ {
		p.Special[colour][file] = 0
	}
}

// CastlingForbidden reports whether colour may no longer castle on the wing.
func (p *Position) CastlingForbidden(colour Colour, wing Wing) bool {
	return p.Special[colour][wing.flagColumn()] != 0
}

// ForbidCastling records that colour may no longer castle on the wing.
func (p *Position) ForbidCastling(colour Colour, wing Wing) {
	p.Special[colour][wing.flagColumn()] = 1
}

// AllowCastling clears the castling flag for the wing.
func (p *Position) AllowCastling(colour Colour, wing Wing) {
	p.Special[colour][wing.flagColumn()] = 0
}

// Validate checks the structural invariants of the position: exactly one king
// per side and no pawns on the first or last rank.
func (p *Position) Validate() error {
	kings := [2]int{}
	for file := FirstFile; file <= LastFile; file++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			piece := p.Squares[file][rank]
			if piece.Kind == Off {
				return fmt.Errorf("border piece on %s: %w", Sq(file, rank), errors.ErrInvalidFEN)
			}
			if !piece.IsPiece() {
				continue
			}
			switch piece.Kind {
			case King:
				kings[piece.Colour]++
			case Pawn:
				if rank == FirstRank || rank == LastRank {
					return fmt.Errorf("pawn on %s: %w", Sq(file, rank), errors.ErrInvalidFEN)
				}
			}
		}
	}
	for _, c := range []Colour{White, Black} {
		if kings[c] != 1 {
			return fmt.Errorf("%s has %d kings: %w", c, kings[c], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// String renders the position as an 8x8 diagram with rank 8 at the top.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := LastRank; rank >= FirstRank; rank-- {
		fmt.Fprintf(&sb, "%d ", rank)
		for file := FirstFile; file <= LastFile; file++ {
			piece := p.Squares[file][rank]
			if piece.IsPiece() {
				sb.WriteByte(piece.Letter())
			} else {
				sb.WriteByte('.')
			}
			if file < LastFile {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
