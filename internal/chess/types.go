// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of a pawn step: +1 for White, -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank the colour's king and rooks start on.
func (c Colour) HomeRank() int {
	if c == White {
		return FirstRank
	}
	return LastRank
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Forward()
}

// EnPassantRank returns the rank a pawn of this colour must stand on to
// capture en passant (its fifth rank).
func (c Colour) EnPassantRank() int {
	return c.HomeRank() + 4*c.Forward()
}

// PromotionRank returns the far rank where pawns of this colour promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// Kind represents a chess piece type.
type Kind int

// The numeric order of Pawn..King matches the 1..6 cell encoding.
const (
	Empty Kind = iota // Empty square
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	Off // Off the board (border square)
)

// PromotionKinds lists the kinds a pawn may promote to.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King", "Off"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K', ' '}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotion reports whether a pawn may promote to k.
func (k Kind) IsPromotion() bool {
	return k == Rook || k == Knight || k == Bishop || k == Queen
}

// KindFromLetter converts a piece letter of either case to a kind.
// It returns Empty for anything that is not a piece letter.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
}

var (
	// NoPiece is the content of an empty square.
	NoPiece = Piece{Kind: Empty}
	// OffBoard is the content of a border square.
	OffBoard = Piece{Kind: Off}
)

// MakePiece creates a coloured piece.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// IsPiece reports whether p is a real piece (neither empty nor off the board).
func (p Piece) IsPiece() bool {
	return p.Kind > Empty && p.Kind < Off
}

// IsEnemyOf reports whether p is a piece of the colour opposing c.
func (p Piece) IsEnemyOf(c Colour) bool {
	return p.IsPiece() && p.Colour != c
}

// IsFriendOf reports whether p is a piece of colour c.
func (p Piece) IsFriendOf(c Colour) bool {
	return p.IsPiece() && p.Colour == c
}

// Value returns the numeric cell encoding: 0 for empty, 1..6 for White
// pawn, rook, knight, bishop, queen, king and 7..12 for Black.
// Border squares return -1.
func (p Piece) Value() int {
	switch {
	case p.Kind == Empty:
		return 0
	case p.Kind == Off:
		return -1
	case p.Colour == Black:
		return int(p.Kind) + 6
	default:
		return int(p.Kind)
	}
}

// PieceFromValue converts the numeric cell encoding back to a piece.
func PieceFromValue(v int) (Piece, bool) {
	switch {
	case v == 0:
		return NoPiece, true
	case v >= 1 && v <= 6:
		return W(Kind(v)), true
	case v >= 7 && v <= 12:
		return B(Kind(v - 6)), true
	}
	return NoPiece, false
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	if !p.IsPiece() {
		return ' '
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter |= 0x20
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if !p.IsPiece() {
		return p.Kind.String()
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	Border    = 1 // Padding on each side of the grid
	GridSize  = Border + BoardSize + Border

	FirstRank = 1
	LastRank  = BoardSize
	FirstFile = 1
	LastFile  = BoardSize
)

// Wing identifies a castling side.
type Wing int

const (
	Queenside Wing = iota
	Kingside
)

// String returns the castling notation for the wing.
func (w Wing) String() string {
	if w == Kingside {
		return "O-O"
	}
	return "O-O-O"
}

// RookFile returns the file of the wing's corner rook.
func (w Wing) RookFile() int {
	if w == Kingside {
		return LastFile
	}
	return FirstFile
}

// KingTargetFile returns the file the king lands on when castling.
func (w Wing) KingTargetFile() int {
	if w == Kingside {
		return 7
	}
	return 3
}

// RookTargetFile returns the file the rook lands on when castling.
func (w Wing) RookTargetFile() int {
	if w == Kingside {
		return 6
	}
	return 4
}

// flagColumn is the special-state column holding the wing's castling flag.
func (w Wing) flagColumn() int {
	if w == Kingside {
		return GridSize - 1
	}
	return 0
}

// KingStartFile is the file both kings start on.
const KingStartFile = 5

// Wings lists both castling sides.
var Wings = []Wing{Kingside, Queenside}
