package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// ParseFEN creates a position from a FEN string. Only the first four fields
// are used; the move clocks are accepted and ignored.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	p := NewPosition()

	if err := parsePiecePositions(p, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(p, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(p, parts); err != nil {
		return nil, err
	}

	if err := parseEnPassant(p, parts); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(p *Position, placement string) error {
	rank := LastRank
	file := FirstFile

	for _, c := range placement {
		switch {
		case c == '/':
			if file != LastFile+1 {
				return fmt.Errorf("rank %d has %d files: %w", rank, file-1, errors.ErrInvalidFEN)
			}
			rank--
			file = FirstFile
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind := KindFromLetter(byte(c))
			if kind == Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file > LastFile || rank < FirstRank {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := White
			if unicode.IsLower(c) {
				colour = Black
			}

			p.Set(Sq(file, rank), MakePiece(colour, kind))
			file++
		}
		if file > LastFile+1 {
			return fmt.Errorf("rank %d overflows: %w", rank, errors.ErrInvalidFEN)
		}
	}
	if rank != FirstRank || file != LastFile+1 {
		return fmt.Errorf("incomplete piece placement: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		p.ToMove = White
	case "b":
		p.ToMove = Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A wing is
// forbidden unless its letter is present.
func parseCastlingRights(p *Position, parts []string) error {
	for _, c := range []Colour{White, Black} {
		for _, w := range Wings {
			p.ForbidCastling(c, w)
		}
	}

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			p.AllowCastling(White, Kingside)
		case 'Q':
			p.AllowCastling(White, Queenside)
		case 'k':
			p.AllowCastling(Black, Kingside)
		case 'q':
			p.AllowCastling(Black, Queenside)
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// square lies behind a pawn of the side that just moved.
func parseEnPassant(p *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	mover := p.ToMove.Opposite()
	if sq.Rank != mover.PawnRank()+mover.Forward() {
		return fmt.Errorf("en passant square %s on wrong rank: %w", sq, errors.ErrInvalidFEN)
	}
	p.SetEnPassant(mover, sq.File)
	return nil
}

// FEN converts the position to a FEN string. Move clocks are not tracked
// and are always written as "0 1".
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, p)
	sb.WriteByte(' ')
	writeSideToMove(&sb, p)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, p)
	sb.WriteByte(' ')
	writeEnPassant(&sb, p)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, p *Position) {
	for rank := LastRank; rank >= FirstRank; rank-- {
		emptyCount := 0
		for file := FirstFile; file <= LastFile; file++ {
			piece := p.Squares[file][rank]
			if !piece.IsPiece() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, p *Position) {
	if p.ToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
// A right is only written while king and rook still stand on their
// starting squares.
func writeCastlingRights(sb *strings.Builder, p *Position) {
	hasCastling := false
	for _, c := range []Colour{White, Black} {
		for _, w := range Wings {
			if !p.canStillCastle(c, w) {
				continue
			}
			letter := byte('Q')
			if w == Kingside {
				letter = 'K'
			}
			if c == Black {
				letter |= 0x20
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// canStillCastle reports whether the castling flag is clear and the king and
// rook are on their starting squares.
func (p *Position) canStillCastle(c Colour, w Wing) bool {
	home := c.HomeRank()
	return !p.CastlingForbidden(c, w) &&
		p.Get(Sq(KingStartFile, home)) == MakePiece(c, King) &&
		p.Get(Sq(w.RookFile(), home)) == MakePiece(c, Rook)
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, p *Position) {
	mover := p.ToMove.Opposite()
	file := p.EnPassantFile(mover)
	if file == 0 {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(Sq(file, mover.PawnRank()+mover.Forward()).String())
}
