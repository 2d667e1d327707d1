package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// IsLegal reports whether colour may move the piece on from to to: the
// target must be in the piece's move profile and the move must not leave
// colour's own king attacked. An empty from square, or one holding the
// other side's piece, is simply not legal. Squares off the board return
// ErrOutOfBounds.
func (r *Rules) IsLegal(pos *chess.Position, colour chess.Colour, from, to chess.Square) (bool, error) {
	if err := chess.CheckSquares(from, to); err != nil {
		return false, fmt.Errorf("legality: %w", err)
	}
	if !pos.Get(from).IsFriendOf(colour) {
		return false, nil
	}
	m := r.profile(pos, from, modeMoves)
	mark := m.At(to)
	if mark == chess.MarkNone {
		return false, nil
	}
	return !r.exposesKing(pos, colour, chess.Move{From: from, To: to}, mark), nil
}

// exposesKing simulates the move on a copy and reports whether colour's
// king is attacked afterwards.
func (r *Rules) exposesKing(pos *chess.Position, colour chess.Colour, move chess.Move, mark chess.Mark) bool {
	sim := pos.Copy()
	relocate(sim, move, mark)
	return r.InCheck(sim, colour)
}

// relocate performs the piece movement of a move in place: the moving
// piece, the pawn taken en passant and the rook of a castling hop.
// It does not touch the special state or the side to move.
func relocate(pos *chess.Position, move chess.Move, mark chess.Mark) {
	piece := pos.Get(move.From)
	pos.Set(move.From, chess.NoPiece)
	pos.Set(move.To, piece)

	if mark != chess.MarkSpecial {
		return
	}
	switch piece.Kind {
	case chess.Pawn:
		pos.Set(passedPawnSquare(move.From, move.To), chess.NoPiece)
	case chess.King:
		if w, ok := castlingWing(piece.Colour, move.From, move.To); ok {
			relocateCastlingRook(pos, piece.Colour, w)
		}
	}
}
