package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// InCheck returns true if the given colour's king is attacked by any enemy
// piece. It panics if colour has no king on the board.
func (r *Rules) InCheck(pos *chess.Position, colour chess.Colour) bool {
	return r.isSquareAttacked(pos, findKing(pos, colour), colour.Opposite())
}

// IsSquareAttacked returns true if any piece of colour by attacks sq.
// A square held by one of by's own pieces counts as attacked when another
// of its pieces defends it.
func (r *Rules) IsSquareAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) (bool, error) {
	if err := chess.CheckSquares(sq); err != nil {
		return false, fmt.Errorf("attacked: %w", err)
	}
	if pos.Get(sq).IsFriendOf(by) {
		pos = pos.Copy()
		pos.Set(sq, chess.MakePiece(by.Opposite(), chess.Pawn))
	}
	return r.isSquareAttacked(pos, sq, by), nil
}

// findKing finds the king of the given colour on the board.
func findKing(pos *chess.Position, colour chess.Colour) chess.Square {
	sq, ok := pos.KingSquare(colour)
	if !ok {
		panic(fmt.Sprintf("engine: no %s king on the board", colour))
	}
	return sq
}

// isSquareAttacked unions the attack profiles of every piece of colour by.
func (r *Rules) isSquareAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) bool {
	for _, from := range pos.PieceSquares(by) {
		m := r.profile(pos, from, modeAttacks)
		if m.At(sq) != chess.MarkNone {
			return true
		}
	}
	return false
}
