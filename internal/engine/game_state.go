package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GameStatus classifies a position from the point of view of the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsOver reports whether no further moves can be played.
func (s GameStatus) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (r *Rules) IsCheckmate(pos *chess.Position) bool {
	return r.Status(pos) == Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (r *Rules) IsStalemate(pos *chess.Position) bool {
	return r.Status(pos) == Stalemate
}

// Status classifies the position for the side to move.
func (r *Rules) Status(pos *chess.Position) GameStatus {
	inCheck := r.InCheck(pos, pos.ToMove)
	hasMoves := r.HasLegalMoves(pos, pos.ToMove)

	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Ongoing
	}
}
