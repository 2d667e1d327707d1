package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// navigateCastling marks the king's landing square for every wing on which
// castling is currently possible.
func (r *Rules) navigateCastling(pos *chess.Position, from chess.Square, colour chess.Colour, m *chess.Matrix) {
	if from != kingHome(colour) {
		return
	}
	for _, w := range chess.Wings {
		if r.castlingReason(pos, colour, w) == castlingOK {
			m.Set(chess.Sq(w.KingTargetFile(), from.Rank), chess.MarkSpecial)
		}
	}
}

// castlingOK is returned by castlingReason when nothing prevents castling.
const castlingOK errors.Reason = -1

// castlingReason returns why colour cannot castle on wing w, or castlingOK.
// The king must be on its home square, which the caller checks.
func (r *Rules) castlingReason(pos *chess.Position, colour chess.Colour, w chess.Wing) errors.Reason {
	home := kingHome(colour)
	rookSq := chess.Sq(w.RookFile(), home.Rank)

	if pos.CastlingForbidden(colour, w) || pos.Get(rookSq) != chess.MakePiece(colour, chess.Rook) {
		return errors.ReasonNoCastlingRights
	}
	if !isPathClear(pos, home, rookSq) {
		return errors.ReasonBlocked
	}

	// The king may not castle out of, through or into check.
	opponent := colour.Opposite()
	step := sign(w.KingTargetFile() - home.File)
	for file := home.File; ; file += step {
		sq := chess.Sq(file, home.Rank)
		sim := pos.Copy()
		sim.Set(home, chess.NoPiece)
		sim.Set(sq, chess.MakePiece(colour, chess.King))
		if r.isSquareAttacked(sim, sq, opponent) {
			return errors.ReasonAttackedTransit
		}
		if file == w.KingTargetFile() {
			break
		}
	}
	return castlingOK
}

// kingHome is the square colour's king starts on.
func kingHome(colour chess.Colour) chess.Square {
	return chess.Sq(chess.KingStartFile, colour.HomeRank())
}

// castlingWing returns the wing of a king move from -> to, and whether the
// move is a castling hop at all.
func castlingWing(colour chess.Colour, from, to chess.Square) (chess.Wing, bool) {
	if from != kingHome(colour) || to.Rank != from.Rank {
		return chess.Kingside, false
	}
	for _, w := range chess.Wings {
		if to.File == w.KingTargetFile() {
			return w, true
		}
	}
	return chess.Kingside, false
}

// relocateCastlingRook moves the rook of wing w next to the castled king.
func relocateCastlingRook(pos *chess.Position, colour chess.Colour, w chess.Wing) {
	rank := colour.HomeRank()
	rookFrom := chess.Sq(w.RookFile(), rank)
	rook := pos.Get(rookFrom)
	pos.Set(rookFrom, chess.NoPiece)
	pos.Set(chess.Sq(w.RookTargetFile(), rank), rook)
}

// updateCastlingRightsForRook forbids castling on the wing whose corner
// square is sq, when sq is one of colour's rook corners.
func updateCastlingRightsForRook(pos *chess.Position, colour chess.Colour, sq chess.Square) {
	if sq.Rank != colour.HomeRank() {
		return
	}
	for _, w := range chess.Wings {
		if sq.File == w.RookFile() {
			pos.ForbidCastling(colour, w)
		}
	}
}
