package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove plays a move for the side to move and returns the resulting
// position. The input position is not modified.
//
// Besides moving the piece, the transition removes a pawn taken en passant,
// moves the rook of a castling hop, promotes a pawn reaching the last rank,
// records a double-step for en passant, revokes castling rights when a king
// or corner rook moves or a corner rook is captured, and passes the turn.
func (r *Rules) ApplyMove(pos *chess.Position, move chess.Move) (*chess.Position, error) {
	if err := chess.CheckSquares(move.From, move.To); err != nil {
		return nil, fmt.Errorf("apply %s: %w", move, err)
	}

	colour := pos.ToMove
	piece := pos.Get(move.From)
	switch {
	case !piece.IsPiece():
		return nil, errors.NewIllegalMove(move.String(), errors.ReasonNoPiece)
	case piece.Colour != colour:
		return nil, errors.NewIllegalMove(move.String(), errors.ReasonWrongSide)
	}

	m := r.profile(pos, move.From, modeMoves)
	mark := m.At(move.To)
	if mark == chess.MarkNone {
		return nil, errors.NewIllegalMove(move.String(), r.unreachableReason(pos, piece, move))
	}
	if r.exposesKing(pos, colour, move, mark) {
		return nil, errors.NewIllegalMove(move.String(), errors.ReasonExposesKing)
	}
	if err := checkPromotion(piece, move); err != nil {
		return nil, err
	}

	return transition(pos, move, mark), nil
}

// unreachableReason explains why move.To is missing from the piece's profile.
func (r *Rules) unreachableReason(pos *chess.Position, piece chess.Piece, move chess.Move) errors.Reason {
	if piece.Kind == chess.King && abs(move.To.File-move.From.File) == 2 {
		if w, ok := castlingWing(piece.Colour, move.From, move.To); ok {
			if reason := r.castlingReason(pos, piece.Colour, w); reason != castlingOK {
				return reason
			}
		}
	}
	return errors.ReasonBlocked
}

// checkPromotion validates the promotion kind against the move.
func checkPromotion(piece chess.Piece, move chess.Move) error {
	promotes := piece.Kind == chess.Pawn && move.To.Rank == piece.Colour.PromotionRank()
	switch {
	case promotes && move.Promotion == chess.Empty:
		return fmt.Errorf("apply %s: %w", move, errors.ErrMissingPromotion)
	case promotes && !move.Promotion.IsPromotion():
		return fmt.Errorf("apply %s: %w", move, errors.ErrInvalidPromotion)
	case !promotes && move.Promotion != chess.Empty:
		return fmt.Errorf("apply %s: %w", move, errors.ErrInvalidPromotion)
	}
	return nil
}

// transition builds the position after a move that is already known to be
// legal. mark is the move's profile mark.
func transition(pos *chess.Position, move chess.Move, mark chess.Mark) *chess.Position {
	next := pos.Copy()
	piece := pos.Get(move.From)
	captured := pos.Get(move.To)
	colour := piece.Colour
	opponent := colour.Opposite()

	relocate(next, move, mark)

	switch piece.Kind {
	case chess.Pawn:
		if isDoubleStep(move.From, move.To) {
			next.ClearEnPassant(colour)
			next.SetEnPassant(colour, move.From.File)
		}
		if move.To.Rank == colour.PromotionRank() {
			next.Set(move.To, chess.MakePiece(colour, move.Promotion))
		}
	case chess.King:
		next.ForbidCastling(colour, chess.Kingside)
		next.ForbidCastling(colour, chess.Queenside)
	case chess.Rook:
		updateCastlingRightsForRook(next, colour, move.From)
	}

	if captured.Kind == chess.Rook {
		updateCastlingRightsForRook(next, opponent, move.To)
	}

	next.ToMove = opponent
	next.ClearEnPassant(opponent)
	return next
}
