package engine

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// candidate is a legal move together with its profile mark.
type candidate struct {
	move chess.Move
	mark chess.Mark
}

// ValidMoves returns the legal destinations of the piece on from, sorted by
// file then rank. An empty square or a piece of the other colour yields no
// moves and no error.
func (r *Rules) ValidMoves(pos *chess.Position, colour chess.Colour, from chess.Square) ([]chess.Square, error) {
	if err := chess.CheckSquares(from); err != nil {
		return nil, fmt.Errorf("valid moves: %w", err)
	}
	if !pos.Get(from).IsFriendOf(colour) {
		return nil, nil
	}
	var targets []chess.Square
	r.forEachLegal(pos, colour, from, func(c candidate) bool {
		targets = append(targets, c.move.To)
		return true
	})
	return targets, nil
}

// PossibleMoves maps every piece of colour that has at least one legal move
// to its legal destinations.
func (r *Rules) PossibleMoves(pos *chess.Position, colour chess.Colour) map[chess.Square][]chess.Square {
	moves := make(map[chess.Square][]chess.Square)
	for _, from := range pos.PieceSquares(colour) {
		var targets []chess.Square
		r.forEachLegal(pos, colour, from, func(c candidate) bool {
			targets = append(targets, c.move.To)
			return true
		})
		if len(targets) > 0 {
			moves[from] = targets
		}
	}
	return moves
}

// MovablePieces returns the keys of a PossibleMoves result in file then
// rank order.
func MovablePieces(moves map[chess.Square][]chess.Square) []chess.Square {
	squares := maps.Keys(moves)
	chess.SortSquares(squares)
	return squares
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (r *Rules) HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	found := false
	for _, from := range pos.PieceSquares(colour) {
		r.forEachLegal(pos, colour, from, func(candidate) bool {
			found = true
			return false
		})
		if found {
			return true
		}
	}
	return false
}

// LegalMoves lists every legal move of the side to move. A pawn move onto
// the last rank appears once per promotion kind.
func (r *Rules) LegalMoves(pos *chess.Position) []chess.Move {
	cands := r.candidates(pos, pos.ToMove)
	moves := make([]chess.Move, len(cands))
	for i, c := range cands {
		moves[i] = c.move
	}
	return moves
}

// candidates generates the legal moves of colour with their marks.
func (r *Rules) candidates(pos *chess.Position, colour chess.Colour) []candidate {
	var cands []candidate
	for _, from := range pos.PieceSquares(colour) {
		promotes := pos.Get(from).Kind == chess.Pawn
		r.forEachLegal(pos, colour, from, func(c candidate) bool {
			if promotes && c.move.To.Rank == colour.PromotionRank() {
				for _, kind := range chess.PromotionKinds {
					c.move.Promotion = kind
					cands = append(cands, c)
				}
				return true
			}
			cands = append(cands, c)
			return true
		})
	}
	return cands
}

// forEachLegal calls fn for every legal destination of the piece on from,
// in file then rank order, until fn returns false.
func (r *Rules) forEachLegal(pos *chess.Position, colour chess.Colour, from chess.Square, fn func(candidate) bool) {
	m := r.profile(pos, from, modeMoves)
	for _, to := range m.Targets() {
		c := candidate{move: chess.Move{From: from, To: to}, mark: m.At(to)}
		if r.exposesKing(pos, colour, c.move, c.mark) {
			continue
		}
		if !fn(c) {
			return
		}
	}
}
