package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// profileMode selects what a move profile describes.
type profileMode uint8

const (
	// modeMoves is the full pseudo-legal profile: pawn pushes, en passant,
	// castling hops and the rule that kings never stand side by side.
	modeMoves profileMode = iota
	// modeAttacks marks only the squares a piece attacks. It never looks at
	// castling, so check detection cannot recurse into itself.
	modeAttacks
)

// Profile returns the move profile of the piece on sq: every square it can
// reach, marked quiet, capture or special (en passant or castling hop).
// The profile is pseudo-legal; it does not test whether the move leaves the
// mover's king in check. An empty square yields an empty matrix.
func (r *Rules) Profile(pos *chess.Position, sq chess.Square) (chess.Matrix, error) {
	if err := chess.CheckSquares(sq); err != nil {
		return chess.Matrix{}, fmt.Errorf("profile: %w", err)
	}
	return r.profile(pos, sq, modeMoves), nil
}

// profile computes (or fetches from the cache) the profile of the piece on sq.
func (r *Rules) profile(pos *chess.Position, sq chess.Square, mode profileMode) chess.Matrix {
	if r.cache == nil {
		return r.computeProfile(pos, sq, mode)
	}
	key := hashing.ProfileKey{
		Hash:   hashing.GenerateZobristHash(pos),
		Square: sq,
		Mode:   uint8(mode),
	}
	if m, ok := r.cache.Get(key); ok {
		return m
	}
	m := r.computeProfile(pos, sq, mode)
	r.cache.Put(key, m)
	return m
}

// computeProfile dispatches on the kind of the piece on sq.
func (r *Rules) computeProfile(pos *chess.Position, sq chess.Square, mode profileMode) chess.Matrix {
	var m chess.Matrix
	piece := pos.Get(sq)
	if !piece.IsPiece() {
		return m
	}

	switch piece.Kind {
	case chess.Pawn:
		if mode == modeAttacks {
			pawnAttacks(pos, sq, piece.Colour, &m)
		} else {
			navigatePawn(pos, sq, piece.Colour, &m)
		}
	case chess.Rook:
		navigateRays(pos, sq, piece.Colour, straightDirs, &m)
	case chess.Knight:
		navigateSteps(pos, sq, piece.Colour, knightJumps, &m)
	case chess.Bishop:
		navigateRays(pos, sq, piece.Colour, diagonalDirs, &m)
	case chess.Queen:
		navigateRays(pos, sq, piece.Colour, queenDirs, &m)
	case chess.King:
		navigateSteps(pos, sq, piece.Colour, queenDirs, &m)
		if mode == modeMoves {
			excludeEnemyKingZone(pos, piece.Colour, &m)
			r.navigateCastling(pos, sq, piece.Colour, &m)
		}
	}
	return m
}

// markTarget classifies a single target square. It returns false when the
// square is off the board or holds a friendly piece.
func markTarget(pos *chess.Position, target chess.Square, colour chess.Colour, m *chess.Matrix) bool {
	piece := pos.Get(target)
	switch {
	case piece.Kind == chess.Off:
		return false
	case piece.IsEmpty():
		m.Set(target, chess.MarkQuiet)
	case piece.IsEnemyOf(colour):
		m.Set(target, chess.MarkCapture)
	default:
		return false
	}
	return true
}

// navigateRays ray-casts in each direction, stopping at the first occupied
// square, which is marked as a capture if it holds an enemy piece.
func navigateRays(pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int, m *chess.Matrix) {
	for _, dir := range dirs {
		sq := from.Offset(dir[0], dir[1])
		for markTarget(pos, sq, colour, m) {
			if m.At(sq) == chess.MarkCapture {
				break // Blocked
			}
			sq = sq.Offset(dir[0], dir[1])
		}
	}
}

// navigateSteps marks each fixed offset independently.
func navigateSteps(pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int, m *chess.Matrix) {
	for _, off := range offsets {
		markTarget(pos, from.Offset(off[0], off[1]), colour, m)
	}
}

// excludeEnemyKingZone unmarks every square next to the enemy king.
func excludeEnemyKingZone(pos *chess.Position, colour chess.Colour, m *chess.Matrix) {
	enemyKing, ok := pos.KingSquare(colour.Opposite())
	if !ok {
		return
	}
	for _, target := range m.Targets() {
		if isAdjacent(target, enemyKing) {
			m.Set(target, chess.MarkNone)
		}
	}
}
