package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// navigatePawn marks the pushes, diagonal captures and en passant capture
// of the pawn on from.
func navigatePawn(pos *chess.Position, from chess.Square, colour chess.Colour, m *chess.Matrix) {
	forward := colour.Forward()

	// Single and double push
	one := from.Offset(0, forward)
	if pos.Get(one).IsEmpty() {
		m.Set(one, chess.MarkQuiet)
		two := one.Offset(0, forward)
		if from.Rank == colour.PawnRank() && pos.Get(two).IsEmpty() {
			m.Set(two, chess.MarkQuiet)
		}
	}

	for _, df := range []int{-1, 1} {
		target := from.Offset(df, forward)
		if pos.Get(target).IsEnemyOf(colour) {
			m.Set(target, chess.MarkCapture)
			continue
		}
		if canCaptureEnPassant(pos, from, target, colour) {
			m.Set(target, chess.MarkSpecial)
		}
	}
}

// pawnAttacks marks both forward diagonals unless they hold a friendly piece.
func pawnAttacks(pos *chess.Position, from chess.Square, colour chess.Colour, m *chess.Matrix) {
	for _, df := range []int{-1, 1} {
		markTarget(pos, from.Offset(df, colour.Forward()), colour, m)
	}
}

// canCaptureEnPassant reports whether the pawn on from may capture en
// passant onto target. The opponent must have double-stepped a pawn on the
// target file during the previous ply, leaving it alongside from.
func canCaptureEnPassant(pos *chess.Position, from, target chess.Square, colour chess.Colour) bool {
	if from.Rank != colour.EnPassantRank() || !target.Valid() {
		return false
	}
	opponent := colour.Opposite()
	if pos.EnPassantFile(opponent) != target.File || !pos.Get(target).IsEmpty() {
		return false
	}
	return pos.Get(passedPawnSquare(from, target)) == chess.MakePiece(opponent, chess.Pawn)
}

// passedPawnSquare is where the pawn captured en passant stands: on the
// target file, level with the capturing pawn.
func passedPawnSquare(from, to chess.Square) chess.Square {
	return chess.Sq(to.File, from.Rank)
}

// isDoubleStep reports whether a pawn move from -> to is the two-square push.
func isDoubleStep(from, to chess.Square) bool {
	return from.File == to.File && abs(to.Rank-from.Rank) == 2
}
