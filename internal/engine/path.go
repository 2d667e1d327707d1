package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction vectors as {file, rank} deltas.
var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {2, -1}, {2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}}
)

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a file, rank or diagonal.
func isPathClear(pos *chess.Position, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := from.Offset(fileDir, rankDir)
	for sq != to {
		if !pos.Get(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(fileDir, rankDir)
	}

	return true
}

// isAdjacent reports whether two distinct squares touch, including diagonally.
func isAdjacent(a, b chess.Square) bool {
	return a != b && abs(a.File-b.File) <= 1 && abs(a.Rank-b.Rank) <= 1
}
