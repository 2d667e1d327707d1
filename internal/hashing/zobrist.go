// Package hashing provides Zobrist hashing of chess positions and a
// concurrency-safe cache of move profiles keyed by position hash.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	pieceKeys   [2][chess.King + 1][chess.GridSize][chess.GridSize]uint64
	specialKeys [2][chess.GridSize]uint64
	blackToMove uint64
)

func init() {
	r := newPseudoRand(zobristSeed)
	for c := range pieceKeys {
		for k := chess.Pawn; k <= chess.King; k++ {
			for file := chess.FirstFile; file <= chess.LastFile; file++ {
				for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
					pieceKeys[c][k][file][rank] = r.Uint64()
				}
			}
		}
	}
	for c := range specialKeys {
		for col := range specialKeys[c] {
			specialKeys[c][col] = r.Uint64()
		}
	}
	blackToMove = r.Uint64()
}

// GenerateZobristHash computes the Zobrist hash of a position. The hash
// covers the pieces, the side to move and the whole special-state table, so
// two positions with the same pieces but different en passant or castling
// state hash differently.
func GenerateZobristHash(p *chess.Position) uint64 {
	var hash uint64
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
			piece := p.Squares[file][rank]
			if piece.IsPiece() {
				hash ^= pieceKeys[piece.Colour][piece.Kind][file][rank]
			}
		}
	}
	for c := range p.Special {
		for col, v := range p.Special[c] {
			if v != 0 {
				hash ^= specialKeys[c][col]
			}
		}
	}
	if p.ToMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// pseudoRand is a xorshift64* generator used to fill the key tables.
type pseudoRand struct {
	s uint64
}

func newPseudoRand(seed uint64) *pseudoRand {
	return &pseudoRand{s: seed}
}

func (r *pseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
