package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Well-known positions used across the test suites.
const (
	// KiwipeteFEN exercises castling, en passant, promotions and pins.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	// Position3FEN is the sparse rook and pawn endgame with en passant pins.
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	// Position4FEN has promotions and checks from both sides.
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	// FoolsMateFEN is the position after 1. f3 e5 2. g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	// StalemateFEN has Black to move with no legal move and no check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// MustParseFEN parses a FEN string, calling t.Fatal on failure.
func MustParseFEN(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// MustSquare parses an algebraic square name, calling t.Fatal on failure.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MustSquares parses a list of square names.
func MustSquares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, len(names))
	for i, name := range names {
		squares[i] = MustSquare(t, name)
	}
	return squares
}

// MustMove parses a move in coordinate notation, calling t.Fatal on failure.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return move
}

// MoveStrings converts moves to coordinate notation.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
