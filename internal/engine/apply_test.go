package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// play applies a sequence of moves, failing the test on the first error.
func play(t *testing.T, pos *chess.Position, moves ...string) *chess.Position {
	t.Helper()
	for _, text := range moves {
		next, err := ApplyMove(pos, testutil.MustMove(t, text))
		if err != nil {
			t.Fatalf("ApplyMove(%s): %v", text, err)
		}
		pos = next
	}
	return pos
}

func TestApplyMove_DoubleStep(t *testing.T) {
	pos := chess.NewInitialPosition()
	next := play(t, pos, "e2e4")

	if *pos != *chess.NewInitialPosition() {
		t.Fatal("ApplyMove modified its input")
	}
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "e4")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "e2")), chess.NoPiece)
	testutil.AssertEqual(t, next.ToMove, chess.Black)
	testutil.AssertEqual(t, next.EnPassantFile(chess.White), 5)
	testutil.AssertEqual(t, next.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
}

func TestApplyMove_EnPassant(t *testing.T) {
	pos := play(t, chess.NewInitialPosition(), "e2e4", "a7a6", "e4e5", "d7d5")

	m, err := Profile(pos, testutil.MustSquare(t, "e5"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.At(testutil.MustSquare(t, "d6")), chess.MarkSpecial)

	next := play(t, pos, "e5d6")
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "d6")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "d5")), chess.NoPiece)
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "e5")), chess.NoPiece)
}

func TestApplyMove_EnPassantByBlack(t *testing.T) {
	pos := play(t, chess.NewInitialPosition(), "a2a3", "d7d5", "a3a4", "d5d4", "e2e4")
	testutil.AssertEqual(t, pos.EnPassantFile(chess.White), 5)

	next := play(t, pos, "d4e3")
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "e3")), chess.B(chess.Pawn))
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "e4")), chess.NoPiece)
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "d4")), chess.NoPiece)
	testutil.AssertEqual(t, next.ToMove, chess.White)
}

func TestApplyMove_EnPassantExpires(t *testing.T) {
	pos := play(t, chess.NewInitialPosition(), "e2e4", "a7a6", "e4e5", "d7d5", "g1f3", "a6a5")

	testutil.AssertEqual(t, pos.EnPassantFile(chess.Black), 0)
	_, err := ApplyMove(pos, testutil.MustMove(t, "e5d6"))
	assertReason(t, err, chesserrors.ReasonBlocked)
}

func TestApplyMove_Castling(t *testing.T) {
	pos := testutil.MustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	next := play(t, pos, "e1g1")
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "g1")), chess.W(chess.King))
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "f1")), chess.W(chess.Rook))
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "h1")), chess.NoPiece)
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "e1")), chess.NoPiece)
	testutil.AssertTrue(t, next.CastlingForbidden(chess.White, chess.Kingside), "white kingside after castling")
	testutil.AssertTrue(t, next.CastlingForbidden(chess.White, chess.Queenside), "white queenside after castling")
	testutil.AssertFalse(t, next.CastlingForbidden(chess.Black, chess.Queenside), "black queenside untouched")

	next = play(t, next, "e8c8")
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "c8")), chess.B(chess.King))
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "d8")), chess.B(chess.Rook))
	testutil.AssertEqual(t, next.Get(testutil.MustSquare(t, "a8")), chess.NoPiece)
	testutil.AssertEqual(t, next.FEN(), "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 1")
}

func TestApplyMove_CastlingRights(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	tests := []struct {
		name      string
		moves     []string
		forbidden map[chess.Colour][]chess.Wing
	}{
		{"queenside rook moves", []string{"a1a2"}, map[chess.Colour][]chess.Wing{chess.White: {chess.Queenside}}},
		{"kingside rook moves", []string{"h1h5"}, map[chess.Colour][]chess.Wing{chess.White: {chess.Kingside}}},
		{"king steps", []string{"e1e2"}, map[chess.Colour][]chess.Wing{chess.White: {chess.Kingside, chess.Queenside}}},
		{"king steps back", []string{"e1e2", "a8b8", "e2e1"}, map[chess.Colour][]chess.Wing{
			chess.White: {chess.Kingside, chess.Queenside},
			chess.Black: {chess.Queenside},
		}},
		{"corner rook captured", []string{"a1a8"}, map[chess.Colour][]chess.Wing{
			chess.White: {chess.Queenside},
			chess.Black: {chess.Queenside},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := play(t, testutil.MustParseFEN(t, fen), tt.moves...)
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				want := map[chess.Wing]bool{}
				for _, w := range tt.forbidden[colour] {
					want[w] = true
				}
				for _, w := range chess.Wings {
					if got := pos.CastlingForbidden(colour, w); got != want[w] {
						t.Errorf("CastlingForbidden(%v, %v) = %v; want %v", colour, w, got, want[w])
					}
				}
			}
		})
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	pos := testutil.MustParseFEN(t, promotionFEN)

	for _, kind := range chess.PromotionKinds {
		next, err := ApplyMove(pos, chess.Move{From: chess.Sq(5, 7), To: chess.Sq(5, 8), Promotion: kind})
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, next.Get(chess.Sq(5, 8)), chess.W(kind))
		testutil.AssertEqual(t, next.Get(chess.Sq(5, 7)), chess.NoPiece)
	}

	tests := []struct {
		name string
		move chess.Move
		want error
	}{
		{"missing kind", chess.Move{From: chess.Sq(5, 7), To: chess.Sq(5, 8)}, chesserrors.ErrMissingPromotion},
		{"king is not a promotion", chess.Move{From: chess.Sq(5, 7), To: chess.Sq(5, 8), Promotion: chess.King}, chesserrors.ErrInvalidPromotion},
		{"pawn is not a promotion", chess.Move{From: chess.Sq(5, 7), To: chess.Sq(5, 8), Promotion: chess.Pawn}, chesserrors.ErrInvalidPromotion},
		{"promotion on a king move", chess.Move{From: chess.Sq(5, 1), To: chess.Sq(4, 1), Promotion: chess.Queen}, chesserrors.ErrInvalidPromotion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyMove(pos, tt.move)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestApplyMove_Rejections(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want chesserrors.Reason
	}{
		{"empty source", chess.InitialFEN, "e3e4", chesserrors.ReasonNoPiece},
		{"opponent's piece", chess.InitialFEN, "e7e5", chesserrors.ReasonWrongSide},
		{"blocked rook", chess.InitialFEN, "a1a3", chesserrors.ReasonBlocked},
		{"knight shape", chess.InitialFEN, "g1g3", chesserrors.ReasonBlocked},
		{"pinned bishop", pinnedBishopFEN, "e2d3", chesserrors.ReasonExposesKing},
		{"ignores check", testutil.FoolsMateFEN, "a2a3", chesserrors.ReasonExposesKing},
		{"en passant exposes king", enPassantPinFEN, "b5c6", chesserrors.ReasonExposesKing},
		{"castling right lost", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "e1g1", chesserrors.ReasonNoCastlingRights},
		{"castling rook gone", "4k3/8/8/8/8/8/8/R3K3 w KQ - 0 1", "e1g1", chesserrors.ReasonNoCastlingRights},
		{"castling through a piece", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1c1", chesserrors.ReasonBlocked},
		{"castling through attack", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1g1", chesserrors.ReasonAttackedTransit},
		{"castling out of check", "4k3/8/8/8/7b/8/8/R3K2R w KQ - 0 1", "e1c1", chesserrors.ReasonAttackedTransit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, tt.fen)
			before := *pos
			next, err := ApplyMove(pos, testutil.MustMove(t, tt.move))
			if next != nil {
				t.Errorf("ApplyMove(%s) returned a position with an error", tt.move)
			}
			assertReason(t, err, tt.want)
			if *pos != before {
				t.Errorf("rejected move %s modified the position", tt.move)
			}
		})
	}
}

func TestApplyMove_OutOfBounds(t *testing.T) {
	pos := chess.NewInitialPosition()
	_, err := ApplyMove(pos, chess.Move{From: chess.Sq(5, 2), To: chess.Sq(5, 9)})
	testutil.AssertErrorIs(t, err, chesserrors.ErrOutOfBounds)
}

// assertReason checks that err is an IllegalMoveError with the given reason.
func assertReason(t *testing.T, err error, want chesserrors.Reason) {
	t.Helper()
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	var illegal *chesserrors.IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Fatalf("error %v is not an IllegalMoveError", err)
	}
	if illegal.Reason != want {
		t.Errorf("reason = %v; want %v", illegal.Reason, want)
	}
}
