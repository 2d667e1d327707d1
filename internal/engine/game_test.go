package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestGame_FoolsMate(t *testing.T) {
	g := NewGame(nil)
	testutil.AssertNoError(t, g.PlayAll("f2f3", "e7e5", "g2g4", "d8h4"))

	testutil.AssertEqual(t, g.Status(), Checkmate)
	testutil.AssertEqual(t, testutil.MoveStrings(g.History()), []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, g.Position().FEN(), testutil.MustParseFEN(t, testutil.FoolsMateFEN).FEN())

	err := g.PlayUCI("a2a3")
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameOver)
	testutil.AssertEqual(t, len(g.History()), 4, "history after refused move")
}

func TestGame_Stalemate(t *testing.T) {
	g := NewGame(testutil.MustParseFEN(t, testutil.StalemateFEN))
	testutil.AssertEqual(t, g.Status(), Stalemate)
	testutil.AssertErrorIs(t, g.PlayUCI("h8g8"), chesserrors.ErrGameOver)
}

func TestGame_IllegalMoveLeavesGameUntouched(t *testing.T) {
	g := NewGame(nil)
	testutil.AssertNoError(t, g.PlayUCI("e2e4"))

	err := g.PlayUCI("e4e5")
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertEqual(t, len(g.History()), 1)
	testutil.AssertEqual(t, g.Position().ToMove, chess.Black)
}

func TestGame_PlayAllReportsMoveNumber(t *testing.T) {
	g := NewGame(nil)
	err := g.PlayAll("e2e4", "e7e5", "e1e3")
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	if err == nil || !strings.Contains(err.Error(), "move 3") {
		t.Errorf("error %v does not name move 3", err)
	}
	testutil.AssertEqual(t, len(g.History()), 2)
}

func TestGame_BadNotation(t *testing.T) {
	g := NewGame(nil)
	testutil.AssertErrorIs(t, g.PlayUCI("e2"), chesserrors.ErrInvalidMove)
	testutil.AssertErrorIs(t, g.PlayUCI("e2e9"), chesserrors.ErrOutOfBounds)
}

func TestGame_Undo(t *testing.T) {
	g := NewGame(nil)
	testutil.AssertFalse(t, g.Undo(), "Undo on a new game")

	testutil.AssertNoError(t, g.PlayAll("f2f3", "e7e5", "g2g4", "d8h4"))
	testutil.AssertTrue(t, g.Undo())
	testutil.AssertEqual(t, g.Status(), Ongoing)
	testutil.AssertEqual(t, g.Position().ToMove, chess.Black)
	testutil.AssertNoError(t, g.PlayUCI("b8c6"))
	testutil.AssertEqual(t, len(g.History()), 4)
}

func TestGame_PositionIsACopy(t *testing.T) {
	g := NewGame(nil)
	pos := g.Position()
	pos.Set(chess.Sq(5, 2), chess.NoPiece)

	if g.Position().Get(chess.Sq(5, 2)) != chess.W(chess.Pawn) {
		t.Error("mutating Position() changed the game")
	}
}
