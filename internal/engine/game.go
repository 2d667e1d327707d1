package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game replays a sequence of moves from a starting position.
type Game struct {
	rules     *Rules
	positions []*chess.Position // positions[i] is the position before history[i]
	history   []chess.Move
}

// NewGame starts a game from pos, or from the initial position when pos is nil.
func NewGame(pos *chess.Position) *Game {
	return defaultRules.NewGame(pos)
}

// NewGame starts a game evaluated with these rules.
func (r *Rules) NewGame(pos *chess.Position) *Game {
	if pos == nil {
		pos = chess.NewInitialPosition()
	}
	return &Game{
		rules:     r,
		positions: []*chess.Position{pos.Copy()},
	}
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.current().Copy()
}

func (g *Game) current() *chess.Position {
	return g.positions[len(g.positions)-1]
}

// History returns the moves played so far.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// Status classifies the current position.
func (g *Game) Status() GameStatus {
	return g.rules.Status(g.current())
}

// Play applies a move for the side to move. Once the game has ended in
// checkmate or stalemate every move is refused with ErrGameOver.
func (g *Game) Play(move chess.Move) error {
	if status := g.Status(); status.IsOver() {
		return fmt.Errorf("play %s after %s: %w", move, status, errors.ErrGameOver)
	}
	next, err := g.rules.ApplyMove(g.current(), move)
	if err != nil {
		return err
	}
	g.positions = append(g.positions, next)
	g.history = append(g.history, move)
	return nil
}

// PlayUCI parses and plays a move in coordinate notation such as "e2e4".
func (g *Game) PlayUCI(text string) error {
	move, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	return g.Play(move)
}

// PlayAll plays each move in order, stopping at the first error.
func (g *Game) PlayAll(moves ...string) error {
	for i, text := range moves {
		if err := g.PlayUCI(text); err != nil {
			return errors.Wrapf(err, "move %d", i+1)
		}
	}
	return nil
}

// Undo takes back the last move. It returns false if no move has been played.
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	g.positions = g.positions[:len(g.positions)-1]
	g.history = g.history[:len(g.history)-1]
	return true
}
