// Package output renders the report of a replayed game as text or JSON.
package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Report is everything the CLI knows about the final position.
type Report struct {
	Position *chess.Position
	Status   engine.GameStatus

	// Moves maps each movable piece to its legal destinations.
	// Nil when the move list was not requested.
	Moves map[chess.Square][]chess.Square

	Perft *PerftReport
}

// PerftReport holds the result of a perft run.
type PerftReport struct {
	Depth  int
	Nodes  uint64
	Divide map[string]uint64 // nil unless divide output was requested
}

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different formats (text, JSON).
type ReportWriter interface {
	WriteReport(r *Report) error
}

// NewWriter returns the writer selected by cfg.Output.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output)
}
