package output

import (
	"io"
	"sort"

	"github.com/fatih/color"
	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// TextWriter writes human readable reports. Colours follow the global
// color.NoColor switch.
type TextWriter struct {
	w   *errWriter
	cfg config.OutputConfig
	p   *message.Printer
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg config.OutputConfig) *TextWriter {
	return &TextWriter{
		w:   &errWriter{w: w},
		cfg: cfg,
		p:   message.NewPrinter(language.English),
	}
}

// WriteReport writes the sections enabled in the output config, followed
// by the move list and perft counts when present. It returns the first
// write error.
func (tw *TextWriter) WriteReport(r *Report) error {
	pos := r.Position
	if tw.cfg.ShowBoard {
		tw.p.Fprint(tw.w, pos.String())
	}
	if tw.cfg.ShowFEN {
		tw.p.Fprintln(tw.w, pos.FEN())
	}
	if tw.cfg.ShowStatus {
		tw.writeStatus(pos.ToMove, r.Status)
	}
	if r.Moves != nil {
		tw.writeMoves(pos, r.Moves)
	}
	if r.Perft != nil {
		tw.writePerft(r.Perft)
	}
	return tw.w.err
}

// writeStatus writes the side to move and the game status.
func (tw *TextWriter) writeStatus(toMove chess.Colour, status engine.GameStatus) {
	var paint func(a ...interface{}) string
	switch status {
	case engine.Check:
		paint = color.New(color.FgYellow, color.Bold).SprintFunc()
	case engine.Checkmate:
		paint = color.New(color.FgRed, color.Bold).SprintFunc()
	case engine.Stalemate:
		paint = color.New(color.FgCyan).SprintFunc()
	default:
		paint = color.New(color.FgGreen).SprintFunc()
	}
	tw.p.Fprintf(tw.w, "%s to move: %s\n", toMove, paint(status))
}

// writeMoves lists the legal moves grouped by origin square.
func (tw *TextWriter) writeMoves(pos *chess.Position, moves map[chess.Square][]chess.Square) {
	origin := color.New(color.Bold).SprintFunc()
	for _, from := range engine.MovablePieces(moves) {
		tw.p.Fprintf(tw.w, "%s %s:", origin(from), pos.Get(from).Kind)
		for _, to := range moves[from] {
			tw.p.Fprintf(tw.w, " %s", to)
		}
		tw.p.Fprintln(tw.w)
	}
}

// writePerft prints the divide lines in move order, then the total with
// thousands separators.
func (tw *TextWriter) writePerft(pr *PerftReport) {
	moves := maps.Keys(pr.Divide)
	sort.Strings(moves)
	for _, m := range moves {
		tw.p.Fprintf(tw.w, "%s: %d\n", m, pr.Divide[m])
	}
	tw.p.Fprintf(tw.w, "d=%d nodes=%d\n", pr.Depth, pr.Nodes)
}
