package output

import (
	"encoding/json"
	"io"
	"strings"
)

// JSONReport represents a report in JSON format.
type JSONReport struct {
	FEN    string              `json:"fen"`
	ToMove string              `json:"toMove"` // "white" or "black"
	Status string              `json:"status"`
	Moves  map[string][]string `json:"moves,omitempty"`
	Perft  *JSONPerft          `json:"perft,omitempty"`
}

// JSONPerft represents perft counts in JSON format.
type JSONPerft struct {
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
}

// JSONWriter writes each report as one indented JSON object.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport encodes r.
func (jw *JSONWriter) WriteReport(r *Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r))
}

// ReportToJSON converts a report to its JSON form. Squares are written in
// algebraic notation.
func ReportToJSON(r *Report) *JSONReport {
	jr := &JSONReport{
		FEN:    r.Position.FEN(),
		ToMove: strings.ToLower(r.Position.ToMove.String()),
		Status: r.Status.String(),
	}
	if r.Moves != nil {
		jr.Moves = make(map[string][]string, len(r.Moves))
		for from, targets := range r.Moves {
			names := make([]string, len(targets))
			for i, to := range targets {
				names[i] = to.String()
			}
			jr.Moves[from.String()] = names
		}
	}
	if r.Perft != nil {
		jr.Perft = &JSONPerft{
			Depth:  r.Perft.Depth,
			Nodes:  r.Perft.Nodes,
			Divide: r.Perft.Divide,
		}
	}
	return jr
}
