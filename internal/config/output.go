package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Colour enables ANSI colours on terminal output
	Colour bool

	// ShowBoard prints the ASCII diagram of the final position
	ShowBoard bool

	// ShowMoves lists the legal moves of the side to move
	ShowMoves bool

	// ShowStatus prints check, checkmate or stalemate
	ShowStatus bool

	// ShowFEN prints the FEN of the final position
	ShowFEN bool

	// JSON writes a single JSON report instead of text
	JSON bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Colour:     true,
		ShowStatus: true,
	}
}
