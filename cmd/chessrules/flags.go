// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Start from this FEN position (default: initial position)")
	moveList  = flag.String("moves", "", "Comma- or space-separated moves to replay, e.g. 'e2e4,e7e5'")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	showBoard  = flag.Bool("board", false, "Print the final position as a diagram")
	showFEN    = flag.Bool("printfen", false, "Print the FEN of the final position")
	showMoves  = flag.Bool("list", false, "List the legal moves of the side to move")
	noStatus   = flag.Bool("nostatus", false, "Don't print check, checkmate or stalemate")
	noColour   = flag.Bool("nocolor", false, "Disable coloured output")
	jsonOutput = flag.Bool("json", false, "Write the report as JSON")

	// Perft
	perftDepth    = flag.Int("perft", 0, "Count the legal move tree to this depth")
	divide        = flag.Bool("divide", false, "Print the perft count below every root move")
	workers       = flag.Int("workers", 1, "Goroutines used to count root moves")
	cacheCapacity = flag.Int("cache", 0, "Move profile cache capacity (0 = no cache)")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbose = flag.Int("v", 1, "Verbosity: 0 quiet, 1 summary, 2 running commentary")
	quiet   = flag.Bool("s", false, "Silent mode: same as -v 0")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed command line into cfg. Positional arguments
// are appended to the -moves list.
func applyFlags(cfg *config.Config) {
	cfg.FEN = strings.TrimSpace(*fenString)
	cfg.Moves = append(splitMoves(*moveList), flag.Args()...)

	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbose
	if *quiet {
		cfg.Verbosity = 0
	}
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.ShowMoves = *showMoves
	cfg.Output.ShowStatus = !*noStatus
	cfg.Output.Colour = !*noColour
	cfg.Output.JSON = *jsonOutput
}

func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.CacheCapacity = *cacheCapacity
}

// splitMoves splits a move list on commas and whitespace.
func splitMoves(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
