// chessrules replays moves under the rules of chess and reports the
// resulting position, its legal moves and perft counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(runMain())
}

// runMain runs the command and returns its exit code. Files opened for
// -l and -o are closed before it returns.
func runMain() int {
	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOutput := setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		closeOutput()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, cfg)
	if cerr := closeOutput(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [move ...]\n\n")
	flag.PrintDefaults()
}

// setupLogFile configures the log file based on command-line flags and
// returns the function that closes it.
func setupLogFile(cfg *config.Config) func() error {
	if *logFile == "" {
		return noClose
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return file.Close
}

// setupOutputFile configures the output file based on command-line flags
// and returns the function that closes it.
func setupOutputFile(cfg *config.Config) func() error {
	if *outputFile == "" {
		return noClose
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	// Colour codes are only useful on a terminal.
	cfg.Output.Colour = false
	return file.Close
}

func noClose() error { return nil }

// newRules builds the rules evaluator, with a profile cache when configured.
func newRules(cfg *config.Config) *engine.Rules {
	if cfg.Perft.CacheCapacity == 0 {
		return engine.NewRules()
	}
	return engine.NewRules(engine.WithProfileCache(hashing.NewProfileCache(cfg.Perft.CacheCapacity)))
}

// loadPosition returns the configured starting position.
func loadPosition(cfg *config.Config) (*chess.Position, error) {
	if cfg.FEN == "" {
		return chess.NewInitialPosition(), nil
	}
	return chess.ParseFEN(cfg.FEN)
}

// run replays the configured moves and prints the requested reports.
func run(ctx context.Context, cfg *config.Config) error {
	color.NoColor = !cfg.Output.Colour

	pos, err := loadPosition(cfg)
	if err != nil {
		return err
	}
	rules := newRules(cfg)
	game := rules.NewGame(pos)

	for i, text := range cfg.Moves {
		if err := game.PlayUCI(text); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		cfg.Logf(2, "%d. %s", i+1, text)
	}
	cfg.Logf(1, "Replayed %d moves", len(cfg.Moves))

	pos = game.Position()
	report := &output.Report{Position: pos, Status: game.Status()}
	if cfg.Output.ShowMoves {
		report.Moves = rules.PossibleMoves(pos, pos.ToMove)
	}
	if cfg.Perft.Depth > 0 {
		if report.Perft, err = runPerft(ctx, cfg, rules, pos); err != nil {
			return err
		}
	}
	if err := output.NewWriter(cfg.OutputFile, cfg).WriteReport(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cache := rules.Cache(); cache != nil {
		hits, misses := cache.Stats()
		cfg.Logf(1, "Profile cache: %d entries, %d hits, %d misses", cache.Len(), hits, misses)
	}
	return nil
}
