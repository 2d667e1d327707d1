package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// runPerft counts the move tree below pos across the configured workers.
func runPerft(ctx context.Context, cfg *config.Config, rules *engine.Rules, pos *chess.Position) (*output.PerftReport, error) {
	depth := cfg.Perft.Depth
	cfg.Logf(1, "perft(%d) with %d workers", depth, cfg.Perft.Workers)

	start := time.Now()
	divide, err := rules.ParallelPerftDivide(ctx, pos, depth, cfg.Perft.Workers)
	if err != nil {
		return nil, fmt.Errorf("perft(%d): %w", depth, err)
	}
	elapsed := time.Since(start)

	report := &output.PerftReport{Depth: depth}
	for _, n := range divide {
		report.Nodes += n
	}
	if cfg.Perft.Divide {
		report.Divide = divide
	}

	if secs := elapsed.Seconds(); secs > 0 {
		cfg.Logf(1, "rate=%dn/s (%.3fs elapsed)", int(float64(report.Nodes)/secs), secs)
	}
	return report, nil
}
