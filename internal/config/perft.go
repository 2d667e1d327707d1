package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted on the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth of the count; 0 disables perft
	Depth int

	// Divide prints the count below every root move
	Divide bool

	// Workers is the number of goroutines counting root moves
	Workers int

	// CacheCapacity bounds the move profile cache; 0 disables caching
	CacheCapacity int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: 1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheCapacity < 0 {
		return fmt.Errorf("cache capacity (%d) must not be negative: %w", p.CacheCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
