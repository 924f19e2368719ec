package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-generator node counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft
	Depth int

	// Divide prints per-root-move counts
	Divide bool

	// Workers is the goroutine count for divide; 0 means GOMAXPROCS
	Workers int

	// Cache enables the transposition cache for node counts
	Cache bool

	// CacheSize limits cached positions; 0 means unlimited
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
// All fields use Go zero values - perft is disabled by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("cache size %d is negative: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth == 0 {
		return fmt.Errorf("divide requires a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
