// Package config provides configuration for chess-rules.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Grouped settings
	Output OutputConfig
	Perft  PerftConfig
	Server ServerConfig

	// Starting position; empty means the standard initial position
	StartFEN string

	// File handling
	OutputFilename string
	LogFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Perft:      *NewPerftConfig(),
		Server:     *NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer positions and results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
