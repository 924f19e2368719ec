package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxServerPerftDepth bounds perft requests served over HTTP.
const MaxServerPerftDepth = 5

// ServerConfig holds settings for the HTTP game server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"; empty disables the server
	Addr string

	// MaxSessions limits live games (0 = unlimited)
	MaxSessions int
}

// NewServerConfig creates a ServerConfig with default values.
// The server is disabled by default.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{}
}

// Enabled reports whether the server should run.
func (s *ServerConfig) Enabled() bool {
	return s.Addr != ""
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.MaxSessions < 0 {
		return fmt.Errorf("session limit %d is negative: %w", s.MaxSessions, errors.ErrInvalidConfig)
	}
	return nil
}
