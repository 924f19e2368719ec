package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithShowMoves controls whether legal moves are listed.
func (b *ConfigBuilder) WithShowMoves(show bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = show
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithPerft sets the perft depth.
func (b *ConfigBuilder) WithPerft(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithCache enables the perft cache holding at most size positions
// (0 = unlimited).
func (b *ConfigBuilder) WithCache(size int) *ConfigBuilder {
	b.cfg.Perft.Cache = true
	b.cfg.Perft.CacheSize = size
	return b
}

// WithDivide enables per-move perft counts using the given worker count.
func (b *ConfigBuilder) WithDivide(workers int) *ConfigBuilder {
	b.cfg.Perft.Divide = true
	b.cfg.Perft.Workers = workers
	return b
}

// WithServer enables the HTTP server on addr with a session limit
// (0 = unlimited).
func (b *ConfigBuilder) WithServer(addr string, maxSessions int) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	b.cfg.Server.MaxSessions = maxSessions
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
