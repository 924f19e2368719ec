// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position options
	startFEN  = flag.String("fen", "", "Start from this FEN position (default: initial position)")
	readStdin = flag.Bool("stdin", false, "Read moves from standard input when none are given")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", "text", "Output format: text, json, fen, svg")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showMoves    = flag.Bool("moves", false, "List the legal moves of the side to move")
	noHistory    = flag.Bool("nohistory", false, "Don't list the moves played")
	noLabels     = flag.Bool("nolabels", false, "Don't print file and rank labels around the board")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to depth N")
	divide     = flag.Bool("divide", false, "Print perft counts for each root move")
	workers    = flag.Int("workers", 0, "Goroutines for -divide (0 = GOMAXPROCS)")
	useHash    = flag.Bool("hash", false, "Cache perft subtree counts by position")
	hashSize   = flag.Int("hashsize", 0, "Maximum positions held by -hash (0 = unlimited)")

	// Server options
	serveAddr   = flag.String("serve", "", "Serve games over HTTP on this address, e.g. :8080")
	maxSessions = flag.Int("maxgames", 0, "Maximum live games for -serve (0 = unlimited)")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbose = flag.Bool("v", false, "Log every ply")
	quiet   = flag.Bool("q", false, "Quiet mode (no diagnostics)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.StartFEN = *startFEN
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile

	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyPerftFlags(cfg)
	applyServerFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyOutputFlags configures the output format and content.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	if *jsonOutput {
		format = config.JSON
	}
	cfg.Output.Format = format
	cfg.Output.ShowMoves = *showMoves
	cfg.Output.ShowHistory = !*noHistory
	cfg.Output.Labels = !*noLabels
	return nil
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.Cache = *useHash || *hashSize > 0
	cfg.Perft.CacheSize = *hashSize
}

// applyServerFlags configures the HTTP server.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *serveAddr
	cfg.Server.MaxSessions = *maxSessions
}
