// chess-rules replays chess moves in coordinate notation, checks their
// legality and reports the resulting position.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
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
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOutput := setupOutputFile(cfg)
	defer closeOutput()

	if cfg.Server.Enabled() {
		if err := serve(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
			closeOutput()
			closeLog()
			os.Exit(1)
		}
		return
	}

	moves, err := collectMoves(flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, moves); err != nil {
		fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
		closeOutput()
		closeLog()
		os.Exit(1)
	}
}

// collectMoves returns the command-line moves, or the moves on stdin when
// there are none and -stdin is set.
func collectMoves(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 || !*readStdin {
		return args, nil
	}
	return readMoves(stdin)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) func() {
	if cfg.LogFilename == "" {
		return func() {}
	}
	file, err := os.Create(cfg.LogFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() { file.Close() }
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) func() {
	if cfg.OutputFilename == "" {
		return func() {}
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return func() { file.Close() }
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [move ...]\n")
	fmt.Fprintf(os.Stderr, "       chess-rules -serve :8080 [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays moves in coordinate notation (e2e4, e7e8q) and prints the position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text   Board diagram with FEN and status (default)\n")
	fmt.Fprintf(os.Stderr, "  json   JSON document\n")
	fmt.Fprintf(os.Stderr, "  fen    FEN string only\n")
	fmt.Fprintf(os.Stderr, "  svg    SVG board image\n")
}
