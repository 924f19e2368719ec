package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// run replays moves from the configured start position, then writes the
// resulting position and any requested perft counts.
func run(cfg *config.Config, moves []string) error {
	game, err := newSession(cfg)
	if err != nil {
		return err
	}

	if err := replay(game, moves); err != nil {
		return err
	}
	if cfg.Verbosity > 0 && len(moves) > 0 {
		fmt.Fprintf(cfg.LogFile, "Replayed %d plies, %v to move: %s\n",
			len(moves), game.ToMove(), game.Status())
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WritePosition(game.Board(), game.ToMove()); err != nil {
		return err
	}
	if cfg.Perft.Enabled() {
		if err := w.WritePerft(runPerft(cfg, game)); err != nil {
			return err
		}
	}
	return w.Close()
}

func newSession(cfg *config.Config) (*session.Session, error) {
	if cfg.StartFEN == "" {
		return session.New(cfg), nil
	}
	return session.NewFromFEN(cfg, cfg.StartFEN)
}

// replay plays moves in order and stops at the first one that fails.
func replay(game *session.Session, moves []string) error {
	for _, text := range moves {
		if err := game.PlayText(text); err != nil {
			return err
		}
	}
	return nil
}

// runPerft counts nodes below the session's position.
func runPerft(cfg *config.Config, game *session.Session) output.PerftReport {
	board := game.Board()
	report := output.PerftReport{Depth: cfg.Perft.Depth}

	var cache *hashing.ThreadSafePerftCache
	var nodeCache engine.NodeCache
	if cfg.Perft.Cache {
		cache = hashing.NewThreadSafePerftCache(cfg.Perft.CacheSize)
		nodeCache = cache
	}

	start := time.Now()
	if cfg.Perft.Divide {
		report.Divide, report.Nodes = engine.DivideWithCache(board, game.ToMove(),
			cfg.Perft.Depth, cfg.Perft.Workers, nodeCache)
	} else {
		report.Nodes = engine.PerftWithCache(board, game.ToMove(), cfg.Perft.Depth, nodeCache)
	}
	report.Elapsed = time.Since(start)

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft %d: %d nodes in %v\n",
			report.Depth, report.Nodes, report.Elapsed.Round(time.Millisecond))
	}
	if cache != nil && cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "perft cache: %d positions, %d hits\n", cache.Len(), cache.Hits())
	}
	return report
}

// readMoves reads whitespace-separated moves. Move numbers such as "1." or
// "12..." are skipped so numbered move lists can be pasted in.
func readMoves(r io.Reader) ([]string, error) {
	var moves []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := scanner.Text()
		if isMoveNumber(token) {
			continue
		}
		moves = append(moves, token)
	}
	return moves, errors.Wrap(scanner.Err(), "reading moves")
}

func isMoveNumber(token string) bool {
	digits := strings.TrimRight(token, ".")
	if digits == token || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
