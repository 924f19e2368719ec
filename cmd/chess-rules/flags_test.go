package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		json    bool
		want    config.OutputFormat
		wantErr bool
	}{
		{"default text", "text", false, config.Text, false},
		{"fen", "fen", false, config.FEN, false},
		{"json by name", "json", false, config.JSON, false},
		{"-J overrides -W", "fen", true, config.JSON, false},
		{"unknown format", "pgn", false, config.Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(outputFormat, tt.format)()
			defer saveRestoreBool(jsonOutput, tt.json)()

			cfg := config.NewConfig()
			err := applyOutputFlags(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyOutputFlags() error = %v; wantErr %v", err, tt.wantErr)
			}
			if cfg.Output.Format != tt.want {
				t.Errorf("Format = %v; want %v", cfg.Output.Format, tt.want)
			}
		})
	}
}

func TestApplyOutputFlags_Content(t *testing.T) {
	defer saveRestoreBool(showMoves, true)()
	defer saveRestoreBool(noHistory, true)()
	defer saveRestoreBool(noLabels, true)()

	cfg := config.NewConfig()
	if err := applyOutputFlags(cfg); err != nil {
		t.Fatal(err)
	}
	if !cfg.Output.ShowMoves {
		t.Error("ShowMoves = false; want true")
	}
	if cfg.Output.ShowHistory {
		t.Error("ShowHistory = true; want false with -nohistory")
	}
	if cfg.Output.Labels {
		t.Error("Labels = true; want false with -nolabels")
	}
}

func TestApplyPerftFlags(t *testing.T) {
	defer saveRestoreInt(perftDepth, 4)()
	defer saveRestoreBool(divide, true)()
	defer saveRestoreInt(workers, 3)()

	cfg := config.NewConfig()
	applyPerftFlags(cfg)

	if cfg.Perft.Depth != 4 {
		t.Errorf("Depth = %d; want 4", cfg.Perft.Depth)
	}
	if !cfg.Perft.Divide {
		t.Error("Divide = false; want true")
	}
	if cfg.Perft.Workers != 3 {
		t.Errorf("Workers = %d; want 3", cfg.Perft.Workers)
	}
	if cfg.Perft.Cache {
		t.Error("Cache = true; want false without -hash")
	}
}

func TestApplyPerftFlags_Hash(t *testing.T) {
	tests := []struct {
		name      string
		hash      bool
		size      int
		wantCache bool
	}{
		{"no hash", false, 0, false},
		{"hash unlimited", true, 0, true},
		{"hash size implies hash", false, 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(useHash, tt.hash)()
			defer saveRestoreInt(hashSize, tt.size)()

			cfg := config.NewConfig()
			applyPerftFlags(cfg)

			if cfg.Perft.Cache != tt.wantCache {
				t.Errorf("Cache = %v; want %v", cfg.Perft.Cache, tt.wantCache)
			}
			if cfg.Perft.CacheSize != tt.size {
				t.Errorf("CacheSize = %d; want %d", cfg.Perft.CacheSize, tt.size)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w")()
	defer saveRestoreString(outputFile, "out.txt")()
	defer saveRestoreString(logFile, "log.txt")()

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}

	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if cfg.OutputFilename != "out.txt" || cfg.LogFilename != "log.txt" {
		t.Errorf("filenames = %q, %q", cfg.OutputFilename, cfg.LogFilename)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d; want 1", cfg.Verbosity)
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"verbose", false, true, 2},
		{"quiet", true, false, 0},
		{"quiet wins", true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()

			cfg := config.NewConfig()
			if err := applyFlags(cfg); err != nil {
				t.Fatal(err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyServerFlags(t *testing.T) {
	defer saveRestoreString(serveAddr, ":9090")()
	defer saveRestoreInt(maxSessions, 25)()

	cfg := config.NewConfig()
	applyServerFlags(cfg)

	if !cfg.Server.Enabled() || cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q; want :9090", cfg.Server.Addr)
	}
	if cfg.Server.MaxSessions != 25 {
		t.Errorf("MaxSessions = %d; want 25", cfg.Server.MaxSessions)
	}
}
