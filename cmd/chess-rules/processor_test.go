package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

func testConfig(format config.OutputFormat) (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithOutputFormat(format).
		WithOutput(out).
		WithLog(log).
		Build()
	return cfg, out, log
}

func TestRun_FoolsMate(t *testing.T) {
	cfg, out, log := testConfig(config.Text)

	if err := run(cfg, []string{"f2f3", "e7e5", "g2g4", "d8h4"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"4 . . . . . . P q\n",
		"White to move: checkmate\n",
		"Moves: f2f3 e7e5 g2g4 d8h4\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(log.String(), "Replayed 4 plies") {
		t.Errorf("log = %q", log.String())
	}
}

func TestRun_IllegalMove(t *testing.T) {
	cfg, out, _ := testConfig(config.Text)

	err := run(cfg, []string{"e2e4", "e7e5", "e1e3"})
	if !stderrors.Is(err, errors.ErrIllegalMove) {
		t.Fatalf("run() error = %v; want ErrIllegalMove", err)
	}
	var ge *errors.GameError
	if !stderrors.As(err, &ge) {
		t.Fatalf("error %T is not a *GameError", err)
	}
	if ge.PlyNum != 3 || ge.MoveText != "e1e3" {
		t.Errorf("GameError ply %d move %q; want ply 3 move e1e3", ge.PlyNum, ge.MoveText)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written after a failed replay, got:\n%s", out.String())
	}
}

func TestRun_WrongTurnAndBadText(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  error
	}{
		{"black first", []string{"e7e5"}, errors.ErrNotYourTurn},
		{"bad text", []string{"Nf3"}, errors.ErrInvalidMoveText},
		{"missing promotion", []string{"b7b8"}, errors.ErrPromotionRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, _ := testConfig(config.Text)
			if tt.name == "missing promotion" {
				cfg.StartFEN = "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"
			}
			if err := run(cfg, tt.moves); !stderrors.Is(err, tt.want) {
				t.Errorf("run() error = %v; want %v", err, tt.want)
			}
		})
	}
}

func TestRun_BadFEN(t *testing.T) {
	cfg, _, _ := testConfig(config.Text)
	cfg.StartFEN = "8/8/8"
	if err := run(cfg, nil); !stderrors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("run() error = %v; want ErrInvalidFEN", err)
	}
}

func TestRun_FENOutput(t *testing.T) {
	cfg, out, _ := testConfig(config.FEN)
	cfg.StartFEN = "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"

	if err := run(cfg, []string{"b7b8q"}); err != nil {
		t.Fatal(err)
	}
	want := "1Q2k3/8/8/8/8/8/8/4K3 b - - 0 1\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_SVGOutput(t *testing.T) {
	cfg, out, _ := testConfig(config.SVG)
	cfg.Perft.Depth = 1

	if err := run(cfg, []string{"e2e4"}); err != nil {
		t.Fatal(err)
	}
	doc := out.String()
	if !strings.HasPrefix(doc, "<?xml") || !strings.Contains(doc, "</svg>") {
		t.Errorf("output is not an SVG document:\n%s", doc)
	}
	if !strings.Contains(doc, "<desc>perft 1: 20 nodes</desc>") {
		t.Errorf("SVG missing perft description:\n%s", doc)
	}
}

func TestRun_JSONWithPerft(t *testing.T) {
	cfg, out, _ := testConfig(config.JSON)
	cfg.Output.ShowMoves = true
	cfg.Perft.Depth = 2
	cfg.Perft.Divide = true
	cfg.Perft.Workers = 2

	if err := run(cfg, []string{"e2e4"}); err != nil {
		t.Fatal(err)
	}

	var doc output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if len(doc.Positions) != 1 || len(doc.Perft) != 1 {
		t.Fatalf("document = %+v", doc)
	}

	pos := doc.Positions[0]
	if pos.ToMove != "black" || len(pos.LegalMoves) != 20 || len(pos.History) != 1 {
		t.Errorf("position = %+v", pos)
	}

	perft := doc.Perft[0]
	if perft.Depth != 2 || len(perft.Divide) != 20 {
		t.Errorf("perft = %+v", perft)
	}
	var sum uint64
	for _, d := range perft.Divide {
		sum += d.Nodes
	}
	if sum != perft.Nodes {
		t.Errorf("divide sum %d != nodes %d", sum, perft.Nodes)
	}
}

func TestRun_TextPerft(t *testing.T) {
	cfg, out, log := testConfig(config.Text)
	cfg.Perft.Depth = 3

	if err := run(cfg, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "perft 3: 8902 nodes") {
		t.Errorf("output missing perft line:\n%s", out.String())
	}
	if !strings.Contains(log.String(), "perft 3: 8902 nodes in") {
		t.Errorf("log = %q", log.String())
	}
}

func TestRun_CachedPerft(t *testing.T) {
	cfg, out, log := testConfig(config.Text)
	cfg.Verbosity = 2
	cfg.Perft.Depth = 3
	cfg.Perft.Divide = true
	cfg.Perft.Workers = 2
	cfg.Perft.Cache = true

	if err := run(cfg, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "perft 3: 8902 nodes") {
		t.Errorf("output missing perft line:\n%s", out.String())
	}
	if !strings.Contains(log.String(), "perft cache: ") {
		t.Errorf("log missing cache summary: %q", log.String())
	}
}

func TestReadMoves(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "e2e4 e7e5\ng1f3", []string{"e2e4", "e7e5", "g1f3"}},
		{"numbered", "1. e2e4 e7e5 2. g1f3 2... b8c6", []string{"e2e4", "e7e5", "g1f3", "b8c6"}},
		{"empty", "  \n\t ", nil},
		{"dots only kept", "... e2e4", []string{"...", "e2e4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readMoves(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readMoves() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readMoves() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectMoves(t *testing.T) {
	stdin := strings.NewReader("d2d4 d7d5")

	got, err := collectMoves([]string{"e2e4"}, stdin)
	if err != nil || len(got) != 1 {
		t.Errorf("collectMoves(args) = %v, %v", got, err)
	}

	got, err = collectMoves(nil, stdin)
	if err != nil || got != nil {
		t.Errorf("collectMoves without -stdin = %v, %v; want nil", got, err)
	}

	defer saveRestoreBool(readStdin, true)()
	got, err = collectMoves(nil, stdin)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"d2d4", "d7d5"}, got); diff != "" {
		t.Errorf("collectMoves(stdin) mismatch (-want +got):\n%s", diff)
	}
}
