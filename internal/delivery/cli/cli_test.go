package cli

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"goban/internal/bootstrap"
)

func newTestHandler(input string) (*Handler, *strings.Builder) {
	out := &strings.Builder{}
	h := NewHandler(
		bootstrap.Config{BoardSize: 9},
		zap.NewNop().Sugar(),
		strings.NewReader(input),
		out,
	)
	return h, out
}

func TestParseCoord(t *testing.T) {
	h, _ := newTestHandler("")

	cases := []struct {
		coord string
		cell  int
		ok    bool
	}{
		{"a9", 0, true},  // top-left
		{"i9", 8, true},  // top-right
		{"a1", 72, true}, // bottom-left
		{"i1", 80, true}, // bottom-right
		{"e5", 40, true}, // center
		{"j5", 0, false}, // column off the board
		{"a0", 0, false},
		{"a10", 0, false},
		{"5e", 0, false},
		{"e", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		cell, ok := h.parseCoord(tc.coord)
		if ok != tc.ok || (ok && cell != tc.cell) {
			t.Errorf("parseCoord(%q) = (%d, %t), want (%d, %t)", tc.coord, cell, ok, tc.cell, tc.ok)
		}
	}
}

func TestFormatCoordRoundTrip(t *testing.T) {
	h, _ := newTestHandler("")
	for _, cell := range []int{0, 8, 40, 72, 80} {
		coord := h.formatCoord(cell, 9)
		back, ok := h.parseCoord(coord)
		if !ok || back != cell {
			t.Errorf("round trip of cell %d via %q gave (%d, %t)", cell, coord, back, ok)
		}
	}
}

func TestRunScriptedSession(t *testing.T) {
	h, out := newTestHandler("play e5\nplay e5\nundo\nredo\nquit\n")

	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "white to move") {
		t.Error("expected board render showing white to move after black's stone")
	}
	if !strings.Contains(output, "illegal move at e5") {
		t.Error("expected second placement on the same point to be rejected")
	}
	if !strings.Contains(output, "redo available: true") {
		t.Error("expected redo to be offered after undo")
	}
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	h, _ := newTestHandler("play a1\n")
	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit on EOF, got %v", err)
	}
}
