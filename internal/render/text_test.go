package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/cruzec/conways-game-of-life/internal/core"
)

func TestTextLayout(t *testing.T) {
	var g core.Grid
	g.Set(0, 0, true)
	g.Set(core.Rows-1, core.Columns-1, true)

	out := Text(&g)
	if !strings.HasSuffix(out, "*\n") {
		t.Fatalf("last row should end with the live corner and a newline, got %q", out[len(out)-4:])
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != core.Rows {
		t.Fatalf("got %d lines, want %d", len(lines), core.Rows)
	}
	for i, line := range lines {
		if len(line) != core.Columns {
			t.Fatalf("line %d has %d glyphs, want %d", i, len(line), core.Columns)
		}
	}
	if lines[0][0] != '*' || lines[0][1] != ' ' {
		t.Fatalf("first row starts %q, want \"* \"", lines[0][:2])
	}
	if strings.Count(out, "*") != 2 {
		t.Fatalf("got %d live glyphs, want 2", strings.Count(out, "*"))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteTextReportsWriteErrors(t *testing.T) {
	var g core.Grid
	if err := WriteText(failingWriter{}, &g); err == nil {
		t.Fatal("expected write error")
	}
}
