package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 3")
	s.DrawRect(core.NewRect(2, 1, 3, 1), '#', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 3") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "###") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestDrawCenteredMessage(t *testing.T) {
	s := core.NewScreen(40, 11)
	drawCenteredMessage(s, "Game Over!", "Press Enter")

	found := false
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), "Game Over!") {
			found = true
		}
	}
	if !found {
		t.Error("title not drawn")
	}
	if s.Get((40-15)/2, 3) != '┌' {
		t.Errorf("box corner misplaced:\n%s", s.String())
	}
}
