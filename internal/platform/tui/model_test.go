package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

type countingSound struct {
	jumps, gameOvers int
}

func (s *countingSound) Jump()     { s.jumps++ }
func (s *countingSound) GameOver() { s.gameOvers++ }
func (s *countingSound) Close()    {}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *countingSound) {
	t.Helper()
	snd := &countingSound{}
	opts := registry.Options{
		Config:  config.DefaultRunnerConfig(),
		Runtime: core.DefaultConfig(),
		Sound:   snd,
	}
	m := NewModel(runner.New(opts.Config), opts)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule the first tick")
	}
	return m, snd
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// crash puts an obstacle on the player so the next tick ends the run.
func crash(m Model) {
	m.game.Sim().Obstacles = append(m.game.Sim().Obstacles, runner.Obstacle{X: 55, Y: 340, Width: 30, Height: 30})
}

func TestTickAdvancesAndReschedules(t *testing.T) {
	m, _ := newTestModel(t)

	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(epoch.Add(time.Duration(i)*16*time.Millisecond)))
		if cmd == nil {
			t.Fatalf("tick %d should schedule the next tick", i)
		}
	}
	if m.game.State().Score != 3 {
		t.Errorf("score after 3 ticks = %d", m.game.State().Score)
	}
}

func TestTickUsesRunClock(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, TickMsg(epoch))
	if n := len(m.game.Sim().Obstacles); n != 0 {
		t.Fatalf("first tick of a run must not spawn, got %d obstacles", n)
	}

	m, _ = update(t, m, TickMsg(epoch.Add(1300*time.Millisecond)))
	if n := len(m.game.Sim().Obstacles); n != 1 {
		t.Errorf("expected a spawn 1.3s into the run, got %d obstacles", n)
	}
}

func TestJumpKeyAppliesOnNextTick(t *testing.T) {
	m, snd := newTestModel(t)

	m, _ = update(t, m, keySpace)
	if !m.game.Sim().Player.Grounded {
		t.Fatal("jump should wait for the next frame")
	}

	m, _ = update(t, m, TickMsg(epoch))
	if m.game.Sim().Player.Grounded {
		t.Error("player should be airborne after the tick")
	}
	if snd.jumps != 1 {
		t.Errorf("jump sound played %d times", snd.jumps)
	}

	// Input is consumed; a mid-air press does nothing
	m, _ = update(t, m, keySpace)
	update(t, m, TickMsg(epoch.Add(16*time.Millisecond)))
	if snd.jumps != 1 {
		t.Errorf("mid-air jump played a sound")
	}
}

func TestGameOverStopsTicking(t *testing.T) {
	m, snd := newTestModel(t)
	m, _ = update(t, m, TickMsg(epoch))
	crash(m)

	m, cmd := update(t, m, TickMsg(epoch.Add(16*time.Millisecond)))
	if cmd != nil {
		t.Error("no tick should be scheduled after the run ended")
	}
	if m.ended == nil || m.ended.score != 1 {
		t.Fatalf("expected end-of-run result with score 1, got %+v", m.ended)
	}
	if snd.gameOvers != 1 {
		t.Errorf("game over sound played %d times", snd.gameOvers)
	}

	view := m.View()
	if !strings.Contains(view, "Game Over! Your score: 1") {
		t.Errorf("dialog missing from view:\n%s", view)
	}
	if !strings.Contains(view, "play again") {
		t.Error("help footer should offer a restart")
	}

	// A stray tick does nothing
	score := m.game.State().Score
	m, cmd = update(t, m, TickMsg(epoch.Add(time.Second)))
	if cmd != nil || m.game.State().Score != score {
		t.Error("stale tick changed a finished run")
	}

	// Jump is disabled while the dialog is open
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.inputFrame.Has(core.ActionJump) {
		t.Error("jump should be ignored while the dialog is open")
	}
}

func TestRestartStartsFreshRun(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg(epoch))
	crash(m)
	m, _ = update(t, m, TickMsg(epoch.Add(16*time.Millisecond)))

	m, cmd := update(t, m, keyEnter)
	if cmd == nil {
		t.Fatal("restart should resume ticking")
	}
	if m.ended != nil {
		t.Error("dialog should be closed")
	}
	if s := m.game.State(); s.Score != 0 || s.GameOver {
		t.Errorf("expected fresh state, got %+v", s)
	}
	if m.runs != 2 {
		t.Errorf("runs = %d, expected 2", m.runs)
	}

	// The new run gets its own clock origin
	later := epoch.Add(time.Hour)
	m, _ = update(t, m, TickMsg(later))
	if len(m.game.Sim().Obstacles) != 0 {
		t.Error("first tick after restart must not spawn")
	}
	if !m.runStart.Equal(later) {
		t.Errorf("runStart = %v, expected %v", m.runStart, later)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg(epoch))

	m, cmd := update(t, m, keyEnter)
	if cmd != nil {
		t.Error("enter during a run should not schedule anything")
	}
	if m.game.State().Score != 1 {
		t.Error("enter during a run should not reset it")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, keyQuit)
	if !m.quitting {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty when quitting")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg(epoch))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.game.State().Score != 1 {
		t.Error("resize should not reset the run")
	}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		running bool
		msg     tea.KeyMsg
		want    core.Action
	}{
		{"space jumps", true, keySpace, core.ActionJump},
		{"up jumps", true, tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"enter ignored in run", true, keyEnter, core.ActionNone},
		{"space restarts after run", false, keySpace, core.ActionRestart},
		{"enter restarts after run", false, keyEnter, core.ActionRestart},
		{"q quits in run", true, keyQuit, core.ActionQuit},
		{"ctrl+c quits after run", false, tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"other key", true, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			km.SetRunning(tc.running)
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}
