package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/sound"
)

// footerRows is the space under the field reserved for the help line.
const footerRows = 1

// runResult is what the end-of-run dialog shows.
type runResult struct {
	score  int
	frames int
}

// Model is the Bubble Tea model driving runner games.
// Each TickMsg runs exactly one simulation frame; View presents it.
// Ticks stop while the end-of-run dialog is shown.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	runtime    core.RuntimeConfig
	logger     *log.Logger
	sound      sound.Player
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	runStart   time.Time  // clock origin of the current run; zero until its first tick
	ended      *runResult // non-nil while the end-of-run dialog is open
	runs       int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *runner.Game, opts registry.Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sound == nil {
		opts.Sound = sound.Silent{}
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, fieldRows(opts.Runtime.ScreenH)),
		runtime:    opts.Runtime,
		logger:     opts.Logger,
		sound:      opts.Sound,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		runs:       1,
	}
}

func fieldRows(screenH int) int {
	return core.Max(screenH-footerRows, 1)
}

// Init starts the first run.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.logger.Info("run started", "run", m.runs)
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "run", m.runs, "score", m.game.State().Score)
		return m, tea.Quit

	case core.ActionJump:
		// Applied at the start of the next frame
		m.inputFrame.Set(core.ActionJump)

	case core.ActionRestart:
		return m.restart()
	}

	return m, nil
}

// restart closes the dialog, rebuilds the simulation and resumes ticking.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if m.ended == nil {
		return m, nil
	}

	m.ended = nil
	m.runs++
	m.runStart = time.Time{}
	m.inputFrame.Clear()
	m.keys.SetRunning(true)
	m.game.Reset(m.runtime)
	m.logger.Info("run started", "run", m.runs)

	return m, tickCmd(m.runtime.TickRate)
}

// handleResize processes window resize events.
// World coordinates are scaled on every render, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.ended != nil {
		return m, nil
	}
	if m.runStart.IsZero() {
		m.runStart = t
	}

	result := m.game.Step(m.inputFrame, t.Sub(m.runStart))
	m.inputFrame.Clear()

	if result.Jumped {
		m.sound.Jump()
	}

	if result.Ended {
		m.ended = &runResult{
			score:  result.FinalScore,
			frames: m.game.Sim().Frames,
		}
		m.keys.SetRunning(false)
		m.sound.GameOver()
		m.logger.Info("game over",
			"run", m.runs,
			"score", result.FinalScore,
			"frames", m.ended.frames,
		)
		// No further ticks until the player acknowledges
		return m, nil
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.ended != nil {
		drawCenteredMessage(m.screen,
			fmt.Sprintf("Game Over! Your score: %d", m.ended.score),
			"Press Enter to play again",
		)
	}

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, game *runner.Game, opts registry.Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
