package runner

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	GroundChar   = '═'
)

// Blue player, red obstacles, gray ground.
const (
	PlayerColor   = core.ColorBlue
	ObstacleColor = core.ColorRed
	GroundColor   = core.ColorGray
)

// Game wraps a State with the input and rendering conventions used by
// the frontends.
type Game struct {
	sim     *State
	runtime core.RuntimeConfig
}

// New creates a game for the given config. Call Reset before the first Step.
func New(cfg config.RunnerConfig) *Game {
	return &Game{sim: NewState(cfg)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Endless Runner"
}

// Reset starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim.Reset()
}

// Step applies the frame's input and advances the simulation.
// now is the time since the start of the current run.
func (g *Game) Step(in core.InputFrame, now time.Duration) core.StepResult {
	jumped := in.Has(core.ActionJump) && g.sim.Jump()

	out := g.sim.Advance(now)
	return core.StepResult{
		State:      g.State(),
		Jumped:     jumped,
		Ended:      out.Ended,
		FinalScore: out.Score,
	}
}

// Sim exposes the simulation for presenters that draw in world pixels.
func (g *Game) Sim() *State {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score,
		GameOver: g.sim.GameOver,
	}
}

// Render draws the field into dst, scaling world pixels to cells so the
// whole field always fits the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	v := newViewport(g.sim.Config(), dst.Width(), dst.Height())

	dst.DrawHLine(0, v.groundRow, dst.Width(), GroundChar, GroundColor)

	for _, o := range g.sim.Obstacles {
		dst.DrawRect(v.cells(o.Box()), ObstacleChar, ObstacleColor)
	}
	dst.DrawRect(v.cells(g.sim.Player.Box()), PlayerChar, PlayerColor)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.sim.Score))
}

// viewport maps world pixels onto a grid of cells. Vertical positions are
// anchored to the ground row so grounded boxes sit directly on it.
type viewport struct {
	sx, sy      float64
	groundLevel float64
	groundRow   int
}

func newViewport(cfg config.RunnerConfig, w, h int) viewport {
	sx := float64(w) / cfg.Field.Width
	sy := float64(h) / cfg.Field.Height
	return viewport{
		sx:          sx,
		sy:          sy,
		groundLevel: cfg.GroundLevel(),
		groundRow:   core.Clamp(int(cfg.GroundLevel()*sy), 1, h-1),
	}
}

// cells converts a world box to a cell rectangle at least one cell in size.
func (v viewport) cells(b core.Box) core.Rect {
	w := core.Max(1, int(math.Round(b.W*v.sx)))
	h := core.Max(1, int(math.Round(b.H*v.sy)))
	x := int(math.Floor(b.X * v.sx))

	lift := int(math.Floor((v.groundLevel - b.Bottom()) * v.sy))
	bottom := v.groundRow - 1 - lift
	return core.NewRect(x, bottom-h+1, w, h)
}
