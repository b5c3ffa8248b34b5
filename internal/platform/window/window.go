// Package window presents runs in a desktop window using Ebitengine.
// The simulation is the same one the terminal frontend drives; only
// input polling and drawing differ.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/sound"
)

var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerColor     = color.RGBA{R: 40, G: 90, B: 220, A: 255}
	obstacleColor   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	groundColor     = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

var (
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// driver implements ebiten.Game. Ebitengine calls Update at the tick rate,
// and each call runs one simulation frame.
type driver struct {
	ctx     context.Context
	game    *runner.Game
	runtime core.RuntimeConfig
	logger  *log.Logger
	sound   sound.Player
	now     func() time.Time

	runStart time.Time // zero until the run's first frame
	ended    bool
	final    int
	runs     int
}

func newDriver(ctx context.Context, game *runner.Game, opts registry.Options) *driver {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sound == nil {
		opts.Sound = sound.Silent{}
	}
	return &driver{
		ctx:     ctx,
		game:    game,
		runtime: opts.Runtime,
		logger:  opts.Logger,
		sound:   opts.Sound,
		now:     time.Now,
	}
}

// start begins a new run. Its clock starts on the first frame.
func (d *driver) start() {
	d.game.Reset(d.runtime)
	d.runs++
	d.ended = false
	d.final = 0
	d.runStart = time.Time{}
	d.logger.Info("run started", "run", d.runs)
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Update polls input and advances one frame.
func (d *driver) Update() error {
	return d.tick(keyState{
		quit:    anyJustPressed(quitKeys),
		restart: anyJustPressed(restartKeys),
		jump:    anyJustPressed(jumpKeys),
	})
}

// keyState is the input polled for one Update.
type keyState struct {
	quit, restart, jump bool
}

// tick runs one Update worth of logic for already polled keys.
func (d *driver) tick(keys keyState) error {
	if d.ctx.Err() != nil || keys.quit {
		d.logger.Info("quit", "run", d.runs, "score", d.game.State().Score)
		return ebiten.Termination
	}

	if d.ended {
		if keys.restart {
			d.start()
		}
		return nil
	}

	in := core.NewInputFrame()
	if keys.jump {
		in.Set(core.ActionJump)
	}
	d.frame(in)
	return nil
}

// frame runs one step with the given input and reacts to its events.
func (d *driver) frame(in core.InputFrame) {
	now := d.now()
	if d.runStart.IsZero() {
		d.runStart = now
	}

	result := d.game.Step(in, now.Sub(d.runStart))
	if result.Jumped {
		d.sound.Jump()
	}
	if result.Ended {
		d.ended = true
		d.final = result.FinalScore
		d.sound.GameOver()
		d.logger.Info("game over",
			"run", d.runs,
			"score", result.FinalScore,
			"frames", d.game.Sim().Frames,
		)
	}
}

// Draw renders the field in world pixels.
func (d *driver) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	sim := d.game.Sim()
	cfg := sim.Config()
	w, h := float32(cfg.Field.Width), float32(cfg.Field.Height)
	ground := float32(sim.GroundLevel())

	vector.DrawFilledRect(screen, 0, ground, w, h-ground, groundColor, false)

	p := sim.Player
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), playerColor, false)

	for _, o := range sim.Obstacles {
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.Width), float32(o.Height), obstacleColor, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", sim.Score), 10, 10)

	if d.ended {
		vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Game Over! Your score: %d", d.final), int(w)/2-80, int(h)/2-16)
		ebitenutil.DebugPrintAt(screen, "Press Enter to play again", int(w)/2-76, int(h)/2+4)
	}
}

// Layout keeps the logical screen at the field size and lets Ebitengine scale it.
func (d *driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return fieldSize(d.game.Sim().Config())
}

// fieldSize returns the field in whole pixels, rounding fractional sizes up.
func fieldSize(cfg config.RunnerConfig) (int, int) {
	return int(math.Ceil(cfg.Field.Width)), int(math.Ceil(cfg.Field.Height))
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, game *runner.Game, opts registry.Options) error {
	d := newDriver(ctx, game, opts)

	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowSize(fieldSize(game.Sim().Config()))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	d.start()

	err := ebiten.RunGame(d)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
