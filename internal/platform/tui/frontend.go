package tui

import (
	"context"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Frontend runs the game in the terminal.
type Frontend struct{}

// ID returns the command-line name of this frontend.
func (Frontend) ID() string {
	return "terminal"
}

// Title returns the display name of this frontend.
func (Frontend) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run plays runs in the current terminal until the player quits.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	return Run(ctx, runner.New(opts.Config), opts)
}

func init() {
	registry.Register("terminal", func() registry.Frontend {
		return Frontend{}
	})
}
