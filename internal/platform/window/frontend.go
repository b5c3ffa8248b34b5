package window

import (
	"context"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Frontend runs the game in a desktop window.
type Frontend struct{}

// ID returns the command-line name of this frontend.
func (Frontend) ID() string {
	return "window"
}

// Title returns the display name of this frontend.
func (Frontend) Title() string {
	return "Desktop window (Ebitengine)"
}

// Run plays runs in a window until it is closed.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	return Run(ctx, runner.New(opts.Config), opts)
}

func init() {
	registry.Register("window", func() registry.Frontend {
		return Frontend{}
	})
}
