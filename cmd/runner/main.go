// runner is an endless runner you can play in the terminal or in a window.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner play -f window    - Play in a desktop window
//	runner list              - List available frontends
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Use a custom config YAML
//	--log-file <path>    - Write logs to a file (default: discard)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-runner/internal/platform/tui"
	_ "github.com/vovakirdan/tui-runner/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump over obstacles for as long as you can",
	Long: `Runner is a minimal endless runner. Jump over the obstacles that
scroll in from the right; every frame you survive scores a point.

Available commands:
  play     - Start playing
  list     - Show available frontends
  config   - Print the configuration in use

Examples:
  runner play
  runner play --frontend window --sound
  runner play --config ./my-runner.yaml
  runner config --defaults > ~/.runner/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
