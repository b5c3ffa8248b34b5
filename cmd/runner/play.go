package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/logging"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/sound"
)

var (
	flagFrontend string
	flagSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run in the chosen frontend.

Controls:
  Space/Up     - Jump
  Enter        - Play again (after game over)
  Q/Esc        - Quit

Examples:
  runner play
  runner play --frontend window
  runner play --sound --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "terminal", "Frontend to play in (see 'runner list')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'runner list' to see available frontends", flagFrontend)
	}

	logger, closeLog, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel})
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "field", cfg.Field)

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	var player sound.Player = sound.Silent{}
	if flagSound {
		spk, sndErr := sound.NewSpeaker()
		if sndErr != nil {
			// Continue without sound - game still works
			logger.Warn("sound disabled", "err", sndErr)
		} else {
			defer spk.Close()
			player = spk
		}
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}
	logger.Info("starting", "frontend", frontend.ID(), "fps", runtime.TickRate)

	return frontend.Run(cmd.Context(), registry.Options{
		Config:  cfg,
		Runtime: runtime,
		Logger:  logger,
		Sound:   player,
	})
}
