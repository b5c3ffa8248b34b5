// Package runner implements the endless-runner simulation: a player that
// jumps over obstacles scrolling in from the right edge of the field.
//
// State and Advance are pure and frontend-agnostic. All coordinates are
// world pixels with y growing downwards; time is measured from the start
// of the run.
package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the controlled rectangle. X is fixed; Y moves.
type Player struct {
	X, Y          float64
	Width, Height float64
	VelocityY     float64
	Grounded      bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Obstacle is a box resting on the ground that scrolls left every frame.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// State is the whole simulation. It owns the player and the obstacles.
type State struct {
	Player    Player
	Obstacles []Obstacle // spawn order
	Score     int
	GameOver  bool

	// LastSpawn is the run time of the most recent spawn; 0 at the start of a run.
	LastSpawn time.Duration

	// Frames counts calls to Advance that did work.
	Frames int

	cfg config.RunnerConfig
}

// NewState creates the initial state for a run: score 0, no obstacles,
// player grounded on the floor.
func NewState(cfg config.RunnerConfig) *State {
	s := &State{cfg: cfg}
	s.Reset()
	return s
}

// Reset discards the current run and restores the initial state.
func (s *State) Reset() {
	s.Player = Player{
		X:        s.cfg.Player.X,
		Y:        s.floor(),
		Width:    s.cfg.Player.Width,
		Height:   s.cfg.Player.Height,
		Grounded: true,
	}
	s.Obstacles = s.Obstacles[:0]
	s.Score = 0
	s.GameOver = false
	s.LastSpawn = 0
	s.Frames = 0
}

// Config returns the constants this state was built with.
func (s *State) Config() config.RunnerConfig {
	return s.cfg
}

// GroundLevel returns the y-coordinate of the ground plane.
func (s *State) GroundLevel() float64 {
	return s.cfg.GroundLevel()
}

// floor is the player's resting y: ground level minus player height.
func (s *State) floor() float64 {
	return s.cfg.GroundLevel() - s.cfg.Player.Height
}
