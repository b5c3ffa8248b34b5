// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// RunnerConfig contains all tunable constants of a run.
type RunnerConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// FieldConfig defines the visible play field.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"`
}

// String formats the field size as WIDTHxHEIGHT.
func (f FieldConfig) String() string {
	return fmt.Sprintf("%gx%g", f.Width, f.Height)
}

// PlayerConfig defines the player's fixed column and size.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-frame vertical physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// ObstaclesConfig defines obstacle size, speed and spawn cadence.
type ObstaclesConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// GroundLevel returns the y-coordinate of the ground plane.
func (c RunnerConfig) GroundLevel() float64 {
	return c.Field.Height - c.Field.GroundOffset
}

// SpawnInterval returns the spawn interval as a duration.
func (c RunnerConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Obstacles.SpawnIntervalMS) * time.Millisecond
}

// Validate checks that the config describes a playable field.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size must be positive, got %gx%g", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Field.GroundOffset < 0 || c.Field.GroundOffset >= c.Field.Height:
		return fmt.Errorf("%w: ground_offset %g must be in [0, %g)", ErrInvalid, c.Field.GroundOffset, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.X < 0 || c.Player.X+c.Player.Width > c.Field.Width:
		return fmt.Errorf("%w: player column %g does not fit in field width %g", ErrInvalid, c.Player.X, c.Field.Width)
	case c.Player.Height > c.GroundLevel():
		return fmt.Errorf("%w: player height %g exceeds ground level %g", ErrInvalid, c.Player.Height, c.GroundLevel())
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %g", ErrInvalid, c.Physics.Gravity)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump_impulse must be negative (up), got %g", ErrInvalid, c.Physics.JumpImpulse)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("%w: obstacle size must be positive", ErrInvalid)
	case c.Obstacles.Height > c.GroundLevel():
		return fmt.Errorf("%w: obstacle height %g exceeds ground level %g", ErrInvalid, c.Obstacles.Height, c.GroundLevel())
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("%w: obstacle speed must be positive, got %g", ErrInvalid, c.Obstacles.Speed)
	case c.Obstacles.SpawnIntervalMS <= 0:
		return fmt.Errorf("%w: spawn_interval_ms must be positive, got %d", ErrInvalid, c.Obstacles.SpawnIntervalMS)
	}
	return nil
}
