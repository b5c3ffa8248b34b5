package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       400,
			GroundOffset: 30,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  30,
			Height: 30,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -12,
		},
		Obstacles: ObstaclesConfig{
			Width:           30,
			Height:          30,
			Speed:           5,
			SpawnIntervalMS: 1200,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
