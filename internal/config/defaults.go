package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the built-in rule set: the classic timings and
// point values the game ships with.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Timing: TimingConfig{
			StartInterval: 0.15,
			MinInterval:   0.08,
			IntervalStep:  0.01,
			PowerSeconds:  6,
			FruitSeconds:  10,
		},
		Scoring: ScoringConfig{
			Pellet:      10,
			PowerPill:   50,
			Fruit:       100,
			Ghost:       200,
			ExtraLifeAt: 10000,
		},
		Fruit: FruitConfig{
			FirstTrigger:  70,
			SecondTrigger: 170,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			JunctionChance: 0.3,
		},
	}
}
