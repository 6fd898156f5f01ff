// Package config provides YAML-based rule configuration loading and
// difficulty management for the pacman arcade.
package config

// PacmanConfig contains all tunable rules for the game.
type PacmanConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Fruit    FruitConfig    `yaml:"fruit"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// TimingConfig defines tick pacing and timed-mode windows, in seconds.
type TimingConfig struct {
	StartInterval float64 `yaml:"start_interval"` // seconds per tick at level 1
	MinInterval   float64 `yaml:"min_interval"`   // floor the interval shrinks toward
	IntervalStep  float64 `yaml:"interval_step"`  // shrink applied on each level advance
	PowerSeconds  float64 `yaml:"power_seconds"`  // frightened window after a power pill
	FruitSeconds  float64 `yaml:"fruit_seconds"`  // how long a spawned fruit stays active
}

// ScoringConfig defines point values and the extra-life threshold.
type ScoringConfig struct {
	Pellet      int `yaml:"pellet"`
	PowerPill   int `yaml:"power_pill"`
	Fruit       int `yaml:"fruit"`
	Ghost       int `yaml:"ghost"`
	ExtraLifeAt int `yaml:"extra_life_at"`
}

// FruitConfig defines the per-level dots-eaten counts that spawn the fruit.
// Each threshold fires at most once per level.
type FruitConfig struct {
	FirstTrigger  int `yaml:"first_trigger"`
	SecondTrigger int `yaml:"second_trigger"`
}

// GameplayConfig defines round-level parameters.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	JunctionChance float64 `yaml:"junction_chance"` // ghost re-pick probability at a junction
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPacmanPreset modifies the config based on a difficulty preset.
// "fixed" keeps the starting speed for every level instead of shrinking
// the tick interval on each advance.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Timing.StartInterval = 0.18
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Timing.StartInterval = 0.12
	case DifficultyFixed:
		cfg.Timing.IntervalStep = 0
	}
}
