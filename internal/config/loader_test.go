package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPacmanEmbeddedDefaults(t *testing.T) {
	// No custom path and no local override: the embedded YAML must match
	// the hardcoded defaults exactly.
	cfg, err := LoadPacman("")
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}

	def := DefaultPacmanConfig()
	if cfg != def {
		t.Errorf("Embedded config %+v differs from defaults %+v", cfg, def)
	}
}

func TestLoadPacmanCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rules.yaml")

	yaml := `
timing:
  start_interval: 0.2
  min_interval: 0.1
  interval_step: 0.02
  power_seconds: 3
  fruit_seconds: 5
scoring:
  pellet: 1
  power_pill: 5
  fruit: 25
  ghost: 50
  extra_life_at: 500
fruit:
  first_trigger: 10
  second_trigger: 20
gameplay:
  lives: 1
  junction_chance: 0.5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}

	if cfg.Timing.StartInterval != 0.2 {
		t.Errorf("StartInterval = %v, expected 0.2", cfg.Timing.StartInterval)
	}
	if cfg.Scoring.Ghost != 50 {
		t.Errorf("Ghost = %d, expected 50", cfg.Scoring.Ghost)
	}
	if cfg.Gameplay.Lives != 1 {
		t.Errorf("Lives = %d, expected 1", cfg.Gameplay.Lives)
	}
}

func TestLoadPacmanMissingCustomPath(t *testing.T) {
	_, err := LoadPacman("/definitely/not/here.yaml")
	if err == nil {
		t.Error("Expected an error for a missing explicit config path")
	}
}

func TestApplyPacmanPreset(t *testing.T) {
	tests := []struct {
		name   string
		preset DifficultyPreset
		check  func(t *testing.T, cfg PacmanConfig)
	}{
		{
			name:   "easy",
			preset: DifficultyEasy,
			check: func(t *testing.T, cfg PacmanConfig) {
				if cfg.Gameplay.Lives != 5 {
					t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
				}
				if cfg.Timing.StartInterval != 0.18 {
					t.Errorf("StartInterval = %v, expected 0.18", cfg.Timing.StartInterval)
				}
			},
		},
		{
			name:   "hard",
			preset: DifficultyHard,
			check: func(t *testing.T, cfg PacmanConfig) {
				if cfg.Gameplay.Lives != 2 {
					t.Errorf("Lives = %d, expected 2", cfg.Gameplay.Lives)
				}
				if cfg.Timing.StartInterval != 0.12 {
					t.Errorf("StartInterval = %v, expected 0.12", cfg.Timing.StartInterval)
				}
			},
		},
		{
			name:   "fixed",
			preset: DifficultyFixed,
			check: func(t *testing.T, cfg PacmanConfig) {
				if cfg.Timing.IntervalStep != 0 {
					t.Errorf("IntervalStep = %v, expected 0", cfg.Timing.IntervalStep)
				}
			},
		},
		{
			name:   "normal leaves defaults",
			preset: DifficultyNormal,
			check: func(t *testing.T, cfg PacmanConfig) {
				if cfg != DefaultPacmanConfig() {
					t.Errorf("Normal preset changed the config: %+v", cfg)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			ApplyPacmanPreset(&cfg, tc.preset)
			tc.check(t, cfg)
		})
	}
}
