// Package config provides the game settings record, its YAML codec and the
// versioned blob stored between runs.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// SchemaVersion is the version written with every stored settings blob.
// A blob carrying any other version is discarded, never migrated.
const SchemaVersion = 1

// Settings holds the timings and key bindings of the game.
type Settings struct {
	FirstGapMS int `yaml:"first_gap_ms"` // Silent delay before the first signal of a pattern
	GapMS      int `yaml:"gap_ms"`       // Silent delay before every later signal
	ShowMS     int `yaml:"show_ms"`      // How long a signal is shown

	GreenKey    string `yaml:"green_key"`
	RedKey      string `yaml:"red_key"`
	YellowKey   string `yaml:"yellow_key"`
	BlueKey     string `yaml:"blue_key"`
	RestartKey  string `yaml:"restart_key"`
	SettingsKey string `yaml:"settings_key"`
}

// FirstGap returns the first-gap duration.
func (s Settings) FirstGap() time.Duration {
	return time.Duration(s.FirstGapMS) * time.Millisecond
}

// Gap returns the gap duration.
func (s Settings) Gap() time.Duration {
	return time.Duration(s.GapMS) * time.Millisecond
}

// Show returns the show duration.
func (s Settings) Show() time.Duration {
	return time.Duration(s.ShowMS) * time.Millisecond
}

// Keys returns the six bindings in a fixed order:
// green, red, yellow, blue, restart, settings.
func (s Settings) Keys() []string {
	return []string{s.GreenKey, s.RedKey, s.YellowKey, s.BlueKey, s.RestartKey, s.SettingsKey}
}

// Validate checks that durations are positive and that every key is set and
// bound to exactly one action.
func (s Settings) Validate() error {
	var errs []error
	if s.FirstGapMS <= 0 {
		errs = append(errs, fmt.Errorf("first_gap_ms must be positive, got %d", s.FirstGapMS))
	}
	if s.GapMS <= 0 {
		errs = append(errs, fmt.Errorf("gap_ms must be positive, got %d", s.GapMS))
	}
	if s.ShowMS <= 0 {
		errs = append(errs, fmt.Errorf("show_ms must be positive, got %d", s.ShowMS))
	}

	seen := make(map[string]bool)
	for _, k := range s.Keys() {
		if k == "" {
			errs = append(errs, errors.New("key bindings must not be empty"))
			continue
		}
		if seen[k] {
			errs = append(errs, fmt.Errorf("key %q is bound more than once", k))
		}
		seen[k] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset scales the timings of a settings record.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset scales the durations of s for the preset. Key bindings are kept.
func ApplyPreset(s *Settings, preset DifficultyPreset) {
	var factor float64
	switch preset {
	case DifficultyEasy:
		factor = 1.5
	case DifficultyHard:
		factor = 0.6
	default:
		return
	}
	s.FirstGapMS = scaleMS(s.FirstGapMS, factor)
	s.GapMS = scaleMS(s.GapMS, factor)
	s.ShowMS = scaleMS(s.ShowMS, factor)
}

func scaleMS(ms int, factor float64) int {
	scaled := int(math.Round(float64(ms) * factor))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}
