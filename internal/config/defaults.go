package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		FirstGapMS:  1000,
		GapMS:       500,
		ShowMS:      500,
		GreenKey:    "q",
		RedKey:      "w",
		YellowKey:   "a",
		BlueKey:     "s",
		RestartKey:  "r",
		SettingsKey: ",",
	}
}

// Defaults returns the embedded default settings, falling back to
// DefaultSettings if the embedded YAML does not parse or validate.
func Defaults() Settings {
	var s Settings
	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		return DefaultSettings()
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings()
	}
	return s
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
