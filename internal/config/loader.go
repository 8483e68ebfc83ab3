package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// SettingsKey is the key-value entry holding the settings blob.
const SettingsKey = "settings"

// ErrVersionMismatch is returned by DecodeEnvelope for a blob written by a
// different schema version.
var ErrVersionMismatch = errors.New("config: settings version mismatch")

// KV is the small load/save port settings persistence goes through.
// Get reports ok=false for a missing key.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
}

// Envelope is the stored form of Settings.
type Envelope struct {
	Version int      `yaml:"version"`
	Value   Settings `yaml:"value"`
}

// EncodeEnvelope serializes s under the current schema version.
func EncodeEnvelope(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(Envelope{Version: SchemaVersion, Value: s})
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode settings: %w", err)
	}
	return data, nil
}

// DecodeEnvelope parses a stored blob. It fails with ErrVersionMismatch when
// the blob's version is not SchemaVersion.
func DecodeEnvelope(data []byte) (Settings, error) {
	var env Envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return Settings{}, fmt.Errorf("config: cannot parse settings: %w", err)
	}
	if env.Version != SchemaVersion {
		return Settings{}, fmt.Errorf("%w: stored %d, current %d", ErrVersionMismatch, env.Version, SchemaVersion)
	}
	if err := env.Value.Validate(); err != nil {
		return Settings{}, err
	}
	return env.Value, nil
}

// LoadSettings reads the settings blob from kv. A missing, unreadable,
// outdated or invalid blob yields Defaults(); only a storage failure is
// returned as an error, and defaults come with it.
func LoadSettings(kv KV) (Settings, error) {
	if kv == nil {
		return Defaults(), nil
	}

	data, ok, err := kv.Get(SettingsKey)
	if err != nil {
		return Defaults(), fmt.Errorf("config: cannot load settings: %w", err)
	}
	if !ok {
		return Defaults(), nil
	}

	s, err := DecodeEnvelope(data)
	if err != nil {
		if errors.Is(err, ErrVersionMismatch) {
			log.Info("discarding stored settings", "reason", err)
		} else {
			log.Warn("ignoring unusable stored settings", "error", err)
		}
		return Defaults(), nil
	}
	return s, nil
}

// SaveSettings validates s and stores it under the current schema version.
func SaveSettings(kv KV, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := EncodeEnvelope(s)
	if err != nil {
		return err
	}
	if err := kv.Put(SettingsKey, data); err != nil {
		return fmt.Errorf("config: cannot save settings: %w", err)
	}
	return nil
}

// LoadFile reads a plain settings YAML file (no envelope).
// Fields missing from the file keep their default value.
func LoadFile(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// MarshalYAML renders s as a plain settings file.
func MarshalYAML(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}
