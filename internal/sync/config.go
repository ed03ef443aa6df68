// ABOUTME: GitHub sync configuration persisted in the note store.
// ABOUTME: One JSON record under a fixed config key; cleared on disconnect.

package sync

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samk106/SimpleNotesMD/internal/store"
)

// configName is the fixed config record the sync settings live under.
const configName = "github"

// Config holds the remote connection state. Exactly one instance exists per
// store; it is created on connect and erased entirely on disconnect.
type Config struct {
	Connected bool   `json:"connected"`
	Token     string `json:"token"`
	Username  string `json:"username"`
	Repo      string `json:"repo"`
	AutoSync  bool   `json:"autoSync"`
}

// ConfigManager loads and persists the sync config against the store.
type ConfigManager struct {
	store *store.Store
}

func NewConfigManager(s *store.Store) *ConfigManager {
	return &ConfigManager{store: s}
}

// Load returns the persisted config, or a zero-value (disconnected) config
// when none has been saved yet.
func (m *ConfigManager) Load() (*Config, error) {
	raw, err := m.store.LoadConfig(configName)
	if errors.Is(err, store.ErrConfigNotFound) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode sync config: %w", err)
	}
	return cfg, nil
}

// Save overwrites the persisted config.
func (m *ConfigManager) Save(cfg *Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode sync config: %w", err)
	}
	return m.store.SaveConfig(configName, raw)
}

// Clear erases the persisted config entirely.
func (m *ConfigManager) Clear() error {
	return m.store.DeleteConfig(configName)
}
