package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBackendAddr is the websocket endpoint the native backend host
// listens on when started locally.
const DefaultBackendAddr = "ws://127.0.0.1:47615/rpc"

// DefaultMsClientID is the official Minecraft Launcher OAuth client id.
// Custom Azure app ids commonly fail at login_with_xbox unless approved
// by Mojang, so this is the safe default for consumer accounts.
const DefaultMsClientID = "00000000402b5328"

// Config holds global launcher settings.
type Config struct {
	BackendAddr string `yaml:"backend_addr"`
	MsClientID  string `yaml:"ms_client_id"`
	NotifyURL   string `yaml:"notify_url"` // optional Shoutrrr URL for forwarding notifications
	JoinServer  string `yaml:"join_server"`
}

// Load reads configuration from the given directory, returning defaults
// when no config file exists.
func Load(configDir string) (*Config, error) {
	cfg := &Config{
		BackendAddr: DefaultBackendAddr,
		MsClientID:  DefaultMsClientID,
	}

	configPath := filepath.Join(configDir, "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // Return defaults
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.BackendAddr == "" {
		cfg.BackendAddr = DefaultBackendAddr
	}
	if cfg.MsClientID == "" {
		cfg.MsClientID = DefaultMsClientID
	}

	return cfg, nil
}

// Save writes configuration to the given directory.
func (c *Config) Save(configDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
