// Package config handles configuration loading and validation for keystash.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keystash/keystash/internal/keyring"
)

// PolicyConfig holds the write-side persistence policy.
type PolicyConfig struct {
	TierMode string            `yaml:"tier_mode"`  // standard-only | advanced-upgradeable | advanced-only | intelligent-tiering
	KMSKeyID string            `yaml:"kms_key_id"` // Server-side encryption key (optional)
	Tags     map[string]string `yaml:"tags"`       // Attached to every written parameter
}

// Config holds client configuration for the keystash CLI.
type Config struct {
	Endpoint  string       `yaml:"endpoint"`   // Parameter store base URL
	AuthToken string       `yaml:"auth_token"` // Bearer token (optional)
	Prefix    string       `yaml:"prefix"`     // Path prefix all elements live under
	Policy    PolicyConfig `yaml:"policy"`
}

// Load loads configuration from a YAML file, applies defaults and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	// Apply defaults
	if cfg.Policy.TierMode == "" {
		cfg.Policy.TierMode = string(keyring.ModeStandardOnly)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields without touching the network.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if _, err := keyring.NormalizePrefix(c.Prefix); err != nil {
		return fmt.Errorf("prefix: %w", err)
	}
	if _, err := c.Policy.PersistPolicy(); err != nil {
		return err
	}
	return nil
}

// PersistPolicy converts the YAML policy section into the repository's
// policy type, rejecting unknown tier modes.
func (p PolicyConfig) PersistPolicy() (keyring.PersistPolicy, error) {
	mode := keyring.TierMode(p.TierMode)
	switch mode {
	case "", keyring.ModeStandardOnly, keyring.ModeAdvancedUpgradeable,
		keyring.ModeAdvancedOnly, keyring.ModeIntelligentTiering:
	default:
		return keyring.PersistPolicy{}, fmt.Errorf("unknown tier_mode %q", p.TierMode)
	}
	return keyring.PersistPolicy{
		KMSKeyID: p.KMSKeyID,
		TierMode: mode,
		Tags:     p.Tags,
	}, nil
}
