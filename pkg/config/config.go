/*
Package config manages TOML config for SpellServe.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Affix   AffixConfig   `toml:"affix"`
	Server  ServerConfig  `toml:"server"`
}

// SuggestConfig holds suggestion ranking options.
type SuggestConfig struct {
	MaxEdits       int     `toml:"max_edits"`
	MaxSuggestions int     `toml:"max_suggestions"`
	CaseCost       float64 `toml:"case_cost"`
	AffixPenalty   float64 `toml:"affix_penalty"`
}

// AffixConfig holds affix-table parsing options.
type AffixConfig struct {
	// Strict aborts dictionary loading on the first malformed rule line
	// instead of skipping it.
	Strict bool `toml:"strict"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit   int `toml:"max_limit"`
	MaxWordLen int `toml:"max_word_len"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			MaxEdits:       2,
			MaxSuggestions: 16,
			CaseCost:       0.25,
			AffixPenalty:   0.5,
		},
		Affix: AffixConfig{
			Strict: false,
		},
		Server: ServerConfig{
			MaxLimit:   64,
			MaxWordLen: 64,
		},
	}
}

// Validate rejects option values a component could not run with.
func (c *Config) Validate() error {
	if c.Suggest.MaxEdits < 0 {
		return fmt.Errorf("suggest.max_edits must be >= 0, got %d", c.Suggest.MaxEdits)
	}
	if c.Suggest.MaxSuggestions < 0 {
		return fmt.Errorf("suggest.max_suggestions must be >= 0, got %d", c.Suggest.MaxSuggestions)
	}
	if c.Suggest.CaseCost < 0 || c.Suggest.CaseCost >= 1 {
		return fmt.Errorf("suggest.case_cost must be in [0,1), got %v", c.Suggest.CaseCost)
	}
	if c.Suggest.AffixPenalty < 0 {
		return fmt.Errorf("suggest.affix_penalty must be >= 0, got %v", c.Suggest.AffixPenalty)
	}
	if c.Server.MaxLimit <= 0 {
		return fmt.Errorf("server.max_limit must be > 0, got %d", c.Server.MaxLimit)
	}
	if c.Server.MaxWordLen <= 0 {
		return fmt.Errorf("server.max_word_len must be > 0, got %d", c.Server.MaxWordLen)
	}
	return nil
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// InitConfig loads config from file or creates it with defaults if missing.
func InitConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefault(path); err != nil {
			return nil, err
		}
		log.Debugf("created default config at %s", path)
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/spellserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customPath string) (*Config, string) {
	if customPath != "" {
		config, err := LoadConfig(customPath)
		if err == nil {
			log.Debugf("loaded config from %s", customPath)
			return config, customPath
		}
		log.Warnf("failed to load config from %s: %v, trying default path", customPath, err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Warnf("no user config dir: %v, using builtin defaults", err)
		return DefaultConfig(), ""
	}
	defaultPath := filepath.Join(configDir, "spellserve", "config.toml")
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("failed to load/create config at %s: %v, using builtin defaults", defaultPath, err)
		return DefaultConfig(), ""
	}
	return config, defaultPath
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(DefaultConfig())
}
