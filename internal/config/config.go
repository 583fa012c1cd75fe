// Package config handles loading prodcode.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/prodcode/internal/paths"
	"github.com/amonks/prodcode/internal/validation"
	"github.com/amonks/prodcode/registry"
)

// FileName is the project config file name.
const FileName = "prodcode.toml"

// Config represents the prodcode.toml configuration file.
type Config struct {
	Code     Code     `toml:"code"`
	Registry Registry `toml:"registry"`
}

// Code contains code generation settings.
type Code struct {
	// MaxAttempts bounds existence checks per generated code.
	// Zero means the built-in default.
	MaxAttempts int `toml:"max-attempts"`
}

// Registry contains registry storage settings.
type Registry struct {
	// Backend is "json" or "sqlite". Empty means json.
	Backend string `toml:"backend"`
	// Dir is where registry files live. Empty means the default state dir.
	Dir string `toml:"dir"`
}

// Load loads configuration from the project directory and the global config
// file. Project values win where the project file defines them.
// Returns an empty config if no config files exist.
func Load(projectDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, FileName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate rejects settings the rest of the program cannot honor.
func (c *Config) Validate() error {
	if c.Code.MaxAttempts < 0 {
		return fmt.Errorf("code.max-attempts must not be negative, got %d", c.Code.MaxAttempts)
	}
	if c.Registry.Backend != "" && !slices.Contains(registry.Backends, c.Registry.Backend) {
		return fmt.Errorf("registry.backend: %w", validation.FormatInvalidValueError(registry.ErrUnknownBackend, c.Registry.Backend, registry.Backends))
	}
	return nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	if cfg.Registry.Dir != "" && !filepath.IsAbs(cfg.Registry.Dir) {
		cfg.Registry.Dir = filepath.Join(filepath.Dir(path), cfg.Registry.Dir)
	}
	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Code.MaxAttempts = globalCfg.Code.MaxAttempts
	if projectMeta.IsDefined("code", "max-attempts") {
		merged.Code.MaxAttempts = projectCfg.Code.MaxAttempts
	}
	merged.Registry.Backend = strings.ToLower(mergeString(projectMeta.IsDefined("registry", "backend"), projectCfg.Registry.Backend, globalCfg.Registry.Backend))
	merged.Registry.Dir = mergeString(projectMeta.IsDefined("registry", "dir"), projectCfg.Registry.Dir, globalCfg.Registry.Dir)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
