package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/gradlever/gradlever/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// File names and environment variables consulted by LoadConfigFn.
const (
	YAMLConfigFile = ".gradlever.yaml"
	TOMLConfigFile = ".gradlever.toml"
	PathEnvVar     = "GRADLEVER_PATH"
)

// Defaults applied to missing fields.
const (
	DefaultPath   = "build.gradle"
	DefaultTrim   = "quoted"
	DefaultFormat = "text"
)

// Config is the main configuration structure for gradlever.
type Config struct {
	Path   string `yaml:"path" toml:"path"`
	Trim   string `yaml:"trim,omitempty" toml:"trim,omitempty"`
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
	Theme  string `yaml:"theme,omitempty" toml:"theme,omitempty"`
}

// Default returns a Config with every field at its default.
func Default() *Config {
	return &Config{Path: DefaultPath, Trim: DefaultTrim, Format: DefaultFormat}
}

// applyDefaults fills in empty fields.
func (c *Config) applyDefaults() {
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if c.Trim == "" {
		c.Trim = DefaultTrim
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler core.Marshaler
	fs        core.FileSystem
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, fs core.FileSystem) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &ConfigSaver{
		marshaler: marshaler,
		fs:        fs,
	}
}

// SaveTo saves the configuration to the specified file path.
func (s *ConfigSaver) SaveTo(ctx context.Context, cfg *Config, configFile string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if err := s.fs.WriteFile(ctx, configFile, data, ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// LoadConfigFn is a function variable so tests can swap the implementation.
var LoadConfigFn = loadConfig

// loadConfig resolves configuration from, in order: the GRADLEVER_PATH
// environment variable, .gradlever.yaml, .gradlever.toml. It returns nil, nil
// when none of them is present.
func loadConfig() (*Config, error) {
	if envPath := os.Getenv(PathEnvVar); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", PathEnvVar)
		}
		cfg := &Config{Path: cleanPath}
		cfg.applyDefaults()
		return cfg, nil
	}

	cfg, err := loadYAML(YAMLConfigFile)
	if cfg != nil || err != nil {
		return cfg, err
	}

	return loadTOML(TOMLConfigFile)
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func loadTOML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// NormalizeBuildScriptPath ensures the path is a file, not just a directory.
func NormalizeBuildScriptPath(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, DefaultPath)
	}

	// If it doesn't exist or is already a file, return as-is
	return path
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW
