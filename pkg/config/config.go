// Package config loads smash settings from .smash.yaml and the environment
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// FileName is the configuration file looked up next to the source file and
// in the working directory
const FileName = ".smash.yaml"

// Environment variables overriding the file
const (
	EnvFormat      = "SMASH_FORMAT"
	EnvLabelPrefix = "SMASH_LABEL_PREFIX"
)

// Config represents the structure of a .smash.yaml configuration file
type Config struct {
	Format      string `yaml:"format,omitempty"`
	LabelPrefix string `yaml:"label_prefix,omitempty"`
	Verbose     bool   `yaml:"verbose,omitempty"`
	UseTabs     bool   `yaml:"use_tabs,omitempty"`
	ClangFormat bool   `yaml:"clang_format,omitempty"`

	// Path is the file the settings came from, empty for defaults
	Path string `yaml:"-"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Format:      "summary",
		LabelPrefix: ".TEMP",
	}
}

// Load returns the settings for sourcePath. An explicit path must exist;
// otherwise .smash.yaml is searched in the source file's directory and then
// the working directory, and a missing file yields the defaults. Environment
// variables are applied last.
func Load(explicit, sourcePath string) (*Config, error) {
	cfg := Default()

	path, err := find(explicit, sourcePath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Format = getEnvOrDefault(EnvFormat, cfg.Format)
	cfg.LabelPrefix = getEnvOrDefault(EnvLabelPrefix, cfg.LabelPrefix)
	return cfg, nil
}

func find(explicit, sourcePath string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	var dirs []string
	if sourcePath != "" {
		if info, err := os.Stat(sourcePath); err == nil && info.IsDir() {
			dirs = append(dirs, sourcePath)
		} else {
			dirs = append(dirs, filepath.Dir(sourcePath))
		}
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

func (c *Config) readFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(content, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	c.Path = path
	return nil
}

// getEnvOrDefault gets an environment variable value or returns a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
