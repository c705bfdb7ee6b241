package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/teranos/dtsgen/errors"
)

// New builds a Viper instance with defaults, DTSGEN_* environment
// variables, and a config file. configFile overrides the upward search
// for dtsgen.toml; an empty string means search.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile == "" {
		if wd, err := os.Getwd(); err == nil {
			configFile = FindProjectConfig(wd)
		}
	}
	if configFile == "" {
		return v, nil
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
	}

	return v, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults but don't bind environment variables for this specific load
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	return LoadWithViper(v)
}

// FindProjectConfig searches for dtsgen.toml by walking up from dir.
// Returns the path to the first config file found, or empty string if none found
func FindProjectConfig(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			return ""
		}
		dir = parent
	}
}

// ResolvePath makes a relative path from a config file relative to the
// file's directory, so a project config works from any subdirectory.
func ResolvePath(configFile, path string) string {
	if configFile == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(configFile), path)
}

// ResolveInputs applies ResolvePath to every input.
func ResolveInputs(configFile string, inputs []string) []string {
	resolved := make([]string, len(inputs))
	for i, in := range inputs {
		resolved[i] = ResolvePath(configFile, in)
	}
	return resolved
}
