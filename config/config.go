package config

import "time"

// Config represents the dtsgen configuration
type Config struct {
	// Input lists intermediate files or doublestar patterns, loaded in order
	Input []string `mapstructure:"input" toml:"input" json:"input" yaml:"input"`
	// Output is the declaration file path; empty writes to stdout
	Output string `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	// Header prepends the tooling disclaimer comment
	Header bool        `mapstructure:"header" toml:"header" json:"header" yaml:"header"`
	Log    LogConfig   `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Watch  WatchConfig `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`                     // zap production JSON instead of the console encoder
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"` // same scale as -v flags
}

// WatchConfig configures watch mode
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"` // quiet period before regenerating (default: 200)
}

// Debounce returns the debounce period as a duration
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// File and environment naming
const (
	FileName  = "dtsgen.toml"
	EnvPrefix = "DTSGEN"
)
