package config

import "github.com/teranos/dtsgen/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	for i, in := range c.Input {
		if in == "" {
			return errors.Newf("input[%d] cannot be empty", i)
		}
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	// 0 = regenerate on every event, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
