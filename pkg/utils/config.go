package utils

import (
	"maps"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config is a thread-safe key/value view over the process configuration
type Config struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewConfig creates a config holding a copy of values
func NewConfig(values map[string]string) *Config {
	config := &Config{values: make(map[string]string, len(values))}
	maps.Copy(config.values, values)
	return config
}

// NewConfigFromEnv loads the given .env files into the environment and returns
// a config over the resulting environment
func NewConfigFromEnv(files ...string) *Config {
	return NewConfig(LoadEnv(files...))
}

// lookup returns the value for key, treating empty values as unset
func (c *Config) lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.values[key]
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// Get retrieves a configuration value, or "" when unset
func (c *Config) Get(key string) string {
	value, _ := c.lookup(key)
	return value
}

// GetWithDefault retrieves a configuration value with a fallback default
func (c *Config) GetWithDefault(key, defaultValue string) string {
	if value, ok := c.lookup(key); ok {
		return value
	}
	return defaultValue
}

// GetBool parses a boolean value. Unset or unparseable values are false.
func (c *Config) GetBool(key string) bool {
	return c.GetBoolWithDefault(key, false)
}

// GetBoolWithDefault parses a boolean value with a fallback default
func (c *Config) GetBoolWithDefault(key string, defaultValue bool) bool {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed
	}

	switch strings.ToLower(value) {
	case "yes", "on", "enabled":
		return true
	case "no", "off", "disabled":
		return false
	}
	return defaultValue
}

// GetInt parses an integer value, or 0 when unset or invalid
func (c *Config) GetInt(key string) int {
	return c.GetIntWithDefault(key, 0)
}

// GetIntWithDefault parses an integer value with a fallback default
func (c *Config) GetIntWithDefault(key string, defaultValue int) int {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetInt64WithDefault parses a 64-bit integer value with a fallback default
func (c *Config) GetInt64WithDefault(key string, defaultValue int64) int64 {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetFloatWithDefault parses a float value with a fallback default
func (c *Config) GetFloatWithDefault(key string, defaultValue float64) float64 {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetDurationWithDefault parses a Go duration string ("30s", "5m") with a
// fallback default
func (c *Config) GetDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetLocation loads a time zone by IANA name, falling back to UTC
func (c *Config) GetLocation(key string) *time.Location {
	value, ok := c.lookup(key)
	if !ok {
		return time.UTC
	}

	loc, err := time.LoadLocation(value)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetList splits a comma separated value into trimmed, non-empty items
func (c *Config) GetList(key string) []string {
	value, ok := c.lookup(key)
	if !ok {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Set modifies a configuration value
func (c *Config) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Has reports whether key holds a non-empty value
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}
