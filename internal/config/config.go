package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FixedTimeLayout is the format accepted for pinning the service clock,
// e.g. "2020-05-12T10:15:30".
const FixedTimeLayout = "2006-01-02T15:04:05"

// Config holds the service configuration.
type Config struct {
	ServiceID  string `yaml:"service_id"`
	ListenAddr string `yaml:"listen_addr"`
	// FixedTime pins the clock to one instant when non-empty, using
	// FixedTimeLayout in UTC. Empty means the live system clock.
	FixedTime string `yaml:"fixed_time"`
}

// Default returns the configuration used when no file and no flags are
// given.
func Default() Config {
	return Config{
		ServiceID:  "chrono-1",
		ListenAddr: "127.0.0.1:50061",
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the service cannot start
// with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServiceID) == "" {
		return fmt.Errorf("service_id cannot be empty")
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("listen_addr cannot be empty")
	}
	if _, _, err := c.ParseFixedTime(); err != nil {
		return err
	}
	return nil
}

// ParseFixedTime parses the pinned instant. The second return value is
// false when no instant is configured.
func (c *Config) ParseFixedTime() (time.Time, bool, error) {
	s := strings.TrimSpace(c.FixedTime)
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err := time.ParseInLocation(FixedTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid fixed_time %q: %w", s, err)
	}
	return t, true, nil
}
