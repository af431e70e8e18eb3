package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config stores all application configuration
type Config struct {
	Bridge BridgeConfig `yaml:"bridge"`
	// ID of the light to open directly, skipping the picker
	Light    string         `yaml:"light"`
	Throttle ThrottleConfig `yaml:"throttle"`
	Log      LogConfig      `yaml:"log"`
}

// BridgeConfig stores connection details for a Hue bridge
type BridgeConfig struct {
	// IP address or hostname of the bridge
	Host string `yaml:"host"`
	// Whitelisted v1 API username
	Username string `yaml:"username"`
	// Per-request timeout
	Timeout Duration `yaml:"timeout"`
}

// ThrottleConfig holds the command rate limit timings
type ThrottleConfig struct {
	// Minimum gap between immediate sends
	Interval Duration `yaml:"interval"`
	// Quiet period before a deferred send
	Settle Duration `yaml:"settle"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level"`
	// Log file used while the terminal UI owns the screen
	File string `yaml:"file"`
	JSON bool   `yaml:"json"`
}

var (
	ErrNoBridge = errors.New("no bridge configured")
	ErrNoLight  = errors.New("no light configured")
)

// Duration is a wrapper around time.Duration for YAML unmarshalling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Dir returns the configuration directory path
func Dir() (string, error) {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "huefx"), nil
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "huefx"), nil
}

// DefaultPath returns the full path to the default config file
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from path, or from DefaultPath when path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		// Expand environment variables
		expanded := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() error {
	if c.Bridge.Timeout == 0 {
		c.Bridge.Timeout = Duration(5 * time.Second)
	}
	if c.Throttle.Interval == 0 {
		c.Throttle.Interval = Duration(250 * time.Millisecond)
	}
	if c.Throttle.Settle == 0 {
		c.Throttle.Settle = Duration(200 * time.Millisecond)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		c.Log.File = filepath.Join(dir, "huefx.log")
	}
	return nil
}

// RequireBridge returns ErrNoBridge unless the bridge host and username are set
func (c *Config) RequireBridge() error {
	if c.Bridge.Host == "" || c.Bridge.Username == "" {
		return ErrNoBridge
	}
	return nil
}

// RequireLight returns ErrNoLight unless a light is selected
func (c *Config) RequireLight() error {
	if c.Light == "" {
		return ErrNoLight
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}
func expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		if val := os.Getenv(parts[1]); val != "" {
			return val
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}
