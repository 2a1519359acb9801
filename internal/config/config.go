package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/gwl/internal/platform"
)

// WindowConfig is the initial state of the window built by `gwl run`.
type WindowConfig struct {
	Title       string `yaml:"title"`
	Width       uint32 `yaml:"width"`
	Height      uint32 `yaml:"height"`
	X           int32  `yaml:"x"`
	Y           int32  `yaml:"y"`
	BorderWidth uint32 `yaml:"border_width"`
	Undecorated bool   `yaml:"undecorated"`
}

// ExitConfig selects the key that ends the event loop and the exit status
// it produces.
type ExitConfig struct {
	Key  string `yaml:"key"`
	Code int    `yaml:"code"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RecordConfig enables the rotating event log. An empty Path disables it.
type RecordConfig struct {
	Path      string `yaml:"path"`
	MaxSizeMB int    `yaml:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files"`
}

// Config represents the effective gwl configuration
type Config struct {
	Backend string        `yaml:"backend"`
	Display string        `yaml:"display"`
	Window  WindowConfig  `yaml:"window"`
	Exit    ExitConfig    `yaml:"exit"`
	Logging LoggingConfig `yaml:"logging"`
	Record  RecordConfig  `yaml:"record"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Backend: "auto",
		Window: WindowConfig{
			Title:  "gwl",
			Width:  100,
			Height: 100,
		},
		Exit: ExitConfig{
			Key:  "e",
			Code: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
		Record: RecordConfig{
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
	}
}

// BackendKind parses Backend. Validate guarantees it succeeds.
func (c *Config) BackendKind() platform.Kind {
	kind, _ := platform.Parse(c.Backend)
	return kind
}

// Save writes the configuration to path.
//
// Note: this marshals the effective config and will not preserve comments or
// include structure from the source YAML.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if _, err := platform.Parse(c.Backend); err != nil {
		return &ValidationError{Path: "backend", Err: fmt.Errorf("backend must be one of: auto, x11, wayland, windows, headless")}
	}
	if c.Window.Width == 0 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Window.Height == 0 {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("height must be > 0")}
	}
	if c.Window.Width > 0xffff || c.Window.Height > 0xffff {
		return &ValidationError{Path: "window", Err: fmt.Errorf("width and height must be <= 65535")}
	}
	if c.Window.X < -0x8000 || c.Window.X > 0x7fff || c.Window.Y < -0x8000 || c.Window.Y > 0x7fff {
		return &ValidationError{Path: "window", Err: fmt.Errorf("x and y must fit in 16 bits")}
	}
	if len([]rune(c.Exit.Key)) > 1 {
		return &ValidationError{Path: "exit.key", Err: fmt.Errorf("exit key must be a single character or empty")}
	}
	if c.Exit.Code < 0 || c.Exit.Code > 255 {
		return &ValidationError{Path: "exit.code", Err: fmt.Errorf("exit code must be between 0 and 255")}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	switch c.Logging.Format {
	case "auto", "text", "json":
	default:
		return &ValidationError{Path: "logging.format", Err: fmt.Errorf("format must be one of: auto, text, json")}
	}
	if c.Record.MaxSizeMB <= 0 {
		return &ValidationError{Path: "record.max_size_mb", Err: fmt.Errorf("max_size_mb must be > 0")}
	}
	if c.Record.MaxFiles < 0 {
		return &ValidationError{Path: "record.max_files", Err: fmt.Errorf("max_files must be >= 0")}
	}
	return nil
}
