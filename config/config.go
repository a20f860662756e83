// Package config loads simulation settings from YAML.
package config

import (
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the simulation host.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Window  WindowConfig  `yaml:"window"`
	Log     LogConfig     `yaml:"log"`
	Trace   TraceConfig   `yaml:"trace"`
}

// PhysicsConfig holds the defaults given to platform bodies whose scene
// entry leaves them at zero, and the controller tuning.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`              // added to vy every step
	MaxFallSpeed       float64 `yaml:"max_fall_speed"`       // cap on downward vy
	FastFallMultiplier float64 `yaml:"fast_fall_multiplier"` // gravity scale while fast-falling
	JumpImpulse        float64 `yaml:"jump_impulse"`
	MoveSpeed          float64 `yaml:"move_speed"`
}

// WindowConfig holds display settings for the interactive host.
type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	TPS    int     `yaml:"tps"`
	Scale  float64 `yaml:"scale"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// TraceConfig names the CSV file collision events are written to. Empty
// disables tracing.
type TraceConfig struct {
	Path string `yaml:"path"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := parse(nil)
	if err != nil {
		panic(eris.Wrap(err, "config: embedded defaults"))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path when path
// is not empty. The result is validated.
func Load(path string) (*Config, error) {
	var overlay []byte
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "reading config file %s", path)
		}
		overlay = data
	}
	cfg, err := parse(overlay)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(overlay []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, eris.Wrap(err, "parsing embedded defaults")
	}
	if len(overlay) > 0 {
		if err := yaml.Unmarshal(overlay, cfg); err != nil {
			return nil, eris.Wrap(err, "parsing config file")
		}
	}
	return cfg, nil
}

// Validate rejects settings the host cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return eris.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return eris.Errorf("window tps must be positive, got %d", c.Window.TPS)
	case c.Window.Scale < 0:
		return eris.Errorf("window scale must not be negative, got %g", c.Window.Scale)
	case c.Physics.MaxFallSpeed < 0:
		return eris.Errorf("physics max_fall_speed must not be negative, got %g", c.Physics.MaxFallSpeed)
	case c.Physics.FastFallMultiplier < 0:
		return eris.Errorf("physics fast_fall_multiplier must not be negative, got %g", c.Physics.FastFallMultiplier)
	case c.Physics.JumpImpulse < 0:
		return eris.Errorf("physics jump_impulse must not be negative, got %g", c.Physics.JumpImpulse)
	case c.Physics.MoveSpeed < 0:
		return eris.Errorf("physics move_speed must not be negative, got %g", c.Physics.MoveSpeed)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return eris.Wrapf(err, "log level %q", c.Log.Level)
	}
	return nil
}

// Logger builds the process logger described by the log section.
func (c *Config) Logger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || c.Log.Level == "" {
		level = zerolog.InfoLevel
	}
	if c.Log.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
