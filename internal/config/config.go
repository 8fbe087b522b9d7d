package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"conway/pkg/life"
)

// ErrInvalidConfiguration is wrapped by every validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Display names accepted by Config.Display.
const (
	DisplayTerminal = "terminal"
	DisplayPlain    = "plain"
	DisplayWindow   = "window"
)

// Config holds everything needed to seed and run a simulation.
type Config struct {
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Delay   time.Duration `yaml:"delay"`
	Density float64       `yaml:"density"`
	Seed    int64         `yaml:"seed"`
	Pattern string        `yaml:"pattern"`
	Edge    string        `yaml:"edge"`

	Display   string `yaml:"display"`
	AliveChar string `yaml:"alive_char"`
	DeadChar  string `yaml:"dead_char"`
	Scale     int    `yaml:"scale"`
}

// Default returns the stock 30x30 configuration.
func Default() Config {
	return Config{
		Width:     30,
		Height:    30,
		Delay:     150 * time.Millisecond,
		Density:   0.3,
		Seed:      time.Now().UnixNano(),
		Edge:      life.Bounded.String(),
		Display:   DisplayTerminal,
		AliveChar: "█",
		DeadChar:  " ",
		Scale:     12,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations")
	fs.Float64Var(&c.Density, "density", c.Density, "initial probability of a cell being alive (0-1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial grid")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "named pattern to start from instead of a random grid")
	fs.StringVar(&c.Edge, "edge", c.Edge, "edge policy: bounded or toroidal")
	fs.StringVar(&c.Display, "display", c.Display, "renderer: terminal, plain or window")
	fs.StringVar(&c.AliveChar, "alive", c.AliveChar, "glyph for live cells")
	fs.StringVar(&c.DeadChar, "dead", c.DeadChar, "glyph for dead cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the window display")
}

// Decode reads YAML from r on top of the current values. Unknown keys are
// rejected.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// Load reads a YAML file on top of the current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := c.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Parse builds a Config from defaults, an optional -config YAML file and
// command-line flags, in that order of precedence, and validates it.
func Parse(name string, args []string) (Config, error) {
	var path string
	cfg := Default()
	if err := parseFlags(name, args, &cfg, &path); err != nil {
		return cfg, err
	}
	if path != "" {
		cfg = Default()
		if err := cfg.Load(path); err != nil {
			return cfg, err
		}
		// Flags override the file.
		if err := parseFlags(name, args, &cfg, &path); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func parseFlags(name string, args []string, cfg *Config, path *string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(path, "config", *path, "YAML configuration file")
	cfg.Bind(fs)
	return fs.Parse(args)
}

// Size returns the configured grid dimensions.
func (c Config) Size() (life.GridSize, error) {
	return life.NewGridSize(c.Width, c.Height)
}

// EdgePolicy returns the configured edge policy.
func (c Config) EdgePolicy() (life.Edge, error) {
	return life.ParseEdge(c.Edge)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := c.Size(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density must be between 0 and 1, got %g", ErrInvalidConfiguration, c.Density)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must be non-negative, got %s", ErrInvalidConfiguration, c.Delay)
	}
	if _, err := c.EdgePolicy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	switch c.Display {
	case DisplayTerminal, DisplayPlain, DisplayWindow:
	default:
		return fmt.Errorf("%w: unknown display %q", ErrInvalidConfiguration, c.Display)
	}
	if c.AliveChar == "" || c.DeadChar == "" {
		return fmt.Errorf("%w: cell glyphs must not be empty", ErrInvalidConfiguration)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale must be at least 1, got %d", ErrInvalidConfiguration, c.Scale)
	}
	return nil
}
