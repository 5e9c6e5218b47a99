// Package config provides configuration loading for the simulation and its
// viewers.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"stalagmite/internal/compositor"
	"stalagmite/internal/life"
	"stalagmite/internal/scheduler"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run parameters. It is fixed once a run starts.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Population PopulationConfig `yaml:"population"`
	History    HistoryConfig    `yaml:"history"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Layers     LayersConfig     `yaml:"layers"`
	Screen     ScreenConfig     `yaml:"screen"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// GridConfig holds the automaton dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// PopulationConfig holds seeding parameters.
type PopulationConfig struct {
	Cells int   `yaml:"cells"` // Seed draws; half of it is the repopulation floor
	Seed  int64 `yaml:"seed"`
}

// HistoryConfig holds the history depth.
type HistoryConfig struct {
	Levels int `yaml:"levels"`
}

// ScheduleConfig holds the tick cadence.
type ScheduleConfig struct {
	TPS        int `yaml:"tps"`
	MaxCatchUp int `yaml:"max_catch_up"` // 0 = unbounded
}

// LayersConfig holds the layer geometry.
type LayersConfig struct {
	Top     float64 `yaml:"top"`
	Spacing float64 `yaml:"spacing"`
	Spin    float64 `yaml:"spin"`
	Twist   float64 `yaml:"twist"`
}

// ScreenConfig holds window settings for the graphical viewers.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	CellSize  int `yaml:"cell_size"` // Pixels per unit in the isometric view
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	Window int `yaml:"window"` // Generations per statistics window
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	errs := []error{c.Life().Validate()}
	if c.Schedule.TPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: tps must be positive, got %d", life.ErrInvalidConfig, c.Schedule.TPS))
	}
	if c.Schedule.MaxCatchUp < 0 {
		errs = append(errs, fmt.Errorf("%w: max_catch_up must not be negative, got %d", life.ErrInvalidConfig, c.Schedule.MaxCatchUp))
	}
	if c.Layers.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("%w: layer spacing must be positive, got %g", life.ErrInvalidConfig, c.Layers.Spacing))
	}
	if c.Telemetry.Window < 0 {
		errs = append(errs, fmt.Errorf("%w: telemetry window must not be negative, got %d", life.ErrInvalidConfig, c.Telemetry.Window))
	}
	return errors.Join(errs...)
}

// Life returns the simulation settings.
func (c *Config) Life() life.Config {
	return life.Config{
		Rows:   c.Grid.Rows,
		Cols:   c.Grid.Cols,
		Cells:  c.Population.Cells,
		Levels: c.History.Levels,
		Seed:   c.Population.Seed,
	}
}

// Compositor returns the layer geometry.
func (c *Config) Compositor() compositor.Options {
	return compositor.Options{
		Top:     c.Layers.Top,
		Spacing: c.Layers.Spacing,
		Spin:    c.Layers.Spin,
		Twist:   c.Layers.Twist,
	}
}

// Scheduler returns the tick cadence.
func (c *Config) Scheduler() scheduler.Options {
	return scheduler.Options{TPS: c.Schedule.TPS, MaxCatchUp: c.Schedule.MaxCatchUp}
}

// Apply overrides individual settings from key=value pairs, as given on the
// command line. Unknown keys and unparseable values are errors.
func (c *Config) Apply(overrides map[string]string) error {
	var errs []error
	for key, value := range overrides {
		if err := c.set(key, value); err != nil {
			errs = append(errs, fmt.Errorf("override %s=%s: %w", key, value, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) set(key, value string) error {
	intField := map[string]*int{
		"rows":         &c.Grid.Rows,
		"cols":         &c.Grid.Cols,
		"cells":        &c.Population.Cells,
		"levels":       &c.History.Levels,
		"tps":          &c.Schedule.TPS,
		"max_catch_up": &c.Schedule.MaxCatchUp,
		"window":       &c.Telemetry.Window,
		"cell_size":    &c.Screen.CellSize,
	}
	floatField := map[string]*float64{
		"top":     &c.Layers.Top,
		"spacing": &c.Layers.Spacing,
		"spin":    &c.Layers.Spin,
		"twist":   &c.Layers.Twist,
	}
	if dst, ok := intField[key]; ok {
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	if dst, ok := floatField[key]; ok {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
	if key == "seed" {
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		c.Population.Seed = v
		return nil
	}
	return errors.New("unknown key")
}

// YAML returns the configuration encoded as YAML.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
