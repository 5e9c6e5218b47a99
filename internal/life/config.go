package life

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks configurations the simulation cannot run with.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config controls the grid dimensions, population floor and history depth.
type Config struct {
	Rows int
	Cols int

	// Cells is the number of random draws used to seed a fresh grid. Half of
	// it (floor division) is the population floor enforced after each step.
	Cells int

	// Levels is the number of past generations retained for display.
	Levels int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:   20,
		Cols:   20,
		Cells:  50,
		Levels: 30,
		Seed:   42,
	}
}

// Validate reports every constraint the configuration violates.
func (c Config) Validate() error {
	var errs []error
	if c.Rows <= 0 {
		errs = append(errs, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows))
	}
	if c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfig, c.Cols))
	}
	if c.Levels < 0 {
		errs = append(errs, fmt.Errorf("%w: levels must not be negative, got %d", ErrInvalidConfig, c.Levels))
	}
	if c.Cells < 0 {
		errs = append(errs, fmt.Errorf("%w: cells must not be negative, got %d", ErrInvalidConfig, c.Cells))
	}
	return errors.Join(errs...)
}

// Floor returns the population floor derived from Cells.
func (c Config) Floor() int { return PopulationFloor(c.Cells) }
