package life

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config cannot describe a runnable board.
var ErrInvalidConfig = errors.New("invalid config")

// Board and run defaults.
const (
	MinSize              = 10
	DefaultWidth         = 200
	DefaultHeight        = 200
	DefaultMaxGeneration = 250
	DefaultPopulation    = 0.2
)

// Config holds the parameters of a simulation run.
type Config struct {
	Width  int
	Height int

	// MaxGeneration is the last generation index that is computed.
	MaxGeneration int

	// Population is the probability that a cell starts alive.
	Population float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxGeneration: DefaultMaxGeneration,
		Population:    DefaultPopulation,
	}
}

// Validate reports the first problem found with c, wrapped around
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Width < MinSize || c.Height < MinSize {
		return fmt.Errorf("%w: board %dx%d is below the minimum %dx%d", ErrInvalidConfig, c.Width, c.Height, MinSize, MinSize)
	}
	if c.MaxGeneration < 0 {
		return fmt.Errorf("%w: max generation %d is negative", ErrInvalidConfig, c.MaxGeneration)
	}
	if c.Population < 0 || c.Population > 1 {
		return fmt.Errorf("%w: population %v is outside [0, 1]", ErrInvalidConfig, c.Population)
	}
	return nil
}
