package app

import (
	"errors"
	"flag"
	"fmt"

	"github.com/cruzec/conways-game-of-life/internal/sims/life"
)

// ErrInvalidConfig is returned by Validate for out-of-range flag values.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	// Count is the seed count. Zero means ask on standard input.
	Count int
	// Auto renders that many generations in place instead of waiting for
	// ENTER. Terminal only.
	Auto  int
	TPS   int
	Scale int
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{TPS: 8, Scale: 8}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Count, "count", c.Count, "gliders and blocks to seed (1-100, 0 = prompt)")
	fs.IntVar(&c.Auto, "auto", c.Auto, "autoplay this many generations without waiting for ENTER")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second when playing automatically")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
}

// Validate checks flag ranges.
func (c *Config) Validate() error {
	if c.Count != 0 && (c.Count < life.MinSeedCount || c.Count > life.MaxSeedCount) {
		return fmt.Errorf("%w: -count %d not in [%d,%d]", ErrInvalidConfig, c.Count, life.MinSeedCount, life.MaxSeedCount)
	}
	if c.Auto < 0 {
		return fmt.Errorf("%w: -auto must not be negative", ErrInvalidConfig)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: -tps must be positive", ErrInvalidConfig)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: -scale must be positive", ErrInvalidConfig)
	}
	return nil
}
