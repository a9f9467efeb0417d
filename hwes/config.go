package hwes

import (
	"github.com/rs/zerolog"

	"github.com/sartorproj/gohwes/optimize"
	"github.com/sartorproj/gohwes/stats"
)

// Search box used by DefaultBounds for every hyperparameter.
const (
	DefaultLowerBound = 1e-5
	DefaultUpperBound = 1.0
)

// DefaultPeriod is the seasonal period used by the CLI when none is given.
const DefaultPeriod = 7

// Config holds the fitting configuration of a model.
type Config struct {
	Bounds    []optimize.Bound   // One per parameter, in Params.Vector order
	Minimizer optimize.Minimizer // Search strategy (default: differential evolution)
	Metric    stats.Metric       // In-sample objective (default: stats.MAPE)
	Logger    zerolog.Logger
}

// DefaultBounds returns [1e-5, 1] for each of the five hyperparameters.
func DefaultBounds() []optimize.Bound {
	b := make([]optimize.Bound, NumParams)
	for i := range b {
		b[i] = optimize.Bound{Lo: DefaultLowerBound, Hi: DefaultUpperBound}
	}
	return b
}

// DefaultConfig returns the default fitting configuration.
func DefaultConfig() *Config {
	return &Config{
		Bounds:    DefaultBounds(),
		Minimizer: optimize.NewDifferentialEvolution(),
		Metric:    stats.MAPE,
		Logger:    zerolog.Nop(),
	}
}

func (c *Config) withDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.Bounds == nil {
		out.Bounds = d.Bounds
	}
	if out.Minimizer == nil {
		out.Minimizer = d.Minimizer
	}
	if out.Metric == nil {
		out.Metric = d.Metric
	}
	return &out
}
