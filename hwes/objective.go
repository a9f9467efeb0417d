package hwes

import (
	"math"

	"github.com/sartorproj/gohwes/optimize"
)

// Score runs the in-sample recurrence with p and scores it against the
// series with the configured metric. It does not touch the model's own
// parameters and is safe for concurrent use.
func (m *Model) Score(p Params) (float64, error) {
	fitted, err := m.smooth(p, nil)
	if err != nil {
		return 0, err
	}
	return m.cfg.Metric(m.series, fitted)
}

// Error scores the active parameters. Lower is better.
func (m *Model) Error() (float64, error) {
	if !m.hasParams {
		return 0, ErrNotFitted
	}
	return m.Score(m.params)
}

// FittedValues returns the in-sample one-pass fitted values for the
// active parameters. The first value is always the first observation.
func (m *Model) FittedValues() ([]float64, error) {
	if !m.hasParams {
		return nil, ErrNotFitted
	}
	return m.smooth(m.params, nil)
}

// Residuals returns observed minus fitted values.
func (m *Model) Residuals() ([]float64, error) {
	fitted, err := m.FittedValues()
	if err != nil {
		return nil, err
	}
	return m.residuals(fitted), nil
}

func (m *Model) residuals(fitted []float64) []float64 {
	res := make([]float64, len(fitted))
	for i, f := range fitted {
		res[i] = m.series[i] - f
	}
	return res
}

// objective adapts Score to the optimizer. Candidates that fail score +Inf.
func (m *Model) objective() optimize.Objective {
	return func(x []float64) float64 {
		p, err := ParamsFromVector(x)
		if err != nil {
			return math.Inf(1)
		}
		s, err := m.Score(p)
		if err != nil {
			return math.Inf(1)
		}
		return s
	}
}
