// Package hwes implements multiplicative Holt-Winters smoothing with an
// exogenous discount regressor on the level.
package hwes

import (
	"fmt"
	"math"

	"github.com/sartorproj/gohwes/timeseries"
)

// Model is a seasonal smoothing model over a fixed series and its
// discount signal.
//
// The series is copied at construction and never changes. The discount
// signal is copied too, but grows: every successful Forecast appends its
// discount values to it (see Exog).
type Model struct {
	series    []float64
	exog      []float64
	slen      int
	params    Params
	hasParams bool
	cfg       *Config
}

// New creates a model for series with the aligned exogenous signal exog
// and seasonal period slen. A nil cfg selects DefaultConfig.
//
// series must hold at least 2*slen strictly positive finite values and
// exog at least len(series) finite values.
func New(series, exog []float64, slen int, cfg *Config) (*Model, error) {
	if slen < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrPeriod, slen)
	}
	if len(series) < 2*slen {
		return nil, fmt.Errorf("%w: %d observations for period %d", ErrTooShort, len(series), slen)
	}
	if err := timeseries.New(series).Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeries, err)
	}
	if len(exog) < len(series) {
		return nil, fmt.Errorf("%w: %d < %d", ErrExogLength, len(exog), len(series))
	}
	if err := checkFinite(exog); err != nil {
		return nil, err
	}

	m := &Model{
		series: append([]float64(nil), series...),
		exog:   append([]float64(nil), exog...),
		slen:   slen,
		cfg:    cfg.withDefaults(),
	}
	return m, nil
}

// NewFromFrame creates a model from a loaded CSV frame.
func NewFromFrame(frame *timeseries.Frame, slen int, cfg *Config) (*Model, error) {
	return New(frame.Series.Values, frame.Discount, slen, cfg)
}

func checkFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: index %d is %v", ErrInvalidExog, i, v)
		}
	}
	return nil
}

// SetParams replaces all hyperparameters at once.
func (m *Model) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.params, m.hasParams = p, true
	return nil
}

// Params returns the active hyperparameters and whether any have been set.
func (m *Model) Params() (Params, bool) {
	return m.params, m.hasParams
}

// Period returns the seasonal period.
func (m *Model) Period() int {
	return m.slen
}

// Len returns the number of observations.
func (m *Model) Len() int {
	return len(m.series)
}

// Series returns a copy of the observed series.
func (m *Model) Series() []float64 {
	return append([]float64(nil), m.series...)
}

// Exog returns a copy of the exogenous signal, including any discount
// values appended by earlier forecasts.
func (m *Model) Exog() []float64 {
	return append([]float64(nil), m.exog...)
}
