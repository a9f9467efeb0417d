// Package timeseries provides the series and frame types fed to the smoothing model.
package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNonPositive is returned by Validate when a value is zero or negative.
var ErrNonPositive = errors.New("timeseries: values must be strictly positive")

// ErrNonFinite is returned by Validate when a value is NaN or infinite.
var ErrNonFinite = errors.New("timeseries: values must be finite")

// Series is an observed column, optionally dated.
type Series struct {
	Timestamps []time.Time // nil when the source had no usable dates
	Values     []float64
	Name       string
}

// Description holds summary statistics of a Series.
type Description struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// New wraps values in an undated series.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Describe computes the summary statistics. An empty series yields NaN
// statistics; a single observation has zero spread.
func (s *Series) Describe() Description {
	d := Description{N: len(s.Values)}
	switch d.N {
	case 0:
		nan := math.NaN()
		d.Min, d.Max, d.Mean, d.StdDev = nan, nan, nan, nan
	case 1:
		d.Min, d.Max, d.Mean = s.Values[0], s.Values[0], s.Values[0]
	default:
		d.Min = floats.Min(s.Values)
		d.Max = floats.Max(s.Values)
		d.Mean, d.StdDev = stat.MeanStdDev(s.Values, nil)
	}
	return d
}

// Validate reports the first non-finite or non-positive value.
func (s *Series) Validate() error {
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: index %d is %v", ErrNonFinite, i, v)
		}
		if v <= 0 {
			return fmt.Errorf("%w: index %d is %v", ErrNonPositive, i, v)
		}
	}
	return nil
}
