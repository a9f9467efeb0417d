package stats

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrLengthMismatch is returned when actual and predicted differ in length.
	ErrLengthMismatch = errors.New("stats: actual and predicted must have the same length")
	// ErrEmpty is returned for zero-length inputs.
	ErrEmpty = errors.New("stats: empty input")
	// ErrZeroTotal is returned by MAPE when the observed values sum to zero.
	ErrZeroTotal = errors.New("stats: observed values sum to zero")
	// ErrUnknownMetric is returned by MetricByName.
	ErrUnknownMetric = errors.New("stats: unknown metric")
)

// Metric scores predictions against observed values. Lower is better.
type Metric func(actual, predicted []float64) (float64, error)

// MetricByName returns the metric called mape, smape, mae or rmse.
func MetricByName(name string) (Metric, error) {
	switch strings.ToLower(name) {
	case "mape", "":
		return MAPE, nil
	case "smape":
		return SMAPE, nil
	case "mae":
		return MAE, nil
	case "rmse":
		return RMSE, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

func checkPair(actual, predicted []float64) error {
	if len(actual) != len(predicted) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return ErrEmpty
	}
	return nil
}

// MAPE returns the total absolute error as a percentage of the total
// observed value: sum|y-ŷ| / sum(y) * 100.
func MAPE(actual, predicted []float64) (float64, error) {
	if err := checkPair(actual, predicted); err != nil {
		return 0, err
	}
	total := floats.Sum(actual)
	if total == 0 {
		return 0, ErrZeroTotal
	}
	return floats.Distance(actual, predicted, 1) / total * 100, nil
}

// MAE returns the mean absolute error.
func MAE(actual, predicted []float64) (float64, error) {
	if err := checkPair(actual, predicted); err != nil {
		return 0, err
	}
	return floats.Distance(actual, predicted, 1) / float64(len(actual)), nil
}

// RMSE returns the root mean squared error.
func RMSE(actual, predicted []float64) (float64, error) {
	if err := checkPair(actual, predicted); err != nil {
		return 0, err
	}
	return floats.Distance(actual, predicted, 2) / math.Sqrt(float64(len(actual))), nil
}

// SMAPE returns the symmetric mean absolute percentage error in percent.
// Pairs where both values are zero contribute nothing.
func SMAPE(actual, predicted []float64) (float64, error) {
	if err := checkPair(actual, predicted); err != nil {
		return 0, err
	}
	sum := 0.0
	for i, a := range actual {
		den := math.Abs(a) + math.Abs(predicted[i])
		if den == 0 {
			continue
		}
		sum += 2 * math.Abs(a-predicted[i]) / den
	}
	return sum / float64(len(actual)) * 100, nil
}
