package hwes

import "fmt"

// Forecast returns nPreds values past the end of the series, applying
// discount[m-1] to the level at horizon step m.
//
// On success discount is appended to the model's exogenous signal, so
// Exog grows by nPreds. Nothing is appended when Forecast fails.
func (m *Model) Forecast(nPreds int, discount []float64) ([]float64, error) {
	if !m.hasParams {
		return nil, ErrNotFitted
	}
	if nPreds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrHorizon, nPreds)
	}
	if len(discount) != nPreds {
		return nil, fmt.Errorf("%w: got %d values for %d steps", ErrDiscountLength, len(discount), nPreds)
	}
	if err := checkFinite(discount); err != nil {
		return nil, err
	}

	values, err := m.smooth(m.params, discount)
	if err != nil {
		return nil, err
	}

	m.exog = append(m.exog, discount...)

	out := make([]float64, nPreds)
	copy(out, values[len(values)-nPreds:])
	return out, nil
}
