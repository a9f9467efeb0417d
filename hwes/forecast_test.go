package hwes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedModel(t *testing.T, p Params) *Model {
	t.Helper()
	m, err := New(alternating, zeros(len(alternating)), 2, nil)
	require.NoError(t, err)
	require.NoError(t, m.SetParams(p))
	return m
}

func TestForecastContinuesPattern(t *testing.T) {
	m := fixedModel(t, Params{Alpha: 1, Beta: 1e-5, Gamma: 1e-5, Disc: 0.5, Damp: 1e-5})

	forecasts, err := m.Forecast(4, []float64{0, 0, 0, 0})
	require.NoError(t, err)
	require.Len(t, forecasts, 4)

	want := []float64{10, 12, 10, 12}
	for i, w := range want {
		assert.InDelta(t, w, forecasts[i], 1e-3, "step %d", i+1)
	}
}

func TestForecastStepByStep(t *testing.T) {
	series := []float64{10, 20, 12, 24}
	exog := []float64{0, 0.5, 0, 1}
	m, err := New(series, exog, 2, nil)
	require.NoError(t, err)
	require.NoError(t, m.SetParams(Params{Alpha: 0.5, Beta: 0.4, Gamma: 0.3, Disc: 0.2, Damp: 0.8}))

	// trend 1.5, seasonals [2/3, 4/3]; after the history the state is
	// level 22.3015, trend 2.5090, seasonals [0.67381, 1.26435].
	fitted, err := m.FittedValues()
	require.NoError(t, err)
	wantFitted := []float64{10, 24.501140423098917, 13.021500554062737, 37.00842961633777}
	require.Len(t, fitted, len(wantFitted))
	for i, w := range wantFitted {
		assert.InDelta(t, w, fitted[i], 1e-9, "fitted %d", i)
	}

	// Step m lifts the level by discount[m-1] and damps the trend by damp^(m-1).
	forecasts, err := m.Forecast(3, []float64{0.5, 0, 1})
	require.NoError(t, err)
	want := []float64{18.220188135226927, 30.734616339887367, 19.11426858248042}
	require.Len(t, forecasts, len(want))
	for i, w := range want {
		assert.InDelta(t, w, forecasts[i], 1e-9, "step %d", i+1)
	}
}

func TestForecastDiscountLength(t *testing.T) {
	m := fixedModel(t, Params{Alpha: 0.5, Beta: 0.5, Gamma: 0.5, Disc: 0.5, Damp: 0.5})
	before := m.Exog()

	_, err := m.Forecast(3, []float64{0, 0})
	assert.ErrorIs(t, err, ErrDiscountLength)

	_, err = m.Forecast(1, []float64{0, 0})
	assert.ErrorIs(t, err, ErrDiscountLength)

	_, err = m.Forecast(0, nil)
	assert.ErrorIs(t, err, ErrHorizon)

	_, err = m.Forecast(1, []float64{math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidExog)

	assert.Equal(t, before, m.Exog(), "failed forecasts must not extend the signal")
}

func TestForecastNotFitted(t *testing.T) {
	m, err := New(alternating, zeros(len(alternating)), 2, nil)
	require.NoError(t, err)

	_, err = m.Forecast(2, []float64{0, 0})
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestForecastExtendsExog(t *testing.T) {
	m := fixedModel(t, Params{Alpha: 0.5, Beta: 0.5, Gamma: 0.5, Disc: 0.5, Damp: 0.5})

	_, err := m.Forecast(2, []float64{0.1, 0.2})
	require.NoError(t, err)
	_, err = m.Forecast(1, []float64{0.3})
	require.NoError(t, err)

	exog := m.Exog()
	require.Len(t, exog, len(alternating)+3)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, exog[len(alternating):])
}

func TestForecastDiscountEffect(t *testing.T) {
	base := Params{Alpha: 0.4, Beta: 0.2, Gamma: 0.3, Disc: 0, Damp: 0.9}
	lifted := base
	lifted.Disc = 0.5

	discount := []float64{0.4, 0.4, 0.4}

	plain, err := fixedModel(t, base).Forecast(3, discount)
	require.NoError(t, err)
	promo, err := fixedModel(t, lifted).Forecast(3, discount)
	require.NoError(t, err)

	// In-sample exog is zero, so only the horizon discount differs
	for i := range plain {
		assert.Greater(t, promo[i], plain[i], "step %d", i+1)
	}
}

func TestForecastTrendDamping(t *testing.T) {
	series := make([]float64, 12)
	for i := range series {
		series[i] = 100 + 2*float64(i)
	}
	m, err := New(series, zeros(12), 3, nil)
	require.NoError(t, err)
	require.NoError(t, m.SetParams(Params{Alpha: 0.8, Beta: 0.5, Gamma: 1e-5, Disc: 0, Damp: 0.5}))

	forecasts, err := m.Forecast(6, zeros(6))
	require.NoError(t, err)

	// Damped trend: consecutive steps of the same phase get closer together
	first := forecasts[3] - forecasts[0]
	second := forecasts[4] - forecasts[1]
	assert.GreaterOrEqual(t, math.Abs(first), math.Abs(second))
}
