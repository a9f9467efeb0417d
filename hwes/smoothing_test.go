package hwes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothConstantSeries(t *testing.T) {
	const c = 5.0
	series := repeat([]float64{c}, 12)

	m, err := New(series, zeros(12), 3, nil)
	require.NoError(t, err)

	for _, p := range []Params{
		{Alpha: 0.1, Beta: 0.1, Gamma: 0.1, Disc: 0.5, Damp: 0.9},
		{Alpha: 0.9, Beta: 0.5, Gamma: 0.7, Disc: 1, Damp: 1},
		{Alpha: 1e-5, Beta: 1e-5, Gamma: 1e-5, Disc: 1e-5, Damp: 1e-5},
	} {
		require.NoError(t, m.SetParams(p))
		fitted, err := m.FittedValues()
		require.NoError(t, err)
		require.Len(t, fitted, len(series))
		for i, v := range fitted {
			assert.InDelta(t, c, v, 1e-9, "params %s step %d", p, i)
		}

		score, err := m.Error()
		require.NoError(t, err)
		assert.InDelta(t, 0, score, 1e-9)
	}
}

func TestSmoothFirstStep(t *testing.T) {
	series := []float64{10, 20, 12, 22, 14, 24}
	exog := []float64{0, 0.5, 0, 0, 0, 0}
	p := Params{Alpha: 0.5, Beta: 0.2, Gamma: 0.3, Disc: 0.4, Damp: 0.9}

	m, err := New(series, exog, 2, nil)
	require.NoError(t, err)
	require.NoError(t, m.SetParams(p))

	s := m.InitialSeasonalComponents()[1]
	trend := m.InitialTrend()

	lift := 1 + p.Disc*exog[1]
	level := lift * (p.Alpha*(series[1]/s) + (1-p.Alpha)*(series[0]+trend))
	trend = (p.Beta*(level-series[0]) + (1-p.Beta)*trend) * p.Damp
	s = p.Gamma*(series[1]/level) + (1-p.Gamma)*s
	// The lift is applied again on emission
	want := (level*lift + trend) * s

	fitted, err := m.FittedValues()
	require.NoError(t, err)

	assert.Equal(t, series[0], fitted[0])
	assert.InDelta(t, want, fitted[1], 1e-12)
}

func TestSmoothDeterministic(t *testing.T) {
	series := []float64{10, 20, 12, 22, 14, 24, 16, 26}
	exog := []float64{0, 0.1, 0, 0.2, 0, 0, 0.3, 0}

	m, err := New(series, exog, 2, nil)
	require.NoError(t, err)
	require.NoError(t, m.SetParams(Params{Alpha: 0.3, Beta: 0.4, Gamma: 0.5, Disc: 0.6, Damp: 0.7}))

	first, err := m.FittedValues()
	require.NoError(t, err)
	second, err := m.FittedValues()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A forecast in between must not leak state into the next run
	_, err = m.Forecast(3, []float64{0.5, 0.5, 0.5})
	require.NoError(t, err)
	third, err := m.FittedValues()
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestSmoothDegenerateLevel(t *testing.T) {
	series := []float64{10, 20, 12, 22}
	// lift 1 + 0.5*(-2) = 0 zeroes the level at step 1
	exog := []float64{0, -2, 0, 0}

	m, err := New(series, exog, 2, nil)
	require.NoError(t, err)
	require.NoError(t, m.SetParams(Params{Alpha: 0.5, Beta: 0.5, Gamma: 0.5, Disc: 0.5, Damp: 0.5}))

	_, err = m.FittedValues()
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = m.Error()
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestScoreDoesNotTouchParams(t *testing.T) {
	m, err := New([]float64{10, 20, 12, 22}, zeros(4), 2, nil)
	require.NoError(t, err)

	_, err = m.Score(Params{Alpha: 0.5, Beta: 0.5, Gamma: 0.5, Disc: 0.5, Damp: 0.5})
	require.NoError(t, err)

	_, ok := m.Params()
	assert.False(t, ok)

	_, err = m.Error()
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestResiduals(t *testing.T) {
	series := []float64{10, 20, 12, 22, 14, 24}
	m, err := New(series, zeros(6), 2, nil)
	require.NoError(t, err)
	require.NoError(t, m.SetParams(Params{Alpha: 0.5, Beta: 0.1, Gamma: 0.1, Disc: 0, Damp: 1}))

	fitted, err := m.FittedValues()
	require.NoError(t, err)
	residuals, err := m.Residuals()
	require.NoError(t, err)

	for i := range series {
		assert.InDelta(t, series[i]-fitted[i], residuals[i], 1e-12)
	}
	assert.Zero(t, residuals[0])
}
