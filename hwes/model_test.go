package hwes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeros(n int) []float64 {
	return make([]float64, n)
}

func repeat(pattern []float64, cycles int) []float64 {
	out := make([]float64, 0, len(pattern)*cycles)
	for i := 0; i < cycles; i++ {
		out = append(out, pattern...)
	}
	return out
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		exog   []float64
		slen   int
		want   error
	}{
		{"zero period", []float64{1, 2, 3, 4}, zeros(4), 0, ErrPeriod},
		{"too short", []float64{1, 2, 3}, zeros(3), 2, ErrTooShort},
		{"non-positive", []float64{1, 0, 3, 4}, zeros(4), 2, ErrInvalidSeries},
		{"nan", []float64{1, math.NaN(), 3, 4}, zeros(4), 2, ErrInvalidSeries},
		{"short exog", []float64{1, 2, 3, 4}, zeros(3), 2, ErrExogLength},
		{"inf exog", []float64{1, 2, 3, 4}, []float64{0, math.Inf(1), 0, 0}, 2, ErrInvalidExog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.series, tt.exog, tt.slen, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewCopiesInputs(t *testing.T) {
	series := []float64{1, 2, 3, 4}
	exog := []float64{0, 0, 0, 0, 0.5}

	m, err := New(series, exog, 2, nil)
	require.NoError(t, err)

	series[0] = 100
	exog[0] = 100
	assert.Equal(t, 1.0, m.Series()[0])
	assert.Equal(t, 0.0, m.Exog()[0])
	assert.Len(t, m.Exog(), 5)
	assert.Equal(t, 2, m.Period())
	assert.Equal(t, 4, m.Len())
}

func TestSetParams(t *testing.T) {
	m, err := New([]float64{1, 2, 3, 4}, zeros(4), 2, nil)
	require.NoError(t, err)

	_, ok := m.Params()
	assert.False(t, ok)

	p := Params{Alpha: 0.5, Beta: 0.1, Gamma: 0.2, Disc: 0.3, Damp: 0.9}
	require.NoError(t, m.SetParams(p))

	got, ok := m.Params()
	assert.True(t, ok)
	assert.Equal(t, p, got)

	err = m.SetParams(Params{Alpha: math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidParams)

	got, _ = m.Params()
	assert.Equal(t, p, got, "failed SetParams must keep previous parameters")
}

func TestParamsVectorRoundTrip(t *testing.T) {
	p := Params{Alpha: 0.1, Beta: 0.2, Gamma: 0.3, Disc: 0.4, Damp: 0.5}
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4, 0.5}, p.Vector())

	_, err := ParamsFromVector([]float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestInitialSeasonalComponents(t *testing.T) {
	m, err := New(repeat([]float64{1, 2, 3}, 4), zeros(12), 3, nil)
	require.NoError(t, err)

	seasonals := m.InitialSeasonalComponents()
	require.Len(t, seasonals, 3)

	// Every season averages 2
	assert.InDelta(t, 0.5, seasonals[0], 1e-12)
	assert.InDelta(t, 1.0, seasonals[1], 1e-12)
	assert.InDelta(t, 1.5, seasonals[2], 1e-12)
}

func TestInitialSeasonalComponentsFlat(t *testing.T) {
	m, err := New(repeat([]float64{4}, 10), zeros(10), 5, nil)
	require.NoError(t, err)

	seasonals := m.InitialSeasonalComponents()
	require.Len(t, seasonals, 5)
	for i, s := range seasonals {
		assert.InDelta(t, 1.0, s, 1e-12, "phase %d", i)
	}
}

func TestInitialSeasonalComponentsIgnoresPartialSeason(t *testing.T) {
	// Last observation does not complete a season
	m, err := New([]float64{1, 3, 1, 3, 100}, zeros(5), 2, nil)
	require.NoError(t, err)

	seasonals := m.InitialSeasonalComponents()
	assert.InDelta(t, 0.5, seasonals[0], 1e-12)
	assert.InDelta(t, 1.5, seasonals[1], 1e-12)
}

func TestInitialTrend(t *testing.T) {
	const (
		slen = 4
		rise = 2.0 // per season
	)
	series := make([]float64, 3*slen)
	for i := range series {
		series[i] = 100 + rise/slen*float64(i)
	}

	m, err := New(series, zeros(len(series)), slen, nil)
	require.NoError(t, err)

	assert.InDelta(t, rise/slen, m.InitialTrend(), 1e-12)
}
