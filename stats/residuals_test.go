package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestACF(t *testing.T) {
	n := 100
	phi := 0.8
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + (float64(i%10)-5)/10
	}

	acf := ACF(values, 10)
	require.Len(t, acf, 11)
	assert.InDelta(t, 1.0, acf[0], 1e-10)
	assert.Positive(t, acf[1])
}

func TestACFConstant(t *testing.T) {
	assert.Nil(t, ACF([]float64{3, 3, 3, 3}, 2))
}

func TestLjungBox(t *testing.T) {
	// Strongly periodic residuals should be flagged as autocorrelated
	periodic := make([]float64, 60)
	for i := range periodic {
		periodic[i] = math.Sin(float64(i) * math.Pi / 3)
	}

	lb := LjungBox(periodic, 10, 0)
	require.NotNil(t, lb)
	assert.LessOrEqual(t, lb.PValue, 0.05)
	assert.Equal(t, 10, lb.DOF)

	t.Logf("Ljung-Box Q=%.4f, p=%.4f", lb.Statistic, lb.PValue)
}

func TestLjungBoxShortInput(t *testing.T) {
	assert.Nil(t, LjungBox([]float64{1, 2, 3}, 2, 0))
}
