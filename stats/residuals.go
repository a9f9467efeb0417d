package stats

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ACF calculates the autocorrelation of x for lags 0 to maxLag.
// Returns nil for a constant input.
func ACF(x []float64, maxLag int) []float64 {
	n := len(x)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(x, nil)
	variance := 0.0
	for _, v := range x {
		variance += (v - mean) * (v - mean)
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (x[i] - mean) * (x[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int // Degrees of freedom
}

// LjungBox tests residuals for autocorrelation up to the given lag.
// The null hypothesis is no autocorrelation; a p-value below 0.05 rejects it.
// fitdf is the number of parameters estimated by the model.
func LjungBox(residuals []float64, lags, fitdf int) *LjungBoxResult {
	n := len(residuals)
	if n < 10 || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(residuals, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := max(lags-fitdf, 1)
	chi := distuv.ChiSquared{K: float64(dof)}

	return &LjungBoxResult{
		Statistic: q,
		PValue:    chi.Survival(q),
		Lags:      lags,
		DOF:       dof,
	}
}
