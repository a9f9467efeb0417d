// Package stats provides error metrics and residual diagnostics for
// fitted smoothing models.
//
// # Error Metrics
//
// Score in-sample or hold-out predictions against the observed values:
//
//	mape, err := stats.MAPE(actual, predicted)   // sum|y-ŷ| / sum(y) * 100
//	mae, err := stats.MAE(actual, predicted)
//	rmse, err := stats.RMSE(actual, predicted)
//	smape, err := stats.SMAPE(actual, predicted)
//
// MAPE is normalised by the total of the observed values rather than
// by each observation, so individual small observations do not
// dominate the score. It is the default objective minimised by
// hwes.Model.Fit; MetricByName selects another one by name.
//
// # Residual Diagnostics
//
// Check fitted residuals for leftover autocorrelation:
//
//	acf := stats.ACF(residuals, 10)
//	lb := stats.LjungBox(residuals, 10, 5)
//	if lb != nil && lb.PValue > 0.05 {
//	    // Residuals are white noise (good)
//	}
package stats
