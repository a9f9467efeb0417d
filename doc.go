// Package gohwes provides discount-aware Holt-Winters forecasting.
//
// GoHWES fits a multiplicative triple exponential smoothing model whose
// level is lifted by an external discount or promotion signal. The five
// smoothing hyperparameters are found by derivative-free global search,
// so the model can be fitted to short, noisy retail series without
// gradients.
//
// # Features
//
//   - Multiplicative seasonality with a damped additive trend
//   - Exogenous discount regressor applied to the level
//   - Differential evolution and CMA-ES hyperparameter search
//   - Parallel, seed-reproducible candidate evaluation
//   - Percentage, absolute and squared error metrics, Ljung-Box diagnostics
//   - CSV loading of a series together with planned future discounts
//
// # Quick Start
//
//	model, err := hwes.New(sales, discount, 7, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, _ := model.Fit()
//	forecasts, _ := model.Forecast(14, planned)
//
// Or from the command line:
//
//	hwesfit --input sales.csv --value-column sales --discount-column promo --period 7
//
// # Packages
//
// The library is organized into the following packages:
//
//   - hwes: the smoothing model, fitting and forecasting
//   - optimize: bounded derivative-free minimisers
//   - stats: error metrics and residual diagnostics
//   - timeseries: series type and CSV loading
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Storn, R., & Price, K. (1997). Differential Evolution: A Simple and Efficient
//     Heuristic for Global Optimization over Continuous Spaces
package gohwes
