// Package hwes implements multiplicative Holt-Winters (triple exponential)
// smoothing extended with an exogenous discount regressor.
//
// The model keeps a level, a damped additive trend and one multiplicative
// seasonal factor per phase. An external discount signal d lifts the
// level by 1+disc*d at every step, so promotions and price cuts can be
// separated from the underlying seasonal pattern.
//
// # Hyperparameters
//
//   - Alpha: level smoothing
//   - Beta: trend smoothing
//   - Gamma: seasonal smoothing
//   - Disc: strength of the discount effect
//   - Damp: per-step trend damping
//
// # Basic Usage
//
// Fit the hyperparameters by global search and forecast:
//
//	model, err := hwes.New(sales, discount, 7, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := model.Fit()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("MAPE: %.2f%% (%s)\n", result.Score, result.Status)
//
//	// Planned discount for the next 14 days
//	forecasts, _ := model.Forecast(14, planned)
//
// Forecast appends the planned discount to the model's exogenous signal;
// Exog returns the extended signal.
//
// # Manual Parameters
//
// Skip the search by setting all five parameters at once:
//
//	model.SetParams(hwes.Params{Alpha: 0.5, Beta: 0.1, Gamma: 0.3, Disc: 0.2, Damp: 0.9})
//	mape, _ := model.Error()
//
// # Search Strategy
//
// Fit minimises stats.MAPE over [1e-5, 1] for every parameter with
// differential evolution. Bounds, metric and optimizer are configurable:
//
//	cfg := hwes.DefaultConfig()
//	de := optimize.NewDifferentialEvolution()
//	de.Seed = 42
//	de.Workers = runtime.GOMAXPROCS(0)
//	cfg.Minimizer = de
//	model, _ := hwes.New(sales, discount, 7, cfg)
//
// Any optimize.Minimizer can be used, for example optimize.NewCMAES().
//
// # Preconditions
//
// The series must be strictly positive and cover at least two seasonal
// periods; the exogenous signal must be at least as long as the series.
// Violations are reported by New. A recurrence that reaches a zero level
// or seasonal factor fails with ErrDegenerate.
package hwes
