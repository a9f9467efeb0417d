// Package optimize implements bounded, derivative-free global minimisation.
//
// A Minimizer takes an objective and one Bound per dimension and returns
// the best point it found. Two strategies are provided:
//
//   - DifferentialEvolution: population-based search (best1bin), the default
//     for fitting smoothing hyperparameters
//   - CMAES: covariance matrix adaptation evolution strategy backed by
//     gonum's optimize.CmaEsChol
//
// # Basic Usage
//
//	de := optimize.NewDifferentialEvolution()
//	de.Seed = 42
//	res, err := de.Minimize(func(x []float64) float64 {
//	    return x[0]*x[0] + x[1]*x[1]
//	}, []optimize.Bound{{Lo: -5, Hi: 5}, {Lo: -5, Hi: 5}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.X, res.F, res.Status)
//
// # Stopping
//
// A search stops when the population has converged, when the best value
// has not improved for Patience generations, or when its iteration or
// evaluation budget runs out. Result.Converged reports whether the stop
// was a genuine convergence (Converged, Stagnated) or budget exhaustion.
// The best point is returned in every case.
//
// # Parallel Evaluation
//
// DifferentialEvolution builds every trial vector of a generation before
// scoring any of them, so Workers > 1 scores the generation concurrently
// without changing the result for a given Seed. The objective must then
// be safe for concurrent use.
package optimize
