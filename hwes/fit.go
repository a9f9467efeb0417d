package hwes

import (
	"fmt"
	"time"

	"github.com/sartorproj/gohwes/optimize"
)

// FitResult describes a completed hyperparameter search.
type FitResult struct {
	Params      Params
	Score       float64 // Metric value at Params
	Iterations  int
	Evaluations int
	Status      optimize.Status
	Polished    bool
	Duration    time.Duration
}

// Converged reports whether the search stopped on its convergence or
// stagnation rule rather than by exhausting its budget.
func (r *FitResult) Converged() bool {
	return r.Status == optimize.Converged || r.Status == optimize.Stagnated
}

// Fit searches the configured bounds for the hyperparameters that
// minimise the in-sample error and makes them the active parameters.
//
// Candidates whose recurrence degenerates are scored +Inf. On error the
// previously active parameters are left untouched.
func (m *Model) Fit() (*FitResult, error) {
	log := m.cfg.Logger.With().Str("component", "hwes").Logger()

	if len(m.cfg.Bounds) != NumParams {
		return nil, fmt.Errorf("%w: %d bounds, want %d", ErrInvalidParams, len(m.cfg.Bounds), NumParams)
	}

	log.Debug().
		Int("observations", len(m.series)).
		Int("period", m.slen).
		Msg("fitting hyperparameters")

	start := time.Now()
	res, err := m.cfg.Minimizer.Minimize(m.objective(), m.cfg.Bounds)
	if err != nil {
		return nil, fmt.Errorf("hwes: fit: %w", err)
	}

	p, err := ParamsFromVector(res.X)
	if err != nil {
		return nil, fmt.Errorf("hwes: fit: %w", err)
	}

	m.params, m.hasParams = p, true

	fr := &FitResult{
		Params:      p,
		Score:       res.F,
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		Status:      res.Status,
		Polished:    res.Polished,
		Duration:    time.Since(start),
	}

	log.Info().
		Stringer("params", p).
		Float64("score", fr.Score).
		Stringer("status", fr.Status).
		Int("evaluations", fr.Evaluations).
		Dur("duration", fr.Duration).
		Msg("fit complete")

	return fr, nil
}
