package optimize

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	gonumopt "gonum.org/v1/gonum/optimize"
)

// CMAES minimises with gonum's Cholesky-based CMA-ES.
//
// The search runs in the unit cube. A probe outside it is scored at its
// projection onto the cube plus Penalty times its squared distance from
// the cube, so the objective keeps pulling the mean back inside.
type CMAES struct {
	Population     int     // Offspring per generation, 0 for gonum's default
	InitStepSize   float64 // Initial step in unit-cube coordinates (default: 0.3)
	MaxEvaluations int     // Objective evaluation budget (default: 20000)
	Penalty        float64 // Weight of the squared out-of-cube distance (default: 1000)
	Seed           uint64  // Random seed, 0 seeds from the clock
	Logger         zerolog.Logger
}

// NewCMAES returns a CMA-ES search with the default settings.
func NewCMAES() *CMAES {
	return &CMAES{
		InitStepSize:   0.3,
		MaxEvaluations: 20000,
		Penalty:        1000,
		Logger:         zerolog.Nop(),
	}
}

// Minimize implements Minimizer.
//
// gonum's function convergence rule (no improvement over 100 iterations)
// is reported as Stagnated; only the method's own covariance criterion
// counts as Converged.
func (c *CMAES) Minimize(f Objective, bounds []Bound) (*Result, error) {
	if err := validateBounds(bounds); err != nil {
		return nil, err
	}

	step := c.InitStepSize
	if step <= 0 {
		step = 0.3
	}
	maxEvals := c.MaxEvaluations
	if maxEvals <= 0 {
		maxEvals = 20000
	}
	penalty := c.Penalty
	if penalty <= 0 {
		penalty = 1000
	}
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	x0 := make([]float64, len(bounds))
	for i := range x0 {
		x0[i] = 0.5
	}

	problem := gonumopt.Problem{
		Func: func(u []float64) float64 {
			return sanitize(f(scale(clampUnit(u), bounds))) + penalty*outside(u)
		},
	}
	method := &gonumopt.CmaEsChol{
		InitStepSize: step,
		Population:   c.Population,
		Src:          rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
	settings := &gonumopt.Settings{FuncEvaluations: maxEvals}

	r, err := gonumopt.Minimize(problem, x0, settings, method)
	if r == nil || r.Status == gonumopt.Failure {
		if err == nil {
			err = errors.New("method failed")
		}
		return nil, fmt.Errorf("optimize: cma-es: %w", err)
	}
	if math.IsInf(r.F, 1) {
		return nil, ErrNoFeasible
	}

	res := &Result{
		X:           scale(clampUnit(r.X), bounds),
		F:           r.F,
		Iterations:  r.Stats.MajorIterations,
		Evaluations: r.Stats.FuncEvaluations,
		Status:      statusFromGonum(r.Status),
	}
	if outside(r.X) > 0 {
		res.F = sanitize(f(res.X))
		res.Evaluations++
	}

	c.Logger.Debug().
		Int("evaluations", res.Evaluations).
		Stringer("gonum_status", r.Status).
		Stringer("status", res.Status).
		Float64("best", res.F).
		Msg("cma-es finished")

	return res, nil
}

func statusFromGonum(s gonumopt.Status) Status {
	switch s {
	case gonumopt.MethodConverge, gonumopt.Success:
		return Converged
	case gonumopt.FunctionConvergence:
		return Stagnated
	case gonumopt.FunctionEvaluationLimit:
		return EvaluationLimit
	default:
		return IterationLimit
	}
}

// outside returns the squared distance of u from the unit cube.
func outside(u []float64) float64 {
	var d float64
	for _, v := range u {
		switch {
		case v < 0:
			d += v * v
		case v > 1:
			d += (v - 1) * (v - 1)
		}
	}
	return d
}
