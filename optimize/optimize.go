// Package optimize implements bounded, derivative-free global minimisation.
package optimize

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoBounds is returned when no dimensions are given.
	ErrNoBounds = errors.New("optimize: at least one bound is required")
	// ErrInvalidBounds is returned for a bound with Lo > Hi or non-finite limits.
	ErrInvalidBounds = errors.New("optimize: invalid bound")
	// ErrNoFeasible is returned when every evaluated point scored +Inf or NaN.
	ErrNoFeasible = errors.New("optimize: no feasible point found")
)

// Objective is the function to minimise. It must not modify x.
// NaN is treated as +Inf.
type Objective func(x []float64) float64

// Bound is the closed search interval of one dimension.
type Bound struct {
	Lo float64
	Hi float64
}

// Minimizer searches a box for the minimum of an objective.
type Minimizer interface {
	Minimize(f Objective, bounds []Bound) (*Result, error)
}

// Status describes why a search stopped.
type Status int

const (
	// Converged means the population collapsed within tolerance.
	Converged Status = iota
	// Stagnated means the best value stopped improving.
	Stagnated
	// IterationLimit means the generation budget ran out.
	IterationLimit
	// EvaluationLimit means the objective evaluation budget ran out.
	EvaluationLimit
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Stagnated:
		return "stagnated"
	case IterationLimit:
		return "iteration limit"
	case EvaluationLimit:
		return "evaluation limit"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a search.
type Result struct {
	X           []float64 // Best point, within bounds
	F           float64   // Objective value at X
	Iterations  int       // Generations completed
	Evaluations int       // Objective evaluations, including polishing
	Status      Status
	Polished    bool // Whether local refinement improved X
}

// Converged reports whether the search stopped on its own criterion
// rather than by exhausting a budget.
func (r *Result) Converged() bool {
	return r.Status == Converged || r.Status == Stagnated
}

func validateBounds(bounds []Bound) error {
	if len(bounds) == 0 {
		return ErrNoBounds
	}
	for i, b := range bounds {
		if math.IsNaN(b.Lo) || math.IsNaN(b.Hi) || math.IsInf(b.Lo, 0) || math.IsInf(b.Hi, 0) || b.Lo > b.Hi {
			return fmt.Errorf("%w: dimension %d [%v, %v]", ErrInvalidBounds, i, b.Lo, b.Hi)
		}
	}
	return nil
}

// scale maps a point of the unit cube into bounds.
func scale(u []float64, bounds []Bound) []float64 {
	x := make([]float64, len(u))
	for i, b := range bounds {
		x[i] = b.Lo + u[i]*(b.Hi-b.Lo)
	}
	return x
}

func clampUnit(u []float64) []float64 {
	c := make([]float64, len(u))
	for i, v := range u {
		c[i] = math.Max(0, math.Min(1, v))
	}
	return c
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}
