package optimize

import (
	"math"

	gonumopt "gonum.org/v1/gonum/optimize"
)

// polish refines x0 with Nelder-Mead, clamping every probe into bounds.
// It returns the clamped point, its value and the evaluations spent.
func polish(f Objective, bounds []Bound, x0 []float64, maxEvals int) ([]float64, float64, int, error) {
	problem := gonumopt.Problem{
		Func: func(x []float64) float64 {
			return sanitize(f(clamp(x, bounds)))
		},
	}
	settings := &gonumopt.Settings{FuncEvaluations: maxEvals}

	r, err := gonumopt.Minimize(problem, x0, settings, &gonumopt.NelderMead{})
	if r == nil {
		return nil, 0, 0, err
	}
	if r.Status == gonumopt.Failure {
		return nil, 0, r.Stats.FuncEvaluations, err
	}
	return clamp(r.X, bounds), r.F, r.Stats.FuncEvaluations, nil
}

func clamp(x []float64, bounds []Bound) []float64 {
	c := make([]float64, len(x))
	for i, b := range bounds {
		c[i] = math.Max(b.Lo, math.Min(b.Hi, x[i]))
	}
	return c
}
