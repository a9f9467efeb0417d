package hwes

import (
	"fmt"
	"math"
)

// NumParams is the number of hyperparameters searched by Fit.
const NumParams = 5

// Params holds the smoothing hyperparameters. A model's Params are
// always replaced as a whole.
type Params struct {
	Alpha float64 `json:"alpha"` // Level smoothing
	Beta  float64 `json:"beta"`  // Trend smoothing
	Gamma float64 `json:"gamma"` // Seasonal smoothing
	Disc  float64 `json:"disc"`  // Scale of the exogenous discount effect on the level
	Damp  float64 `json:"damp"`  // Per-step trend damping
}

// Vector returns the parameters in Alpha, Beta, Gamma, Disc, Damp order.
func (p Params) Vector() []float64 {
	return []float64{p.Alpha, p.Beta, p.Gamma, p.Disc, p.Damp}
}

// ParamsFromVector is the inverse of Params.Vector.
func ParamsFromVector(x []float64) (Params, error) {
	if len(x) != NumParams {
		return Params{}, fmt.Errorf("%w: got %d values, want %d", ErrInvalidParams, len(x), NumParams)
	}
	p := Params{Alpha: x[0], Beta: x[1], Gamma: x[2], Disc: x[3], Damp: x[4]}
	return p, p.Validate()
}

// Validate rejects NaN and infinite values.
func (p Params) Validate() error {
	for i, v := range p.Vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidParams, paramNames[i], v)
		}
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("alpha=%.5g beta=%.5g gamma=%.5g disc=%.5g damp=%.5g",
		p.Alpha, p.Beta, p.Gamma, p.Disc, p.Damp)
}

var paramNames = [NumParams]string{"alpha", "beta", "gamma", "disc", "damp"}
