package optimize

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DifferentialEvolution minimises with the best1bin strategy.
type DifferentialEvolution struct {
	PopSize           int        // Population size multiplier per dimension (default: 15)
	MaxIter           int        // Maximum generations (default: 1000)
	MaxEvaluations    int        // Objective evaluation budget excluding polish, 0 for none
	Tol               float64    // Relative convergence tolerance (default: 0.01)
	Atol              float64    // Absolute convergence tolerance (default: 0)
	Mutation          [2]float64 // Differential weight dither range (default: [0.5, 1))
	Recombination     float64    // Crossover probability (default: 0.7)
	Patience          int        // Generations without improvement before stopping (default: 50, <0 disables)
	Workers           int        // Concurrent objective evaluations (default: 1)
	Seed              uint64     // Random seed, 0 seeds from the clock
	Polish            bool       // Refine the best point with Nelder-Mead
	PolishEvaluations int        // Evaluation budget for polishing (default: 2000)
	Logger            zerolog.Logger
}

// NewDifferentialEvolution returns a search with the default settings.
func NewDifferentialEvolution() *DifferentialEvolution {
	return &DifferentialEvolution{
		PopSize:           15,
		MaxIter:           1000,
		Tol:               0.01,
		Mutation:          [2]float64{0.5, 1},
		Recombination:     0.7,
		Patience:          50,
		Workers:           1,
		Polish:            true,
		PolishEvaluations: 2000,
		Logger:            zerolog.Nop(),
	}
}

// withDefaults fills zero fields so a zero DifferentialEvolution is usable.
func (de *DifferentialEvolution) withDefaults() DifferentialEvolution {
	c := *de
	d := NewDifferentialEvolution()
	if c.PopSize <= 0 {
		c.PopSize = d.PopSize
	}
	if c.MaxIter <= 0 {
		c.MaxIter = d.MaxIter
	}
	if c.Tol <= 0 && c.Atol <= 0 {
		c.Tol = d.Tol
	}
	if c.Mutation == [2]float64{} {
		c.Mutation = d.Mutation
	}
	if c.Recombination <= 0 {
		c.Recombination = d.Recombination
	}
	if c.Patience == 0 {
		c.Patience = d.Patience
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.PolishEvaluations <= 0 {
		c.PolishEvaluations = d.PolishEvaluations
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	return c
}

// Minimize implements Minimizer.
func (de *DifferentialEvolution) Minimize(f Objective, bounds []Bound) (*Result, error) {
	if err := validateBounds(bounds); err != nil {
		return nil, err
	}
	cfg := de.withDefaults()
	log := cfg.Logger

	dim := len(bounds)
	np := max(cfg.PopSize*dim, 5)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	pop := latinHypercube(rng, np, dim)
	energies := make([]float64, np)
	cfg.evaluate(f, bounds, pop, energies)
	evals := np

	best := floats.MinIdx(energies)
	res := &Result{Status: IterationLimit}
	stale := 0

	log.Debug().
		Int("population", np).
		Int("dimensions", dim).
		Uint64("seed", cfg.Seed).
		Float64("initial_best", energies[best]).
		Msg("differential evolution started")

	trials := make([][]float64, np)
	trialEnergies := make([]float64, np)

	for gen := 1; gen <= cfg.MaxIter; gen++ {
		// The last generation under an evaluation budget only tries the
		// first members it can still afford.
		batch := np
		if cfg.MaxEvaluations > 0 {
			batch = min(np, cfg.MaxEvaluations-evals)
			if batch <= 0 {
				res.Status = EvaluationLimit
				break
			}
		}

		weight := cfg.Mutation[0]
		if cfg.Mutation[1] > cfg.Mutation[0] {
			weight += rng.Float64() * (cfg.Mutation[1] - cfg.Mutation[0])
		}

		for i := 0; i < batch; i++ {
			trials[i] = cfg.trial(rng, pop, best, i, weight)
		}
		cfg.evaluate(f, bounds, trials[:batch], trialEnergies[:batch])
		evals += batch

		prevBest := energies[best]
		for i := 0; i < batch; i++ {
			if trialEnergies[i] <= energies[i] {
				pop[i], energies[i] = trials[i], trialEnergies[i]
				if energies[i] < energies[best] {
					best = i
				}
			}
		}
		res.Iterations = gen

		log.Trace().Int("generation", gen).Float64("best", energies[best]).Float64("weight", weight).Msg("generation")

		if cfg.converged(energies) {
			res.Status = Converged
			break
		}
		if prevBest-energies[best] > cfg.Atol+1e-9*math.Abs(prevBest) {
			stale = 0
		} else {
			stale++
		}
		if cfg.Patience > 0 && stale >= cfg.Patience {
			res.Status = Stagnated
			break
		}
		if cfg.MaxEvaluations > 0 && evals >= cfg.MaxEvaluations {
			res.Status = EvaluationLimit
			break
		}
	}

	if math.IsInf(energies[best], 1) {
		return nil, ErrNoFeasible
	}

	res.X = scale(pop[best], bounds)
	res.F = energies[best]

	if cfg.Polish {
		x, fx, n, err := polish(f, bounds, res.X, cfg.PolishEvaluations)
		evals += n
		switch {
		case err != nil:
			log.Debug().Err(err).Msg("polish skipped")
		case fx < res.F:
			res.X, res.F, res.Polished = x, fx, true
		}
	}
	res.Evaluations = evals

	log.Debug().
		Int("generations", res.Iterations).
		Int("evaluations", res.Evaluations).
		Stringer("status", res.Status).
		Float64("best", res.F).
		Bool("polished", res.Polished).
		Msg("differential evolution finished")

	return res, nil
}

// trial builds the best1bin candidate for population member i in unit space.
func (de *DifferentialEvolution) trial(rng *rand.Rand, pop [][]float64, best, i int, weight float64) []float64 {
	np := len(pop)
	dim := len(pop[i])

	r1 := rng.IntN(np)
	for r1 == i {
		r1 = rng.IntN(np)
	}
	r2 := rng.IntN(np)
	for r2 == i || r2 == r1 {
		r2 = rng.IntN(np)
	}

	t := make([]float64, dim)
	copy(t, pop[i])
	jrand := rng.IntN(dim)
	for j := 0; j < dim; j++ {
		if j == jrand || rng.Float64() < de.Recombination {
			t[j] = pop[best][j] + weight*(pop[r1][j]-pop[r2][j])
		}
		if t[j] < 0 || t[j] > 1 {
			t[j] = rng.Float64()
		}
	}
	return t
}

// evaluate scores unit-space points into out, fanning out over Workers.
func (de *DifferentialEvolution) evaluate(f Objective, bounds []Bound, unit [][]float64, out []float64) {
	if de.Workers <= 1 {
		for i, u := range unit {
			out[i] = sanitize(f(scale(u, bounds)))
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(de.Workers)
	for i, u := range unit {
		g.Go(func() error {
			out[i] = sanitize(f(scale(u, bounds)))
			return nil
		})
	}
	_ = g.Wait()
}

// converged applies std(E) <= atol + tol*|mean(E)| to the population energies.
func (de *DifferentialEvolution) converged(energies []float64) bool {
	for _, e := range energies {
		if math.IsInf(e, 0) {
			return false
		}
	}
	mean, std := stat.MeanStdDev(energies, nil)
	return std <= de.Atol+de.Tol*math.Abs(mean)
}

// latinHypercube draws n stratified points from the unit cube.
func latinHypercube(rng *rand.Rand, n, dim int) [][]float64 {
	pop := make([][]float64, n)
	for i := range pop {
		pop[i] = make([]float64, dim)
	}
	seg := 1 / float64(n)
	for j := 0; j < dim; j++ {
		perm := rng.Perm(n)
		for i := 0; i < n; i++ {
			pop[i][j] = (float64(perm[i]) + rng.Float64()) * seg
		}
	}
	return pop
}
