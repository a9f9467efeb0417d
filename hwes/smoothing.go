package hwes

import (
	"fmt"
	"math"
)

// smooth runs the recurrence over the history and then len(discount)
// steps past it, returning every emitted value. Seasonal factors start
// from InitialSeasonalComponents on every call, so runs are independent.
//
// In-sample, the discount lift 1+disc*exog[i] scales the smoothed level
// and is applied again when the fitted value is emitted. Past the
// history the state is frozen: step m emits
// (level*(1+disc*discount[m-1]) + damp^(m-1)*trend) * seasonal.
//
// smooth only reads model state and is safe for concurrent use.
func (m *Model) smooth(p Params, discount []float64) ([]float64, error) {
	n := len(m.series)
	total := n + len(discount)
	seasonals := m.InitialSeasonalComponents()
	result := make([]float64, 0, total)

	var level, trend float64
	for i := 0; i < total; i++ {
		if i == 0 {
			level = m.series[0]
			trend = m.InitialTrend()
			result = append(result, m.series[0])
			continue
		}

		phase := i % m.slen

		if i >= n {
			step := i - n + 1
			v := (level*(1+p.Disc*discount[step-1]) + math.Pow(p.Damp, float64(step-1))*trend) * seasonals[phase]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: forecast step %d is %v", ErrDegenerate, step, v)
			}
			result = append(result, v)
			continue
		}

		y := m.series[i]
		if seasonals[phase] == 0 {
			return nil, fmt.Errorf("%w: zero seasonal factor at step %d", ErrDegenerate, i)
		}
		lift := 1 + p.Disc*m.exog[i]
		next := lift * (p.Alpha*(y/seasonals[phase]) + (1-p.Alpha)*(level+trend))
		if next == 0 {
			return nil, fmt.Errorf("%w: zero level at step %d", ErrDegenerate, i)
		}
		trend = (p.Beta*(next-level) + (1-p.Beta)*trend) * p.Damp
		seasonals[phase] = p.Gamma*(y/next) + (1-p.Gamma)*seasonals[phase]

		v := (next*lift + trend) * seasonals[phase]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: fitted value at step %d is %v", ErrDegenerate, i, v)
		}
		result = append(result, v)
		level = next
	}
	return result, nil
}
