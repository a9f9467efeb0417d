package hwes

// InitialTrend estimates the starting trend from the first two seasons:
// the season-over-season differences are divided by slen, summed, and
// divided by slen again. A series rising by k per season starts with
// trend k/slen.
func (m *Model) InitialTrend() float64 {
	sum := 0.0
	for i := 0; i < m.slen; i++ {
		sum += (m.series[i+m.slen] - m.series[i]) / float64(m.slen)
	}
	return sum / float64(m.slen)
}

// InitialSeasonalComponents returns one multiplicative factor per phase:
// the average over complete seasons of each observation divided by its
// season's mean. Trailing observations that do not fill a season are
// ignored.
func (m *Model) InitialSeasonalComponents() []float64 {
	nSeasons := len(m.series) / m.slen

	averages := make([]float64, nSeasons)
	for j := range averages {
		sum := 0.0
		for _, v := range m.series[j*m.slen : (j+1)*m.slen] {
			sum += v
		}
		averages[j] = sum / float64(m.slen)
	}

	seasonals := make([]float64, m.slen)
	for i := range seasonals {
		sum := 0.0
		for j := 0; j < nSeasons; j++ {
			sum += m.series[j*m.slen+i] / averages[j]
		}
		seasonals[i] = sum / float64(nSeasons)
	}
	return seasonals
}
