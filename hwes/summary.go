package hwes

import (
	"github.com/sartorproj/gohwes/stats"
)

// Summary describes a model with active parameters.
type Summary struct {
	Params           Params
	Period           int
	NObs             int
	MAPE             float64
	MAE              float64
	RMSE             float64
	SMAPE            float64
	InitialTrend     float64
	InitialSeasonals []float64
	Residuals        []float64
	LjungBox         *stats.LjungBoxResult // nil for short or constant residuals
}

// Summary returns fit diagnostics for the active parameters.
func (m *Model) Summary() (*Summary, error) {
	fitted, err := m.FittedValues()
	if err != nil {
		return nil, err
	}

	mape, err := stats.MAPE(m.series, fitted)
	if err != nil {
		return nil, err
	}
	mae, err := stats.MAE(m.series, fitted)
	if err != nil {
		return nil, err
	}
	rmse, err := stats.RMSE(m.series, fitted)
	if err != nil {
		return nil, err
	}

	smape, err := stats.SMAPE(m.series, fitted)
	if err != nil {
		return nil, err
	}

	residuals := m.residuals(fitted)

	return &Summary{
		Params:           m.params,
		Period:           m.slen,
		NObs:             len(m.series),
		MAPE:             mape,
		MAE:              mae,
		RMSE:             rmse,
		SMAPE:            smape,
		InitialTrend:     m.InitialTrend(),
		InitialSeasonals: m.InitialSeasonalComponents(),
		Residuals:        residuals,
		LjungBox:         stats.LjungBox(residuals, min(2*m.slen, len(residuals)/2), NumParams),
	}, nil
}
