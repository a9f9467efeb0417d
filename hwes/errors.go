package hwes

import "errors"

var (
	// ErrPeriod is returned for a seasonal period below 1.
	ErrPeriod = errors.New("hwes: seasonal period must be at least 1")
	// ErrTooShort is returned when the series holds fewer than two full seasons.
	ErrTooShort = errors.New("hwes: series must cover at least two seasonal periods")
	// ErrInvalidSeries is returned for zero, negative or non-finite observations.
	ErrInvalidSeries = errors.New("hwes: invalid series")
	// ErrExogLength is returned when the exogenous signal is shorter than the series.
	ErrExogLength = errors.New("hwes: exogenous signal shorter than series")
	// ErrInvalidExog is returned for non-finite exogenous or discount values.
	ErrInvalidExog = errors.New("hwes: exogenous values must be finite")
	// ErrInvalidParams is returned for non-finite hyperparameters or a
	// vector of the wrong length.
	ErrInvalidParams = errors.New("hwes: invalid hyperparameters")
	// ErrNotFitted is returned when no hyperparameters have been set or fitted.
	ErrNotFitted = errors.New("hwes: model has no hyperparameters; call Fit or SetParams")
	// ErrHorizon is returned for a forecast horizon below 1.
	ErrHorizon = errors.New("hwes: forecast horizon must be at least 1")
	// ErrDiscountLength is returned when the discount does not match the horizon.
	ErrDiscountLength = errors.New("hwes: discount length must equal forecast horizon")
	// ErrDegenerate is returned when the recurrence hits a zero seasonal
	// factor, a zero level or a non-finite value.
	ErrDegenerate = errors.New("hwes: degenerate smoothing state")
)
