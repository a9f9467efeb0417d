package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sartorproj/gohwes/hwes"
	"github.com/sartorproj/gohwes/optimize"
	"github.com/sartorproj/gohwes/stats"
	"github.com/sartorproj/gohwes/timeseries"
)

var errNoHorizon = errors.New("no forecast horizon: pass --horizon, --future-discount or trailing discount rows")

// Report is the JSON document printed by hwesfit.
type Report struct {
	Input       string                 `json:"input"`
	Series      timeseries.Description `json:"series"`
	Period      int                    `json:"period"`
	Params      hwes.Params            `json:"params"`
	Metric      string                 `json:"metric"`
	Score       float64                `json:"score"`
	MAPE        float64                `json:"mape"`
	SMAPE       float64                `json:"smape"`
	MAE         float64                `json:"mae"`
	RMSE        float64                `json:"rmse"`
	Status      string                 `json:"status"`
	Converged   bool                   `json:"converged"`
	Iterations  int                    `json:"iterations"`
	Evaluations int                    `json:"evaluations"`
	Duration    string                 `json:"duration"`
	LjungBoxP   *float64               `json:"ljung_box_p,omitempty"`
	Discount    []float64              `json:"discount"`
	Forecasts   []float64              `json:"forecasts"`
}

func newLogger(w io.Writer, format string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	if format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()
}

func newMinimizer(v *viper.Viper, log zerolog.Logger) (optimize.Minimizer, error) {
	switch name := v.GetString("optimizer"); name {
	case "de", "":
		de := optimize.NewDifferentialEvolution()
		de.Seed = v.GetUint64("seed")
		de.Workers = v.GetInt("workers")
		de.MaxIter = v.GetInt("max-iter")
		de.PopSize = v.GetInt("popsize")
		de.Patience = v.GetInt("patience")
		de.Polish = v.GetBool("polish")
		de.Logger = log
		return de, nil
	case "cmaes":
		c := optimize.NewCMAES()
		c.Seed = v.GetUint64("seed")
		c.Logger = log
		return c, nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", name)
	}
}

// parseFloats accepts repeated flags as well as comma or space separated lists.
func parseFloats(values []string) ([]float64, error) {
	var out []float64
	for _, v := range values {
		for _, f := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid discount %q: %w", f, err)
			}
			out = append(out, x)
		}
	}
	return out, nil
}

// futureDiscount picks the forecast discounts and horizon. Flags win over
// trailing CSV rows; with neither, a positive horizon forecasts without
// discount.
func futureDiscount(v *viper.Viper, frame *timeseries.Frame) (int, []float64, error) {
	horizon := v.GetInt("horizon")

	discount, err := parseFloats(v.GetStringSlice("future-discount"))
	if err != nil {
		return 0, nil, err
	}
	if len(discount) == 0 {
		discount = frame.FutureDiscount
	}

	switch {
	case horizon == 0 && len(discount) == 0:
		return 0, nil, errNoHorizon
	case horizon == 0:
		horizon = len(discount)
	case len(discount) == 0:
		discount = make([]float64, horizon)
	}
	return horizon, discount, nil
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	log := newLogger(cmd.ErrOrStderr(), v.GetString("log-format"), v.GetBool("debug"))

	input := v.GetString("input")
	if input == "" {
		return errors.New("--input is required")
	}

	opts := timeseries.DefaultCSVOptions()
	opts.ValueColumn = v.GetString("value-column")
	opts.DiscountColumn = v.GetString("discount-column")
	opts.DateColumn = v.GetString("date-column")

	frame, err := timeseries.LoadCSV(input, opts)
	if err != nil {
		return fmt.Errorf("loading %s: %w", input, err)
	}
	desc := frame.Series.Describe()
	log.Info().
		Str("input", input).
		Int("observations", desc.N).
		Float64("min", desc.Min).
		Float64("mean", desc.Mean).
		Int("future_rows", len(frame.FutureDiscount)).
		Msg("loaded series")

	horizon, discount, err := futureDiscount(v, frame)
	if err != nil {
		return err
	}

	minimizer, err := newMinimizer(v, log)
	if err != nil {
		return err
	}
	metric, err := stats.MetricByName(v.GetString("metric"))
	if err != nil {
		return err
	}
	cfg := hwes.DefaultConfig()
	cfg.Minimizer = minimizer
	cfg.Metric = metric
	cfg.Logger = log

	model, err := hwes.NewFromFrame(frame, v.GetInt("period"), cfg)
	if err != nil {
		return err
	}

	fit, err := model.Fit()
	if err != nil {
		return err
	}
	if !fit.Converged() {
		log.Warn().Stringer("status", fit.Status).Msg("search stopped before converging")
	}

	forecasts, err := model.Forecast(horizon, discount)
	if err != nil {
		return err
	}

	summary, err := model.Summary()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if v.GetString("output") == "csv" {
		return timeseries.WriteForecastCSV(out, forecasts, discount)
	}

	report := Report{
		Input:       input,
		Series:      desc,
		Period:      summary.Period,
		Params:      fit.Params,
		Metric:      strings.ToLower(v.GetString("metric")),
		Score:       fit.Score,
		MAPE:        summary.MAPE,
		SMAPE:       summary.SMAPE,
		MAE:         summary.MAE,
		RMSE:        summary.RMSE,
		Status:      fit.Status.String(),
		Converged:   fit.Converged(),
		Iterations:  fit.Iterations,
		Evaluations: fit.Evaluations,
		Duration:    fit.Duration.String(),
		Discount:    discount,
		Forecasts:   forecasts,
	}
	if summary.LjungBox != nil {
		p := summary.LjungBox.PValue
		report.LjungBoxP = &p
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
