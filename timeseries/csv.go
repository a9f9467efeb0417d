package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNoData is returned when a CSV holds no observations.
	ErrNoData = errors.New("timeseries: no valid data found in CSV")
	// ErrGap is returned when an observation is missing inside the history.
	ErrGap = errors.New("timeseries: missing observation inside history")
	// ErrColumn is returned when a requested column is absent from the header.
	ErrColumn = errors.New("timeseries: column not found")
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn     string // Column name for dates (optional)
	ValueColumn    string // Column name for values (default: "y")
	DiscountColumn string // Column name for the discount signal (optional, zeros when empty)
	DateFormat     string // Date format (default: "2006-01-02")
	HasHeader      bool   // Whether CSV has header row (default: true)
	Delimiter      rune   // Field delimiter (default: ',')
	SkipRows       int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn:    "y",
		DiscountColumn: "discount",
		DateFormat:     "2006-01-02",
		HasHeader:      true,
		Delimiter:      ',',
	}
}

// Frame is an observed series with its aligned discount signal.
//
// Rows after the last observation that carry only a discount are
// collected in FutureDiscount, ready to be passed to a forecast.
type Frame struct {
	Series         *Series
	Discount       []float64
	FutureDiscount []float64
}

// LoadCSV loads a frame from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Frame, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

func isMissing(s string) bool {
	return s == "" || s == "NA" || s == "NaN" || s == "null"
}

func clean(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

// LoadCSVFromReader loads a frame from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Frame, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx, discIdx := -1, -1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i, h := range header {
			h = clean(h)
			switch {
			case h == opts.ValueColumn:
				valueIdx = i
			case opts.DiscountColumn != "" && h == opts.DiscountColumn:
				discIdx = i
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case opts.DateColumn == "" && (h == "ds" || h == "date" || h == "Date"):
				if dateIdx == -1 {
					dateIdx = i
				}
			}
		}
		if valueIdx == -1 {
			return nil, fmt.Errorf("%w: %q", ErrColumn, opts.ValueColumn)
		}
		if opts.DiscountColumn != "" && discIdx == -1 {
			return nil, fmt.Errorf("%w: %q", ErrColumn, opts.DiscountColumn)
		}
	} else {
		// Headerless layout: date, value[, discount]
		dateIdx, valueIdx = 0, 1
		if opts.DiscountColumn != "" {
			discIdx = 2
		}
	}

	var (
		values     []float64
		discount   []float64
		future     []float64
		timestamps []time.Time
		row        int
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		disc := 0.0
		if discIdx >= 0 && discIdx < len(record) && !isMissing(clean(record[discIdx])) {
			disc, err = strconv.ParseFloat(clean(record[discIdx]), 64)
			if err != nil {
				return nil, fmt.Errorf("timeseries: row %d discount: %w", row, err)
			}
		}

		valStr := ""
		if valueIdx < len(record) {
			valStr = clean(record[valueIdx])
		}
		if isMissing(valStr) {
			if len(values) == 0 {
				continue // Leading blanks
			}
			future = append(future, disc)
			continue
		}
		if len(future) > 0 {
			return nil, fmt.Errorf("%w: row %d follows a row without a value", ErrGap, row)
		}

		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("timeseries: row %d value: %w", row, err)
		}
		values = append(values, val)
		discount = append(discount, disc)

		if dateIdx >= 0 && dateIdx < len(record) {
			if ts, ok := parseDate(clean(record[dateIdx]), opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	series := New(values)
	if len(timestamps) == len(values) {
		series.Timestamps = timestamps
	}
	series.Name = opts.ValueColumn

	return &Frame{
		Series:         series,
		Discount:       discount,
		FutureDiscount: future,
	}, nil
}

// parseDate tries the configured layout and a few common fallbacks.
func parseDate(s, layout string) (time.Time, bool) {
	for _, f := range []string{layout, "2006-01-02", "2006-01-02T15:04:05", "2006/01/02", "01/02/2006"} {
		if f == "" {
			continue
		}
		if ts, err := time.Parse(f, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// WriteForecastCSV writes forecasts as "step,yhat,discount" rows.
func WriteForecastCSV(w io.Writer, forecasts, discount []float64) error {
	if len(forecasts) != len(discount) {
		return errors.New("timeseries: forecasts and discount must have the same length")
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("step,yhat,discount\n"); err != nil {
		return err
	}
	for i, v := range forecasts {
		line := strconv.Itoa(i+1) + "," +
			strconv.FormatFloat(v, 'f', -1, 64) + "," +
			strconv.FormatFloat(discount[i], 'f', -1, 64) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
