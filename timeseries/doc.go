// Package timeseries provides the data structures fed to the smoothing model.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//	if err := series.Validate(); err != nil {
//	    // zero, negative or non-finite values
//	}
//
// # Loading from CSV
//
// A Frame pairs an observed column with an aligned discount column:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "sales"
//	opts.DiscountColumn = "promo"
//	frame, err := timeseries.LoadCSV("sales.csv", opts)
//
// Trailing rows that have a discount but no observed value are returned
// in frame.FutureDiscount:
//
//	ds,sales,promo
//	2024-01-01,120,0
//	2024-01-02,180,0.2
//	2024-01-03,,0.1     <- future discount
//
// Blank values inside the history are rejected with ErrGap; the model
// assumes a complete, regularly sampled series.
//
// # Writing Forecasts
//
//	err := timeseries.WriteForecastCSV(os.Stdout, forecasts, discount)
package timeseries
