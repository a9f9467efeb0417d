// Command hwesfit fits a discount-aware Holt-Winters model to a CSV series
// and prints forecasts.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
