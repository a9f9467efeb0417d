package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sartorproj/gohwes/hwes"
)

// newRootCmd builds the command with its own viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "hwesfit",
		Short: "Fit a discount-aware Holt-Winters model and forecast",
		Long: `hwesfit loads a series and its discount signal from CSV, fits the five
smoothing hyperparameters by global search and forecasts the requested
horizon.

Future discounts come from --future-discount or from trailing CSV rows
that have a discount but no observed value.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hwesfit.yaml)")
	flags.StringP("input", "i", "", "input CSV file")
	flags.String("value-column", "y", "column holding the observed series")
	flags.String("discount-column", "discount", "column holding the discount signal (empty for none)")
	flags.String("date-column", "", "column holding dates (optional)")
	flags.IntP("period", "p", hwes.DefaultPeriod, "seasonal period")
	flags.IntP("horizon", "n", 0, "forecast horizon (default: number of future discounts)")
	flags.StringSlice("future-discount", nil, "discount for each forecast step, comma separated")
	flags.String("optimizer", "de", "search strategy: de or cmaes")
	flags.String("metric", "mape", "in-sample objective: mape, smape, mae or rmse")
	flags.Uint64("seed", 0, "random seed for the search (0 seeds from the clock)")
	flags.Int("workers", 1, "concurrent objective evaluations")
	flags.Int("max-iter", 1000, "maximum differential evolution generations")
	flags.Int("popsize", 15, "population size multiplier")
	flags.Int("patience", 50, "generations without improvement before stopping")
	flags.Bool("polish", true, "refine the best point with Nelder-Mead")
	flags.String("output", "json", "output format: json or csv")
	flags.String("log-format", "console", "log format: console or json")
	flags.Bool("debug", false, "enable debug logging")

	cobra.CheckErr(v.BindPFlags(flags))

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("hwesfit")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigType("yaml")
	v.SetConfigName(".hwesfit")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}
