package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"service-exchangerate/internal"
	exchangerateHost "service-exchangerate/internal/exchangerate_host"
	"service-exchangerate/internal/logger"

	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands.
type app struct {
	cfg Config
	out io.Writer

	accessKey string
	tls       bool
	jsonOut   bool
	logLevel  string

	// newClient is replaced in tests.
	newClient func(opts ...exchangerateHost.Option) *exchangerateHost.Client
}

func cmdName() string {
	return filepath.Base(os.Args[0])
}

func newRootCmd(out io.Writer) *cobra.Command {
	return newApp(out).rootCmd()
}

func newApp(out io.Writer) *app {
	return &app{
		out:       out,
		newClient: exchangerateHost.New,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   cmdName(),
		Short: "exchangerate.host client",
		Long: `A command line client for the exchangerate.host API.

Currency targets are given as a single code (EUR) or a comma separated list
(EUR,USD). A single code prints a single value, a list prints one value per
currency pair. Dates are YYYY-MM-DD and must lie between 1999-01-04 and today.

Amounts are integers; conversions are exact to 8 decimal places.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.accessKey, "access-key", "", "exchangerate.host access key (overrides EXCHANGERATE_ACCESS_KEY)")
	flags.BoolVar(&a.tls, "tls", false, "Use https (overrides EXCHANGERATE_TLS, not available on the free plan)")
	flags.BoolVar(&a.jsonOut, "json", false, "Print JSON instead of tables")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	root.AddCommand(
		a.currenciesCmd(),
		a.rateCmd(),
		a.timeframeCmd(),
		a.convertCmd(),
		a.convertTimeframeCmd(),
		a.archiveCmd(),
		a.apiKeyCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("access-key") {
		cfg.AccessKey = a.accessKey
	}
	if flags.Changed("tls") {
		cfg.TLS = a.tls
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	if cfg.LogJSON {
		logger.SetJSON()
	}
	logger.SetLevel(cfg.LogLevel)
	return nil
}

// exchangeRate builds the facade over a client configured from env and flags.
func (a *app) exchangeRate(opts ...exchangerateHost.Option) *internal.ExchangeRate {
	client := a.newClient(opts...)
	rates := internal.NewExchangeRate(client)
	rates.SetServiceOptions(internal.OptionsPatch{
		TLS:       &a.cfg.TLS,
		AccessKey: &a.cfg.AccessKey,
	})
	return rates
}
