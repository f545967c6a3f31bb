package main

import (
	"fmt"
	"strconv"
	"strings"

	"service-exchangerate/internal"

	"github.com/spf13/cobra"
)

func (a *app) currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the supported currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rates := a.exchangeRate()
			currencies, err := rates.Currencies(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(currencies)
			}
			renderPairs(a.out, []string{"Code", "Name"}, currencies)
			return nil
		},
	}
}

func (a *app) rateCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "rate FROM TO[,TO...]",
		Short: "Show today's or a historical exchange rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}
			d, err := parseOptionalDate("date", date)
			if err != nil {
				return err
			}

			rates := a.exchangeRate()
			res, err := rates.ExchangeRate(cmd.Context(), from, to, d)
			if err != nil {
				return err
			}
			return a.printResult(from, to, res)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Historical date, YYYY-MM-DD")
	return cmd
}

func (a *app) timeframeCmd() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "timeframe FROM TO[,TO...]",
		Short: "Show the exchange rates of every day in a date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}
			s, e, err := parseRangeFlags(start, end)
			if err != nil {
				return err
			}

			rates := a.exchangeRate()
			tf, err := rates.ExchangeRateBetweenDateRange(cmd.Context(), from, to, s, e)
			if err != nil {
				return err
			}
			return a.printTimeframe(tf)
		},
	}
	addRangeFlags(cmd, &start, &end)
	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "convert AMOUNT FROM TO[,TO...]",
		Short: "Convert an amount with today's or a historical rate",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}
			from, to, err := parsePairArgs(args[1], args[2])
			if err != nil {
				return err
			}
			d, err := parseOptionalDate("date", date)
			if err != nil {
				return err
			}

			rates := a.exchangeRate()
			res, err := rates.Convert(cmd.Context(), amount, from, to, d)
			if err != nil {
				return err
			}
			return a.printResult(from, to, res)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Historical date, YYYY-MM-DD")
	return cmd
}

func (a *app) convertTimeframeCmd() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "convert-timeframe AMOUNT FROM TO[,TO...]",
		Short: "Convert an amount with the rates of every day in a date range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}
			from, to, err := parsePairArgs(args[1], args[2])
			if err != nil {
				return err
			}
			s, e, err := parseRangeFlags(start, end)
			if err != nil {
				return err
			}

			rates := a.exchangeRate()
			tf, err := rates.ConvertBetweenDateRange(cmd.Context(), amount, from, to, s, e)
			if err != nil {
				return err
			}
			return a.printTimeframe(tf)
		},
	}
	addRangeFlags(cmd, &start, &end)
	return cmd
}

func addRangeFlags(cmd *cobra.Command, start, end *string) {
	cmd.Flags().StringVar(start, "start", "", "First date, YYYY-MM-DD")
	cmd.Flags().StringVar(end, "end", "", "Last date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func parsePairArgs(fromArg, toArg string) (internal.CurrencyCode, internal.Targets, error) {
	from, err := internal.NewCurrencyCode(fromArg)
	if err != nil {
		return "", internal.Targets{}, fmt.Errorf("FROM: %w", err)
	}
	to, err := internal.ParseTargets(toArg)
	if err != nil {
		return "", internal.Targets{}, fmt.Errorf("TO: %w", err)
	}
	return from, to, nil
}

func parseOptionalDate(name, raw string) (*internal.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := internal.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &d, nil
}

func parseRangeFlags(start, end string) (internal.Date, internal.Date, error) {
	s, err := internal.ParseDate(start)
	if err != nil {
		return internal.Date{}, internal.Date{}, fmt.Errorf("--start: %w", err)
	}
	e, err := internal.ParseDate(end)
	if err != nil {
		return internal.Date{}, internal.Date{}, fmt.Errorf("--end: %w", err)
	}
	return s, e, nil
}

func parseAmountArg(raw string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("AMOUNT must be an integer, got %q", raw)
	}
	return amount, nil
}
