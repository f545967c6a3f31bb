package main

import (
	"errors"
	"fmt"

	"service-exchangerate/internal"
	"service-exchangerate/internal/postgresql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func (a *app) archiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Store and inspect the rate history in Postgres",
	}
	cmd.AddCommand(a.archiveRunCmd(), a.archiveListCmd())
	return cmd
}

func (a *app) archiveRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch live rates for ARCHIVE_SOURCE/ARCHIVE_SYMBOLS and store them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.requireDatabase(); err != nil {
				return err
			}
			pool, err := openPool(cmd.Context(), a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			archiver, err := newArchiver(a.cfg, a.exchangeRate(), postgresql.NewCurrencyStorage(pool))
			if err != nil {
				return err
			}
			res, err := archiver.Run(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "archived %d rates for %s on %s\n", len(res.Rates), res.Base, res.AsOfDate)
			return err
		},
	}
}

func (a *app) archiveListCmd() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "list BASE QUOTE",
		Short: "List archived rates of a currency pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.requireDatabase(); err != nil {
				return err
			}
			base, err := internal.NewCurrencyCode(args[0])
			if err != nil {
				return fmt.Errorf("BASE: %w", err)
			}
			quote, err := internal.NewCurrencyCode(args[1])
			if err != nil {
				return fmt.Errorf("QUOTE: %w", err)
			}
			s, e, err := parseRangeFlags(start, end)
			if err != nil {
				return err
			}

			pool, err := openPool(cmd.Context(), a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			rows, err := postgresql.NewCurrencyStorage(pool).ListArchived(cmd.Context(), base, quote, s, e)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(rows)
			}
			renderArchived(a.out, rows)
			return nil
		},
	}
	addRangeFlags(cmd, &start, &end)
	return cmd
}

func (a *app) apiKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage the API keys accepted by serve",
	}
	cmd.AddCommand(a.apiKeyCreateCmd(), a.apiKeyRevokeCmd())
	return cmd
}

func (a *app) apiKeyCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a key and print it once; only its hash is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireKeyStore(); err != nil {
				return err
			}
			pool, err := openPool(cmd.Context(), a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			rawKey, err := a.apiKeys(pool).Issue(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, rawKey)
			return err
		},
	}
}

func (a *app) apiKeyRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke KEY",
		Short: "Deactivate a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireKeyStore(); err != nil {
				return err
			}
			pool, err := openPool(cmd.Context(), a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := a.apiKeys(pool).Revoke(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, "revoked")
			return err
		},
	}
}

func (a *app) apiKeys(pool *pgxpool.Pool) *internal.APIKeys {
	return internal.NewAPIKeys(postgresql.NewAPIKeyStorage(pool), a.cfg.EncodingKey)
}

func (a *app) requireKeyStore() error {
	if err := a.cfg.requireDatabase(); err != nil {
		return err
	}
	if a.cfg.EncodingKey == "" {
		return errors.New("ENCODING_KEY is empty")
	}
	return nil
}
