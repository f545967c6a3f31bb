package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"service-exchangerate/internal"
	"service-exchangerate/internal/api/http/middleware"
	rateshttp "service-exchangerate/internal/api/http/rates"
	exchangerateHost "service-exchangerate/internal/exchangerate_host"
	"service-exchangerate/internal/logger"
	"service-exchangerate/internal/postgresql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled rate archive",
		Long: `Serves /api/v1/{currencies,rate,timeframe,convert,convert/timeframe} and
/metrics. With DATABASE_URL set, requests are audited in request_log and live
rates for ARCHIVE_SOURCE/ARCHIVE_SYMBOLS are archived on ARCHIVE_CRON. With
ENCODING_KEY set as well, the API requires an X-API-Key header.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg

	// metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rates := a.exchangeRate(exchangerateHost.WithMetrics(exchangerateHost.NewMetrics(reg)))

	var (
		auditLogger internal.RequestAuditLogger = internal.NopAuditLogger{}
		keys        *internal.APIKeys
		scheduler   *cron.Cron
	)

	if cfg.DatabaseURL != "" {
		pool, err := openPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		auditLogger = internal.NewStorageAuditLogger(postgresql.NewRequestLogStorage(pool))
		if cfg.EncodingKey != "" {
			keys = internal.NewAPIKeys(postgresql.NewAPIKeyStorage(pool), cfg.EncodingKey)
		}

		scheduler, err = a.archiveScheduler(ctx, rates, postgresql.NewCurrencyStorage(pool))
		if err != nil {
			return err
		}
	} else {
		logger.Log.Warn().Msg("DATABASE_URL is empty: audit log and rate archive are disabled")
	}

	// rates HTTP handler
	ratesHandler := rateshttp.New(rates, auditLogger)
	api := http.NewServeMux()
	ratesHandler.Register(api)

	var apiHandler http.Handler = api
	if keys != nil {
		apiHandler = middleware.APIKeyAuth(keys)(api)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	g, gctx := errgroup.WithContext(ctx)

	if scheduler != nil {
		g.Go(func() error {
			return runCron(gctx, scheduler)
		})
	}

	g.Go(func() error {
		return serveHTTP(gctx, ":"+cfg.HTTPPort, mux)
	})

	logger.Log.Info().Msg("Running. Stop with Ctrl+C / SIGTERM.")
	return g.Wait()
}

func (a *app) archiveScheduler(ctx context.Context, rates *internal.ExchangeRate, storage internal.QuoteArchive) (*cron.Cron, error) {
	cfg := a.cfg
	archiver, err := newArchiver(cfg, rates, storage)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.ArchiveLocation)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", cfg.ArchiveLocation, err)
	}
	scheduler := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
	)

	_, err = scheduler.AddFunc(cfg.ArchiveCron, func() {
		runArchive(ctx, archiver, "scheduled")
	})
	if err != nil {
		return nil, fmt.Errorf("add cron func: %w", err)
	}

	// instant fetch
	runArchive(ctx, archiver, "initial")
	return scheduler, nil
}

func newArchiver(cfg Config, rates *internal.ExchangeRate, storage internal.QuoteArchive) (*internal.Archiver, error) {
	source, err := internal.NewCurrencyCode(cfg.ArchiveSource)
	if err != nil {
		return nil, fmt.Errorf("ARCHIVE_SOURCE: %w", err)
	}
	if len(cfg.ArchiveSymbols) == 0 {
		return nil, errors.New("ARCHIVE_SYMBOLS is empty")
	}
	symbols := make([]internal.CurrencyCode, len(cfg.ArchiveSymbols))
	for i, s := range cfg.ArchiveSymbols {
		symbols[i] = internal.CurrencyCode(s)
	}
	return internal.NewArchiver(rates, storage, source, symbols), nil
}

func runArchive(ctx context.Context, archiver *internal.Archiver, trigger string) {
	res, err := archiver.Run(ctx)
	if err != nil {
		logger.Log.Error().Err(err).Str("trigger", trigger).Msg("archive run failed")
		return
	}
	logger.Log.Info().
		Str("trigger", trigger).
		Str("base", res.Base.String()).
		Str("date", res.AsOfDate.String()).
		Int("rates", len(res.Rates)).
		Msg("rates archived")
}

func openPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(dbCtx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := postgresql.NewMigrations(pool).Setup(dbCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure tables: %w", err)
	}
	return pool, nil
}

func runCron(ctx context.Context, c *cron.Cron) error {
	c.Start()
	defer func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}()

	<-ctx.Done()
	return nil
}

func serveHTTP(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	logger.Log.Info().Str("addr", addr).Msg("HTTP listening")
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
