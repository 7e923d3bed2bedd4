package main

import (
	"context"
	"errors"
	"net/http"

	"directorybolt/internal/analytics"
	"directorybolt/internal/api"
	"directorybolt/internal/api/handler/v1handler"
	"directorybolt/internal/auth"
	"directorybolt/internal/billing"
	"directorybolt/internal/catalog"
	"directorybolt/internal/config"
	"directorybolt/internal/formmap"
	"directorybolt/internal/queue"
	"directorybolt/internal/worker"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/payments/stripepay"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, deps worker.Deps, pool *pgxpool.Pool) *river.Client[pgx.Tx] {
	riverClient, err := worker.Start(ctx, pool, deps, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return riverClient
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			authService, err := auth.New(strg, auth.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create auth service", zap.Error(err))
			}
			staff := auth.NewStaffAuthenticator(strg, auth.NewFallbackCredentials(cfg), cfg.Auth.BcryptCost)
			queueService := queue.New(strg, queue.NewOptions(cfg))
			billingService := billing.New(strg,
				stripepay.New(ctx, stripepay.NewOptions(cfg)),
				queueService,
				billing.NewOptions(cfg))

			tracker := analytics.NewBuffer(analytics.NewPostgresSink(strg.Pool), analytics.NewOptions(cfg))
			tracker.Start(ctx)

			workerDeps := worker.Deps{
				Storage:  strg,
				Billing:  billingService,
				Queue:    queueService,
				Auth:     authService,
				Enricher: getEnricher(cfg, strg),
			}
			if cfg.Monitor.Interval > 0 {
				store, closeStore, err := getBlobStore(ctx, cfg)
				if err != nil {
					logger.Fatal(ctx, "could not open blob store", zap.Error(err))
				}
				defer closeStore()
				publisher, closePublisher, err := getPublisher(ctx, cfg)
				if err != nil {
					logger.Fatal(ctx, "could not open event publisher", zap.Error(err))
				}
				defer closePublisher()

				renderer := formmap.NewChromeRenderer(formmap.NewChromeOptions(cfg))
				defer renderer.Close()
				workerDeps.Monitor = formmap.NewMonitor(renderer, strg, store, publisher)
			}

			riverClient := setupWorkers(ctx, cfg, workerDeps, strg.Pool)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Storage:   strg,
					Auth:      authService,
					Staff:     staff,
					Queue:     queueService,
					Billing:   billingService,
					Catalog:   catalog.New(strg),
					Analytics: tracker,
				},
				RiverClient: riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
			if err := tracker.Close(shutdownCtx); err != nil {
				logger.Error(ctx, "could not flush analytics events", zap.Error(err))
			}
		},
	}

	return cmd
}
