package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"registro/internal/api"
	"registro/internal/api/handler/v1handler"
	"registro/internal/config"
	"registro/internal/exporter"
	"registro/internal/importer"
	"registro/internal/registry"
	"registro/internal/sheets"
	"registro/internal/stats"
	"registro/internal/worker"
	"registro/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, deps api.Deps, cfg *config.Config) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
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

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reg := registry.New(strg, registry.NewOptions(cfg))

			sheetsClient, err := sheets.NewGoogle(ctx,
				cfg.Sheets.CredentialsFile,
				cfg.Sheets.SpreadsheetID)
			if err != nil {
				logger.Fatal(ctx, "could not create sheets client", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx,
				strg.Pool,
				reg,
				sheetsClient,
				importer.New(strg),
				worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, api.Deps{Deps: v1handler.Deps{
				Registry: reg,
				Stats:    stats.New(strg),
				Exporter: exporter.New(cfg.Export.OutputDir),
			}}, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
