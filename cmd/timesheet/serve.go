package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taxi-timesheet/internal/config"
	"taxi-timesheet/internal/locale"
	"taxi-timesheet/internal/logger"
	"taxi-timesheet/internal/report"
	"taxi-timesheet/internal/storage"
	"taxi-timesheet/internal/web"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the timesheet web service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the YAML config (defaults to $CONFIG_PATH)")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.MustLoad(), nil
	}
	return config.Load(path)
}

func serve(cfg *config.Config) error {
	log := logger.SetupLogger(cfg.Env)
	slog.SetDefault(log)
	slog.Info("config loaded",
		"env", cfg.Env,
		"addr", cfg.HTTPServer.Address,
		"sheet_ttl", cfg.Sheets.TTL,
		"year", cfg.Sheets.Year,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo := storage.NewRepository(storage.NewStorage(ctx, cfg.Sheets.TTL, cfg.Sheets.SweepInterval))
	handler := web.NewHandler(repo, locale.German, cfg.Sheets.DefaultMonth, cfg.Sheets.Year)
	reports := report.NewHandler(repo, locale.German, cfg.Sheets.Year)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      web.NewRouter(handler, reports, cfg.CORS.AllowedOrigins),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting http server", "addr", cfg.HTTPServer.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down http server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
		return err
	}
	return nil
}
