package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mulga/internal/amqp"
	"mulga/internal/catalog"
	"mulga/internal/config"
	"mulga/internal/kosis"
	applog "mulga/internal/log"
	"mulga/internal/snapshot"
	"mulga/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Component: applog.ComponentWorker})
	applog.SetDefault(logger)

	logger.Info("Starting mulga-worker", applog.FieldOperation, applog.OpStartup)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err.Error())
		os.Exit(1)
	}
	if cfg.KOSISAPIKey == "" {
		logger.Error("KOSIS_API_KEY is required for the refresh worker")
		os.Exit(1)
	}

	repo, err := snapshot.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize snapshot store",
			applog.FieldError, err.Error(), "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	fetcher := kosis.NewClient(cfg.KOSISBaseURL, cfg.KOSISAPIKey, cfg.FetchTimeout)
	refresher := worker.NewRefreshWorker(fetcher, repo, cfg.StartYear, cfg.RefreshConcurrency, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// AMQP consumption is optional; without it the worker still runs the
	// periodic full-catalog refresh.
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", applog.FieldError, err.Error())
			os.Exit(1)
		}
		defer amqpClient.Close()

		go func() {
			if err := amqpClient.ConsumeRefreshes(ctx, refresher.HandleRefreshMessage); err != nil {
				if err != context.Canceled {
					logger.Error("Message consumption failed", applog.FieldError, err.Error())
				}
				cancel()
			}
		}()
	} else {
		logger.Info("AMQP disabled, running on the periodic schedule only")
	}

	allCodes := func() []string {
		items := catalog.Default().All()
		codes := make([]string, 0, len(items))
		for _, it := range items {
			codes = append(codes, it.Code)
		}
		return codes
	}

	// Warm the snapshot store on startup so the API has a fallback from
	// the first request on.
	go func() {
		if err := refresher.RefreshAll(ctx, allCodes()); err != nil {
			logger.Error("Startup refresh finished with failures", applog.FieldError, err.Error())
		}
	}()

	ticker := time.NewTicker(cfg.RefreshInterval)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := refresher.RefreshAll(ctx, allCodes()); err != nil {
					logger.Error("Periodic refresh finished with failures", applog.FieldError, err.Error())
				}
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String(),
			applog.FieldOperation, applog.OpShutdown)
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	cancel()

	// Give in-flight refreshes a moment to finish
	time.Sleep(2 * time.Second)
	logger.Info("Worker shutdown complete")
}
