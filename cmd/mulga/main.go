package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mulga/internal/amqp"
	"mulga/internal/catalog"
	"mulga/internal/config"
	"mulga/internal/core"
	apphttp "mulga/internal/http"
	"mulga/internal/kosis"
	applog "mulga/internal/log"
	"mulga/internal/macro"
	"mulga/internal/snapshot"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err.Error())
		os.Exit(1)
	}

	if cfg.KOSISAPIKey == "" {
		logger.Warn("KOSIS_API_KEY not set, inflation endpoints will fail",
			applog.FieldOperation, applog.OpStartup)
	}

	opts := apphttp.Options{
		Addr:      ":" + cfg.Port,
		Catalog:   catalog.Default(),
		Engine:    core.NewEngine(macro.MinimumWage, macro.AvgMonthlyWage),
		Fetcher:   kosis.NewClient(cfg.KOSISBaseURL, cfg.KOSISAPIKey, cfg.FetchTimeout),
		APIKey:    cfg.KOSISAPIKey,
		StartYear: cfg.StartYear,
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
		Logger:    logger,
	}

	if cfg.DataBackend == "sqlite" {
		repo, err := snapshot.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize snapshot store",
				applog.FieldError, err.Error(), "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		opts.Snapshots = repo
		logger.Info("Snapshot store initialized", "path", cfg.SQLiteDBPath)

		if cfg.AMQPURL != "" {
			amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
			if err != nil {
				logger.Error("Failed to initialize AMQP client", applog.FieldError, err.Error())
				os.Exit(1)
			}
			defer amqpClient.Close()
			opts.Publisher = amqpClient
			logger.Info("AMQP publisher initialized", "exchange", cfg.AMQPExchange)
		}
	}

	srv := apphttp.NewServer(opts)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String(),
			applog.FieldOperation, applog.OpShutdown)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err.Error())
		}
		cancel()
	}()

	logger.Info("Starting mulga server",
		"port", cfg.Port,
		"backend", cfg.DataBackend,
		applog.FieldOperation, applog.OpStartup)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err.Error(), "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
