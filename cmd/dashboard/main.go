package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"StockBoard/internal/collector"
	"StockBoard/internal/config"
	"StockBoard/internal/recorder"
	"StockBoard/internal/scheduler"
	"StockBoard/internal/server"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if os.Getenv("APP_ENV") == "local" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	log.Info("StockBoard starting")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalw("load config", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalw("config validation", "err", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Market.AutoAdjust, cfg.Proxy)
	}
	log.Infow("data source ready", "source", fetcher.Name())

	col := collector.NewCollector(fetcher)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warnw("init sqlite recorder failed, using noop", "err", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
			log.Infow("sqlite recorder opened", "path", cfg.Database.SQLitePath)
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Optional scheduled snapshots
	if cfg.Schedule.SnapshotCron != "" {
		sched := scheduler.NewScheduler(col, rec, cfg.Market.Defaults, cfg.Schedule.LookbackDays, log)
		if err := sched.Register(cfg.Schedule.SnapshotCron); err != nil {
			log.Fatalw("register snapshot cron", "err", err)
		}
		sched.Start()
		defer sched.Stop()
		log.Infow("snapshot scheduler started", "cron", cfg.Schedule.SnapshotCron)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: server.New(col, rec, cfg, log).Routes(),
	}

	go func() {
		log.Infow("listening", "addr", cfg.Server.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("http server", "err", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnw("shutdown", "err", err)
	}
	log.Info("StockBoard stopped")
}
