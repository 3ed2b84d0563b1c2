package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"B3Advisor/internal/analyzer"
	"B3Advisor/internal/cache"
	"B3Advisor/internal/collector"
	"B3Advisor/internal/config"
	"B3Advisor/internal/recorder"
	"B3Advisor/internal/scheduler"
	"B3Advisor/internal/server"
	"B3Advisor/internal/technical"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] B3Advisor starting...")

	// Load .env (optional) and config
	godotenv.Load()
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init upstream fetchers
	quotes := collector.NewBrapiFetcher(cfg.Brapi.Token, cfg.UpstreamTimeout())
	fundamentals := collector.NewFundamentusFetcher(cfg.UpstreamTimeout())
	col := collector.NewCollector(quotes, fundamentals)
	log.Printf("[INFO] quote source: %s, fundamentals source: %s", quotes.Name(), fundamentals.Name())

	// Init optional technical scorer
	var tech technical.Scorer
	if cfg.TechnicalEnabled() {
		yahoo := technical.NewYahooScorer(cfg.UpstreamTimeout())
		tech = yahoo
		log.Printf("[INFO] technical scorer: %s", yahoo.Name())
	} else {
		log.Println("[INFO] technical scorer disabled")
	}

	// Init result cache
	resultCache := cache.New(cfg.CacheValidity())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	an := analyzer.New(col, tech, resultCache, rec)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler (cache sweep + watchlist warmup)
	sched := scheduler.NewScheduler(ctx, an, resultCache, cfg.Watchlist.Tickers)
	if err := sched.RegisterAll(cfg.Cache.SweepCron, cfg.Watchlist.WarmupCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start HTTP server
	srv := server.New(cfg.Server.Addr, an)
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	log.Println("[INFO] B3Advisor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case err := <-errCh:
		log.Printf("[ERROR] http server: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] server shutdown: %v", err)
	}
	cancel()
	log.Println("[INFO] B3Advisor stopped")
}
