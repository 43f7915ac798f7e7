package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quantpulse/internal/api"
	"quantpulse/internal/collector"
	"quantpulse/internal/config"
	"quantpulse/internal/metrics"
	"quantpulse/internal/scanner"
	"quantpulse/internal/scheduler"
	"quantpulse/internal/watchlist"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] QuantPulse starting...")

	// Load config
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

	// Init fetcher
	fetcher := collector.NewYahooFetcher(cfg.Proxy, time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init session state and engines
	wl := watchlist.NewManager(cfg.Watchlist.Symbols)
	m := metrics.New()
	sc := scanner.NewScanner(fetcher, m, cfg.Scan.LookbackDays)
	cache := scanner.NewReportCache()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init background refresh
	sched := scheduler.NewScheduler(ctx, sc, wl, cache)
	if err := sched.Register(cfg.Scan.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: warm the scan cache on start
	if os.Getenv("SCAN_ON_START") == "true" {
		log.Println("[INFO] SCAN_ON_START enabled, warming scan cache")
		go sched.RunNow()
	}

	// Init HTTP server
	handler := api.NewHandler(wl, fetcher, sc, cache, m, cfg.Chart.LookbackDays)
	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: api.SetupRoutes(handler),
	}

	go func() {
		log.Printf("[INFO] listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] QuantPulse is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] QuantPulse stopped")
}
