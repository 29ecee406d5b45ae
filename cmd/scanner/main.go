package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ScalpRadar/internal/alert"
	"ScalpRadar/internal/collector"
	"ScalpRadar/internal/config"
	"ScalpRadar/internal/notifier"
	"ScalpRadar/internal/scanner"
	"ScalpRadar/internal/scheduler"
	"ScalpRadar/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ScalpRadar starting...")

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
	var fetcher collector.Fetcher
	switch cfg.DataSource.Kind {
	case "replay":
		fetcher = &collector.ReplayFetcher{Dir: cfg.DataSource.ReplayDir}
	default:
		fetcher = &collector.MockFetcher{BasePrice: 100}
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector and scanner
	col := collector.NewCollector(fetcher, cfg.Interval, cfg.LookbackBars)
	sc := &scanner.Scanner{
		Collector: col,
		Preset:    strategy.PresetByName(cfg.Preset),
		ProMode:   cfg.ProMode,
		Sessions: strategy.SessionFilter{
			AllowOpening: cfg.Sessions.AllowOpening,
			AllowMidday:  cfg.Sessions.AllowMidday,
			AllowPower:   cfg.Sessions.AllowPower,
		},
		LookbackBars: cfg.LookbackBars,
		Concurrency:  cfg.Scan.Concurrency,
	}
	log.Printf("[INFO] preset: %s, pro mode: %v", cfg.Preset, cfg.ProMode)

	// Init alert manager and console notifier
	am := alert.NewManager(
		time.Duration(cfg.Alerts.CooldownMinutes)*time.Minute,
		cfg.Alerts.ScoreThreshold,
		cfg.Alerts.MaxKept,
	)
	cn := notifier.NewConsoleNotifier()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, sc, am, cn, cfg.Watchlist)
	if err := sched.Register(cfg.Scan.Cron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] ScalpRadar is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] ScalpRadar stopped")
}
