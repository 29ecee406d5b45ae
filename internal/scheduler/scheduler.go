package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"ScalpRadar/internal/alert"
	"ScalpRadar/internal/notifier"
	"ScalpRadar/internal/scanner"
)

// Scheduler runs periodic watchlist sweeps.
type Scheduler struct {
	Cron      *cron.Cron
	Scanner   *scanner.Scanner
	Alerts    *alert.Manager
	Notifier  notifier.Notifier
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, am *alert.Manager, n notifier.Notifier, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Scanner:   sc,
		Alerts:    am,
		Notifier:  n,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// Register registers the recurring scan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes one sweep immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Printf("[INFO] scanning %d symbols", len(s.Watchlist))
	signals := s.Scanner.Scan(s.Watchlist)

	if err := s.Notifier.SendScanReport(signals); err != nil {
		log.Printf("[ERROR] send scan report: %v", err)
	}

	for _, sig := range signals {
		a, fired := s.Alerts.Capture(sig)
		if !fired {
			continue
		}
		if err := s.Notifier.SendAlert(a); err != nil {
			log.Printf("[ERROR] send alert for %s: %v", sig.Symbol, err)
		}
	}
}
