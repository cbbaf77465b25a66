package crawler

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultInterval = 3 * time.Hour

// Scheduler runs a cron once at start and then on every interval
type Scheduler struct {
	cron     Cron
	interval time.Duration
}

// NewScheduler - new scheduler for the cron
func NewScheduler(cron Cron, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Scheduler{
		cron:     cron,
		interval: interval,
	}
}

// Start blocks until ctx is done. Each run is started in its own goroutine
// so a hanging run does not hold back the timer.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.WithFields(log.Fields{"prefix": logPrefix, "interval": s.interval}).Info("scheduler started")
	go s.trigger(ctx)

	for {
		select {
		case <-ctx.Done():
			log.WithField("prefix", logPrefix).Info("scheduler stopped")
			return
		case <-ticker.C:
			go s.trigger(ctx)
		}
	}
}

func (s *Scheduler) trigger(ctx context.Context) {
	err := s.cron.Run(ctx)
	if errors.Is(err, ErrRefreshInProgress) {
		log.WithField("prefix", logPrefix).Warn("previous refresh still running, skip")
	}
}
