package jobs

import (
	"context"
	"log"
	"time"
)

// StatsRefresher recomputes the directory stats snapshot
type StatsRefresher interface {
	Refresh(ctx context.Context) error
}

// StatsRefreshJob keeps the cached directory stats warm so the admin
// dashboard never waits on the aggregate queries
type StatsRefreshJob struct {
	refresher StatsRefresher
	interval  time.Duration
	stop      chan struct{}
}

func NewStatsRefreshJob(refresher StatsRefresher, interval time.Duration) *StatsRefreshJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatsRefreshJob{
		refresher: refresher,
		interval:  interval,
		stop:      make(chan struct{}),
	}
}

func (j *StatsRefreshJob) Start(ctx context.Context) {
	log.Println("🕐 Starting stats refresh job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Stats refresh job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Stats refresh job stopped")
			return
		case <-ticker.C:
			if err := j.refresher.Refresh(ctx); err != nil {
				log.Printf("❌ Error refreshing directory stats: %v", err)
			}
		}
	}
}

func (j *StatsRefreshJob) Stop() {
	close(j.stop)
}
