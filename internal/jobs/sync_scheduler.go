package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"missioncontrol/internal/syncer"

	"github.com/go-co-op/gocron/v2"
)

// SyncScheduler runs the state sync pipeline on a fixed interval inside the
// server process, as an alternative to cron driving the standalone binary.
type SyncScheduler struct {
	scheduler gocron.Scheduler
	pipeline  *syncer.Pipeline
	interval  time.Duration
}

// NewSyncScheduler creates a scheduler; it does nothing until Start.
func NewSyncScheduler(pipeline *syncer.Pipeline, interval time.Duration) (*SyncScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &SyncScheduler{scheduler: scheduler, pipeline: pipeline, interval: interval}, nil
}

// Start schedules the recurring sync and returns immediately.
func (s *SyncScheduler) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), s.interval)
			defer cancel()

			outcomes := s.pipeline.Run(ctx)
			failed := 0
			for _, out := range outcomes {
				if out.Status == syncer.StatusFailed {
					failed++
				}
			}
			if failed > 0 {
				log.Printf("⚠️ [SYNC] Completed with %d/%d sources failed", failed, len(outcomes))
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}

	s.scheduler.Start()
	log.Printf("⏰ [SYNC] State sync scheduled every %s", s.interval)
	return nil
}

// Stop shuts the scheduler down, waiting for a running sync to finish.
func (s *SyncScheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Printf("⚠️ [SYNC] Scheduler shutdown: %v", err)
	}
}
