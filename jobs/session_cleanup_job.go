package jobs

import (
	"fmt"
	"time"

	"sportconnect-api/services"
)

// SessionCleanupJob periodically drops stopped or abandoned navigation
// sessions so the tracker map does not grow without bound.
type SessionCleanupJob struct {
	tracker *services.Tracker
	maxAge  time.Duration
	ticker  *time.Ticker
	done    chan bool
}

func NewSessionCleanupJob(tracker *services.Tracker, interval, maxAge time.Duration) *SessionCleanupJob {
	return &SessionCleanupJob{
		tracker: tracker,
		maxAge:  maxAge,
		ticker:  time.NewTicker(interval),
		done:    make(chan bool),
	}
}

// Start begins the cleanup job
func (j *SessionCleanupJob) Start() {
	fmt.Println("Navigation session cleanup job started")

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Navigation session cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *SessionCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *SessionCleanupJob) cleanup() {
	if removed := j.tracker.CleanupStale(j.maxAge); removed > 0 {
		fmt.Printf("Removed %d stale navigation sessions\n", removed)
	}
}
