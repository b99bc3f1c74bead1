package services

import (
	"context"
	"log"
	"time"
)

// SnapshotRefresher periodically refetches the shell's card snapshot so
// cards added by other clients show up without a manual refresh.
type SnapshotRefresher struct {
	shell    *Shell
	interval time.Duration
}

func NewSnapshotRefresher(shell *Shell, interval time.Duration) *SnapshotRefresher {
	return &SnapshotRefresher{shell: shell, interval: interval}
}

// Start blocks until ctx is done. A non-positive interval disables it.
func (r *SnapshotRefresher) Start(ctx context.Context) {
	if r.interval <= 0 {
		return
	}
	log.Printf("Snapshot refresher started: every %s", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Snapshot refresher stopping...")
			return
		case <-ticker.C:
			// Failures already raise a banner and keep the old snapshot
			_ = r.shell.Refresh(ctx)
		}
	}
}
