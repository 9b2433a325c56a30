package questionnaire

import (
	"context"
	"time"

	"aurelia-backend/internal/shared/telemetry"
)

// Janitor periodically drops wizards idle for longer than IdleTimeout.
type Janitor struct {
	Repo        Repo
	IdleTimeout time.Duration
	Interval    time.Duration
	Now         func() time.Time
}

// Run sweeps until ctx is cancelled. A zero IdleTimeout disables sweeping.
func (j *Janitor) Run(ctx context.Context) error {
	if j.IdleTimeout <= 0 {
		<-ctx.Done()
		return nil
	}
	interval := j.Interval
	if interval <= 0 {
		interval = j.IdleTimeout / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep runs a single pass.
func (j *Janitor) Sweep(ctx context.Context) int {
	now := time.Now().UTC()
	if j.Now != nil {
		now = j.Now()
	}
	removed, err := j.Repo.DeleteIdle(ctx, now.Add(-j.IdleTimeout))
	if err != nil {
		if ctx.Err() == nil {
			telemetry.Warn("questionnaire.sweep_failed", map[string]any{"error": err})
		}
		return 0
	}
	if removed > 0 {
		telemetry.Info("questionnaire.swept", map[string]any{"removed": removed})
	}
	return removed
}
