package service

import (
	"context"
	"time"

	"hvac_assistant/internal/logger"
)

// idlePruner drops sessions with no activity since the cutoff.
type idlePruner interface {
	PruneIdle(cutoff time.Time) int
}

// SessionJanitor periodically expires idle chat sessions.
type SessionJanitor struct {
	sessions idlePruner
	ttl      time.Duration
	log      *logger.Logger
}

// NewSessionJanitor returns a janitor; a non-positive ttl disables expiry.
func NewSessionJanitor(sessions idlePruner, ttl time.Duration, log *logger.Logger) *SessionJanitor {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionJanitor{sessions: sessions, ttl: ttl, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (j *SessionJanitor) Run(ctx context.Context, tick time.Duration) {
	if j.ttl <= 0 || tick <= 0 {
		return
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			j.sweep(now)
		}
	}
}

func (j *SessionJanitor) sweep(now time.Time) int {
	n := j.sessions.PruneIdle(now.Add(-j.ttl))
	if n > 0 {
		j.log.Infow("assistant_sessions_expired", "count", n, "ttl", j.ttl.String())
	}
	return n
}
