package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hvac_assistant/internal/assistant"
)

type pruneRecorder struct {
	cutoffs []time.Time
	n       int
}

func (p *pruneRecorder) PruneIdle(cutoff time.Time) int {
	p.cutoffs = append(p.cutoffs, cutoff)
	return p.n
}

func TestSessionJanitor_SweepUsesTTL(t *testing.T) {
	rec := &pruneRecorder{n: 3}
	j := NewSessionJanitor(rec, 30*time.Minute, nil)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := j.sweep(now); got != 3 {
		t.Fatalf("sweep = %d, want 3", got)
	}
	want := time.Date(2025, 1, 1, 11, 30, 0, 0, time.UTC)
	if len(rec.cutoffs) != 1 || !rec.cutoffs[0].Equal(want) {
		t.Fatalf("unexpected cutoffs: %v", rec.cutoffs)
	}
}

func TestSessionJanitor_RunStopsOnCancel(t *testing.T) {
	rec := &pruneRecorder{}
	j := NewSessionJanitor(rec, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestSessionJanitor_DisabledWithoutTTL(t *testing.T) {
	rec := &pruneRecorder{}
	j := NewSessionJanitor(rec, 0, nil)

	// returns immediately instead of blocking on the ticker
	j.Run(context.Background(), time.Millisecond)
	if len(rec.cutoffs) != 0 {
		t.Fatalf("expected no sweeps, got %d", len(rec.cutoffs))
	}
}

func TestAssistantService_PruneIdle(t *testing.T) {
	svc := NewAssistantService(assistant.NewPipeline(), 0, 10, nil)
	ctx := context.Background()

	stale, _ := svc.CreateSession(ctx)
	cutoff := time.Now().UTC().Add(time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	fresh, _ := svc.CreateSession(ctx)

	if n := svc.PruneIdle(cutoff); n != 1 {
		t.Fatalf("PruneIdle = %d, want 1", n)
	}
	if _, err := svc.History(ctx, stale.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("stale session should be gone, got %v", err)
	}
	if _, err := svc.History(ctx, fresh.ID); err != nil {
		t.Fatalf("fresh session should survive, got %v", err)
	}
}
