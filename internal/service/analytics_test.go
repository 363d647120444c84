package service

import (
	"sync"
	"testing"
	"time"

	"artist_marketplace/internal/domain"
)

type collectingSink struct {
	mu      sync.Mutex
	batches [][]domain.LifecycleEvent
}

func (s *collectingSink) FlushEvents(events []domain.LifecycleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := make([]domain.LifecycleEvent, len(events))
	copy(batch, events)
	s.batches = append(s.batches, batch)
}

func (s *collectingSink) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.batches {
		n += len(b)
	}
	return n
}

func TestBufferedAnalyticsFlushesOnBatchSize(t *testing.T) {
	sink := &collectingSink{}
	a := NewBufferedAnalytics(3, time.Hour, sink)
	defer a.Close()

	for i := 0; i < 3; i++ {
		a.Emit(domain.EventStepCompleted, 1, map[string]any{"step": i + 1})
	}

	deadline := time.Now().Add(2 * time.Second)
	for sink.total() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("batch never flushed, got %d events", sink.total())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBufferedAnalyticsFlushesOnClose(t *testing.T) {
	sink := &collectingSink{}
	a := NewBufferedAnalytics(100, time.Hour, sink)

	a.Emit(domain.EventStepSkipped, 2, nil)
	a.Emit(domain.EventPlanSelected, 2, map[string]any{"plan": "starter"})
	a.Close()

	if sink.total() != 2 {
		t.Fatalf("close should flush buffered events, got %d", sink.total())
	}
}

func TestBufferedAnalyticsNeverBlocks(t *testing.T) {
	// no sink drain, tiny buffer: emits beyond capacity must drop, not block
	a := NewBufferedAnalytics(1, time.Hour)
	defer a.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			a.Emit(domain.EventStepCompleted, 3, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked the caller")
	}
}
