package service

import (
	"sync"
	"time"

	"artist_marketplace/internal/domain"
	"artist_marketplace/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	lifecycleEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_lifecycle_events_total",
			Help: "Lifecycle events emitted by the onboarding orchestrator",
		},
		[]string{"event"},
	)
	analyticsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_events_dropped_total",
			Help: "Lifecycle events dropped because the analytics buffer was full",
		},
	)
)

func init() {
	prometheus.MustRegister(lifecycleEvents)
	prometheus.MustRegister(analyticsDropped)
}

// Analytics receives lifecycle events. Implementations must never block the
// caller and must never surface an error: an analytics failure cannot fail
// the onboarding transition it describes.
type Analytics interface {
	Emit(name string, artistID int64, props map[string]any)
}

// Sink receives flushed event batches.
type Sink interface {
	FlushEvents(events []domain.LifecycleEvent)
}

// BufferedAnalytics buffers events in memory and flushes them to its sinks
// when the batch-size threshold is reached or the flush timer fires. Events
// are dropped (and counted) on overflow rather than blocking the emitter.
type BufferedAnalytics struct {
	events    chan domain.LifecycleEvent
	batchSize int
	interval  time.Duration
	sinks     []Sink

	closeOnce sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

func NewBufferedAnalytics(batchSize int, interval time.Duration, sinks ...Sink) *BufferedAnalytics {
	if batchSize <= 0 {
		batchSize = 20
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	a := &BufferedAnalytics{
		events:    make(chan domain.LifecycleEvent, batchSize*8),
		batchSize: batchSize,
		interval:  interval,
		sinks:     sinks,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	go a.run()
	return a
}

// Emit queues an event. Never blocks; drops on overflow.
func (a *BufferedAnalytics) Emit(name string, artistID int64, props map[string]any) {
	lifecycleEvents.WithLabelValues(name).Inc()

	ev := domain.LifecycleEvent{Name: name, ArtistID: artistID, Props: props, At: time.Now()}
	select {
	case a.events <- ev:
	default:
		analyticsDropped.Inc()
		logger.Warn("analytics buffer full, dropping event", "event", name, "artist_id", artistID)
	}
}

// Close flushes any buffered events and stops the flusher.
func (a *BufferedAnalytics) Close() {
	a.closeOnce.Do(func() {
		close(a.done)
		<-a.stopped
	})
}

func (a *BufferedAnalytics) run() {
	defer close(a.stopped)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	batch := make([]domain.LifecycleEvent, 0, a.batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		for _, s := range a.sinks {
			s.FlushEvents(batch)
		}
		batch = batch[:0]
	}

	for {
		select {
		case ev := <-a.events:
			batch = append(batch, ev)
			if len(batch) >= a.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-a.done:
			// drain what is already queued, then flush once
			for {
				select {
				case ev := <-a.events:
					batch = append(batch, ev)
				default:
					flush()
					return
				}
			}
		}
	}
}

// LogSink writes flushed events to the application log.
type LogSink struct{}

func (LogSink) FlushEvents(events []domain.LifecycleEvent) {
	for _, ev := range events {
		logger.Info("lifecycle event", "event", ev.Name, "artist_id", ev.ArtistID, "props", ev.Props)
	}
}
