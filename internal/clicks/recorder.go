// Package clicks records redirect events off the request path. The redirect
// handler enqueues a task and returns immediately; a background worker drains
// the queue, appends one event row per redirect and bumps the link's
// denormalized counter. Recording is best-effort: failures are logged, never
// surfaced to the client that followed the link.
package clicks

import (
	"context"
	"log"
	"time"

	"linkly-be/internal/entities"
	"linkly-be/internal/repository"
)

// opTimeout bounds each store operation performed by the worker.
const opTimeout = 5 * time.Second

type task struct {
	shortCode string
	clickedAt time.Time
	meta      entities.ClickMetadata
}

// Recorder is the fire-and-forget click recording pipeline.
type Recorder struct {
	links  repository.LinkRepository
	clicks repository.ClickRepository
	queue  chan task
	done   chan struct{}
}

// NewRecorder creates a recorder with a bounded queue. queueSize is the
// number of events that may wait for the worker before new ones are dropped.
func NewRecorder(links repository.LinkRepository, clicks repository.ClickRepository, queueSize int) *Recorder {
	return &Recorder{
		links:  links,
		clicks: clicks,
		queue:  make(chan task, queueSize),
		done:   make(chan struct{}),
	}
}

// Start launches the worker goroutine. Call Stop to shut it down.
func (r *Recorder) Start() {
	go r.run()
}

// Record enqueues one redirect for recording and returns immediately. If the
// queue is full the event is dropped and logged; a popular link must never
// slow down or fail its own redirects.
func (r *Recorder) Record(shortCode string, meta entities.ClickMetadata) {
	t := task{
		shortCode: shortCode,
		clickedAt: time.Now().UTC(),
		meta:      meta,
	}

	select {
	case r.queue <- t:
	default:
		log.Printf("Warning: click queue full, dropping event for %s", shortCode)
	}
}

// Stop closes the queue and waits for the worker to drain what was already
// enqueued, bounded by ctx. Events still queued when ctx expires are
// abandoned; recording is best-effort, not a commit guarantee.
func (r *Recorder) Stop(ctx context.Context) error {
	close(r.queue)
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for t := range r.queue {
		r.process(t)
	}
}

// process handles one event. The event insert and the counter increment are
// independent side effects: if the increment fails after the insert, the
// event log (the source of truth) and the cached counter diverge until more
// traffic arrives. Duplicate enqueues double-count; the pipeline makes no
// idempotency promise.
func (r *Recorder) process(t task) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	link, err := r.links.FindByShortCode(ctx, t.shortCode)
	if err != nil {
		// Nothing to attribute the event to.
		log.Printf("Warning: dropping click for %s: %v", t.shortCode, err)
		return
	}

	if err := r.clicks.Insert(ctx, link.ID, t.clickedAt, t.meta); err != nil {
		log.Printf("Warning: failed to insert click for %s: %v", t.shortCode, err)
	}

	if err := r.links.IncrementClicks(ctx, t.shortCode); err != nil {
		log.Printf("Warning: failed to increment clicks for %s: %v", t.shortCode, err)
	}
}
