package input

import "sync"

// Queue is a multi-producer, single-consumer event queue.
//
// Producers are input callbacks (window polling, terminal event goroutine,
// scripted playback); the consumer is the frame tick, which drains it once.
// The queue is unbounded so that no key release or mouse delta is dropped.
type Queue struct {
	mu      sync.Mutex
	pending []Event
	spare   []Event
}

// Post enqueues ev. It never blocks on the consumer.
func (q *Queue) Post(ev Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain hands every event queued before the call to fn, in order, and
// returns how many were handled. Events posted while fn runs (including by
// fn itself) stay queued for the next Drain.
func (q *Queue) Drain(fn func(Event)) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = q.spare[:0]
	q.spare = nil
	q.mu.Unlock()

	for _, ev := range batch {
		fn(ev)
	}

	q.mu.Lock()
	if q.spare == nil {
		q.spare = batch[:0]
	}
	q.mu.Unlock()
	return len(batch)
}
