package cloudsync

import (
	"context"
	"log"
	"sync"
	"time"

	"go-cart-api/internal/cart/model"
	"go-cart-api/internal/store/cloudstore"
)

// Queue pushes cart snapshots to the cloud store without making callers wait.
// Per identity it keeps at most one write in flight; snapshots enqueued while
// a write is running collapse to the newest one (last-write-wins), so the
// store converges on the latest state without unbounded backlog.
//
// Failed writes are logged and dropped, never retried on a timer: the next
// mutation enqueues the latest snapshot anyway, which is the retry.
type Queue struct {
	store        cloudstore.Store
	writeTimeout time.Duration

	mu       sync.Mutex
	inflight map[string]bool
	pending  map[string]model.Cart
	wg       sync.WaitGroup
}

func NewQueue(store cloudstore.Store, writeTimeout time.Duration) *Queue {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &Queue{
		store:        store,
		writeTimeout: writeTimeout,
		inflight:     make(map[string]bool),
		pending:      make(map[string]model.Cart),
	}
}

// Enqueue schedules a cart write for an identity and returns immediately.
func (q *Queue) Enqueue(identity string, c model.Cart) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.inflight[identity] {
		q.pending[identity] = c
		return
	}

	q.inflight[identity] = true
	q.wg.Add(1)
	go q.flush(identity, c)
}

func (q *Queue) flush(identity string, c model.Cart) {
	defer q.wg.Done()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), q.writeTimeout)
		err := q.store.PutCart(ctx, identity, c)
		cancel()
		if err != nil {
			log.Printf("[SYNC] cloud write failed for %s: %v", identity, err)
		}

		q.mu.Lock()
		next, ok := q.pending[identity]
		if !ok {
			delete(q.inflight, identity)
			q.mu.Unlock()
			return
		}
		delete(q.pending, identity)
		q.mu.Unlock()
		c = next
	}
}

// Wait blocks until every in-flight and pending write has completed. Intended
// for shutdown and for tests asserting the converged store state.
func (q *Queue) Wait() {
	q.wg.Wait()
}
