// Package changefeed fans key changes out to store watchers.
package changefeed

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/shades/internal/application/port"
)

const defaultBuffer = 64

// Feed delivers published changes to every live subscriber.
// Publishing never blocks: a subscriber whose buffer is full misses the change.
type Feed struct {
	mu     sync.Mutex
	subs   map[uint64]chan port.KeyChange
	next   uint64
	buffer int
	closed bool
	done   chan struct{}
	drops  atomic.Uint64

	// watchers counts the goroutines that unsubscribe on ctx cancel.
	watchers sync.WaitGroup
}

// New creates a feed with the given per-subscriber buffer.
func New(buffer int) *Feed {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Feed{
		subs:   make(map[uint64]chan port.KeyChange),
		buffer: buffer,
		done:   make(chan struct{}),
	}
}

// Subscribe registers a subscriber. Its channel closes when ctx is done or
// the feed is closed.
func (f *Feed) Subscribe(ctx context.Context) <-chan port.KeyChange {
	ch := make(chan port.KeyChange, f.buffer)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		close(ch)
		return ch
	}
	id := f.next
	f.next++
	f.subs[id] = ch
	f.watchers.Add(1)
	f.mu.Unlock()

	go func() {
		defer f.watchers.Done()
		select {
		case <-ctx.Done():
			f.unsubscribe(id)
		case <-f.done:
		}
	}()

	return ch
}

func (f *Feed) unsubscribe(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ch, ok := f.subs[id]; ok {
		delete(f.subs, id)
		close(ch)
	}
}

// Publish sends change to every subscriber without blocking.
func (f *Feed) Publish(change port.KeyChange) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case ch <- change:
		default:
			f.drops.Add(1)
		}
	}
}

// Subscribers returns the number of live subscribers.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Drops returns how many deliveries were skipped because a buffer was full.
func (f *Feed) Drops() uint64 {
	return f.drops.Load()
}

// Close closes every subscriber channel. Later subscriptions get a closed channel.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	close(f.done)
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}
