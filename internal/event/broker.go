// Package event provides a small in-process publish/subscribe broker used to
// expose queue state to UI code as a stream of values.
package event

import "sync"

const defaultBufferSize = 16

// Broker fans out published values to subscriber channels.
// Publish never blocks: when a subscriber's buffer is full its oldest pending
// value is dropped so the most recent value is always delivered.
type Broker[T any] struct {
	mu          sync.Mutex
	subscribers map[chan T]struct{}
	bufferSize  int
	closed      bool
}

// NewBroker creates a broker whose subscriber channels hold up to bufferSize
// pending values. A non-positive size selects the default.
func NewBroker[T any](bufferSize int) *Broker[T] {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Broker[T]{
		subscribers: make(map[chan T]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a new subscriber. The channel is closed by Unsubscribe
// or Close. Subscribing to a closed broker returns a closed channel.
func (b *Broker[T]) Subscribe() <-chan T {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan T, b.bufferSize)
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes the subscription. Unknown channels are ignored.
func (b *Broker[T]) Unsubscribe(sub <-chan T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subscribers {
		if ch == sub {
			delete(b.subscribers, ch)
			close(ch)
			return
		}
	}
}

// Publish delivers v to every subscriber.
func (b *Broker[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subscribers {
		for {
			select {
			case ch <- v:
			default:
				// Full: drop the oldest pending value and retry.
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

// Len returns the number of active subscribers.
func (b *Broker[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

// Close closes all subscriber channels. Later publishes are dropped.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = make(map[chan T]struct{})
}
