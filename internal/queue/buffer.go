package queue

import (
	"sync"

	"github.com/gammazero/deque"
	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-client/internal/domain"
)

// Buffer is the ordered holding area for fetched but not yet committed
// questions. It is safe for concurrent use; every operation is linearizable.
// A card is held at most once.
type Buffer struct {
	mu    sync.Mutex
	items deque.Deque[*domain.Question]
	held  map[uuid.UUID]struct{}
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{held: make(map[uuid.UUID]struct{})}
}

// Append adds the batch's questions to the back in source order and returns
// how many were added. Questions whose card is already buffered are skipped.
// Empty batches are accepted.
func (b *Buffer) Append(batch domain.Batch) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.held == nil {
		b.held = make(map[uuid.UUID]struct{})
	}

	added := 0
	for _, q := range batch.Questions {
		if q == nil {
			continue
		}
		if q.CardID != uuid.Nil {
			if _, dup := b.held[q.CardID]; dup {
				continue
			}
			b.held[q.CardID] = struct{}{}
		}
		b.items.PushBack(q)
		added++
	}
	return added
}

// Peek returns the front question without removing it, or nil when empty.
// Repeated calls return the same pointer until Commit or Reset.
func (b *Buffer) Peek() *domain.Question {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.items.Len() == 0 {
		return nil
	}
	return b.items.Front()
}

// Commit removes and returns the front question, or nil when empty.
func (b *Buffer) Commit() *domain.Question {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.items.Len() == 0 {
		return nil
	}
	return b.popFront()
}

// CommitIf removes the front question only if it is q. It reports whether
// q was removed.
func (b *Buffer) CommitIf(q *domain.Question) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if q == nil || b.items.Len() == 0 || b.items.Front() != q {
		return false
	}
	b.popFront()
	return true
}

func (b *Buffer) popFront() *domain.Question {
	q := b.items.PopFront()
	delete(b.held, q.CardID)
	return q
}

// Len returns the number of buffered questions.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items.Len()
}

// IsEmpty reports whether the buffer holds no questions.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Reset drops every buffered question.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items.Clear()
	clear(b.held)
}

// Snapshot returns the buffered questions front to back.
func (b *Buffer) Snapshot() []*domain.Question {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*domain.Question, b.items.Len())
	for i := range out {
		out[i] = b.items.At(i)
	}
	return out
}
