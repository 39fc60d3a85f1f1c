// Package queue implements the review-question prefetch queue: a FIFO buffer
// of fetched questions, the controller that refills it one fetch at a time,
// and the Queue facade the review screen works against.
//
// Questions are consumed in two phases. CurrentQuestion peeks the front
// question while the user answers; PopQuestion removes it only after the
// answer has been recorded by the backend.
package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/myenglish-client/internal/domain"
	"github.com/heartmarshall/myenglish-client/internal/event"
)

const (
	DefaultBatchSize    = 20
	DefaultLowWaterMark = 1
)

// Options configure a Queue.
type Options struct {
	// BatchSize is the number of questions requested per fetch.
	BatchSize int
	// LowWaterMark is the buffer size at or below which RefillIfLow fetches.
	// Zero is valid and refills only once the buffer is empty; a negative
	// value selects DefaultLowWaterMark.
	LowWaterMark int
	// SubscriberBuffer is the channel capacity of each Subscribe call.
	SubscriberBuffer int
	Filter           domain.FilterParams
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.LowWaterMark < 0 {
		o.LowWaterMark = DefaultLowWaterMark
	}
	return o
}

// Snapshot is the observable state published to subscribers.
type Snapshot struct {
	Count      int
	Fetching   bool
	HasMore    bool
	Generation uint64
	// Err is set on the snapshot published after a failed fetch.
	Err error
}

// Exhausted reports the terminal state: nothing buffered and nothing more to fetch.
func (s Snapshot) Exhausted() bool {
	return s.Count == 0 && !s.HasMore && !s.Fetching
}

// ScreenState is the per-question state of the review screen.
type ScreenState string

const (
	ScreenNoQuestion            ScreenState = "no-question"
	ScreenFetching              ScreenState = "fetching"
	ScreenQuestionAvailable     ScreenState = "question-available"
	ScreenAnsweredPendingSubmit ScreenState = "answered-pending-submit"
	ScreenCommitted             ScreenState = "committed"
	ScreenExhausted             ScreenState = "exhausted"
)

func (s ScreenState) String() string { return string(s) }

// Queue is the only surface the UI touches. Create one per process and pass
// it to the screens that need it.
type Queue struct {
	buffer *Buffer
	ctrl   *Controller
	broker *event.Broker[Snapshot]
	log    *slog.Logger

	// pubMu makes snapshot-then-publish atomic so the last value a
	// subscriber sees is always the latest state.
	pubMu sync.Mutex
}

// New creates a Queue backed by source.
func New(log *slog.Logger, source questionSource, opts Options) *Queue {
	buffer := NewBuffer()
	q := &Queue{
		buffer: buffer,
		ctrl:   NewController(log, source, buffer, opts),
		broker: event.NewBroker[Snapshot](opts.SubscriberBuffer),
		log:    log.With("component", "queue"),
	}
	q.ctrl.OnChange(q.publish)
	return q
}

// CurrentQuestion returns the question to show without consuming it,
// or nil when the buffer is empty.
func (q *Queue) CurrentQuestion() *domain.Question {
	return q.buffer.Peek()
}

// PopQuestion removes and returns the front question. Call it only once the
// answer to that question has been durably submitted.
func (q *Queue) PopQuestion() *domain.Question {
	popped := q.buffer.Commit()
	if popped != nil {
		q.publish(nil)
	}
	return popped
}

// PopIf removes the front question only if it is still answered, so an
// answer submitted before a refresh never consumes a question from the new
// generation. It reports whether answered was removed.
func (q *Queue) PopIf(answered *domain.Question) bool {
	if !q.buffer.CommitIf(answered) {
		return false
	}
	q.publish(nil)
	return true
}

// RefillIfNeeded fetches the next batch unless a fetch is in flight or the
// source is exhausted. See Controller.RefillIfNeeded.
func (q *Queue) RefillIfNeeded(ctx context.Context) error {
	return q.ctrl.RefillIfNeeded(ctx)
}

// RefillIfLow refills only when the buffer is at or below the low-water mark.
func (q *Queue) RefillIfLow(ctx context.Context) error {
	return q.ctrl.RefillIfLow(ctx)
}

// ForceRefresh drops everything buffered, invalidates any in-flight fetch
// and refills from the start.
func (q *Queue) ForceRefresh(ctx context.Context) error {
	return q.ctrl.ForceRefresh(ctx)
}

// QueueCount returns the number of buffered questions.
func (q *Queue) QueueCount() int { return q.buffer.Len() }

// IsFetching reports whether a fetch is outstanding.
func (q *Queue) IsFetching() bool {
	return q.ctrl.State().FetchState == domain.FetchStateFetching
}

// HasMore reports whether the source may have more questions.
func (q *Queue) HasMore() bool { return q.ctrl.State().HasMore }

// NeedsRefill reports whether the buffer is at or below the low-water mark
// with a refill allowed.
func (q *Queue) NeedsRefill() bool { return q.ctrl.NeedsRefill() }

// Snapshot returns the current observable state.
func (q *Queue) Snapshot() Snapshot {
	st := q.ctrl.State()
	return Snapshot{
		Count:      st.Count,
		Fetching:   st.FetchState == domain.FetchStateFetching,
		HasMore:    st.HasMore,
		Generation: st.Generation,
	}
}

// Exhausted reports whether the queue is empty with nothing more to fetch.
func (q *Queue) Exhausted() bool { return q.Snapshot().Exhausted() }

// ScreenState derives the screen state from the queue alone. The
// answered-pending-submit and committed states are tracked by the review
// session, which knows about answers.
func (q *Queue) ScreenState() ScreenState {
	s := q.Snapshot()
	switch {
	case s.Count > 0:
		return ScreenQuestionAvailable
	case s.Fetching:
		return ScreenFetching
	case !s.HasMore:
		return ScreenExhausted
	default:
		return ScreenNoQuestion
	}
}

// Subscribe returns a stream of snapshots, one per state change.
// The caller owns the subscription and must Unsubscribe when done.
func (q *Queue) Subscribe() <-chan Snapshot { return q.broker.Subscribe() }

// Unsubscribe ends a subscription and closes its channel.
func (q *Queue) Unsubscribe(ch <-chan Snapshot) { q.broker.Unsubscribe(ch) }

// Close ends all subscriptions.
func (q *Queue) Close() { q.broker.Close() }

func (q *Queue) publish(err error) {
	q.pubMu.Lock()
	defer q.pubMu.Unlock()

	s := q.Snapshot()
	s.Err = err
	q.broker.Publish(s)
}
