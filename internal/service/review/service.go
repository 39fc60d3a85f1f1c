// Package review drives the review screen: show the front question, submit
// the learner's grade, and advance the queue only after the backend has
// recorded the answer.
package review

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/myenglish-client/internal/domain"
	"github.com/heartmarshall/myenglish-client/internal/queue"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type questionQueue interface {
	CurrentQuestion() *domain.Question
	PopIf(q *domain.Question) bool
	RefillIfNeeded(ctx context.Context) error
	RefillIfLow(ctx context.Context) error
	ForceRefresh(ctx context.Context) error
	ScreenState() queue.ScreenState
	Snapshot() queue.Snapshot
}

type reviewSubmitter interface {
	SubmitReview(ctx context.Context, outcome domain.ReviewOutcome) (*domain.ReviewResult, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Stats counts submissions made through a session.
type Stats struct {
	Answered int
	Failed   int
}

// Session is one learner's pass through the review queue. It serves a single
// screen and its methods are called from one goroutine.
type Session struct {
	queue     questionQueue
	submitter reviewSubmitter
	log       *slog.Logger

	mu        sync.Mutex
	pending   *domain.Question
	committed bool
	stats     Stats

	prefetch sync.WaitGroup
}

// NewSession creates a review session over q.
func NewSession(log *slog.Logger, q questionQueue, submitter reviewSubmitter) *Session {
	return &Session{
		queue:     q,
		submitter: submitter,
		log:       log.With("service", "review"),
	}
}

// Stats returns the submission counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// ScreenState reports what the review screen should display.
func (s *Session) ScreenState() queue.ScreenState {
	s.mu.Lock()
	pending, committed := s.pending != nil, s.committed
	s.mu.Unlock()

	switch {
	case pending:
		return queue.ScreenAnsweredPendingSubmit
	case committed:
		return queue.ScreenCommitted
	default:
		return s.queue.ScreenState()
	}
}

// Snapshot returns the queue observables.
func (s *Session) Snapshot() queue.Snapshot {
	return s.queue.Snapshot()
}

// Wait blocks until background prefetches started by Answer have finished.
func (s *Session) Wait() {
	s.prefetch.Wait()
}
