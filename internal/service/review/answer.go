package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/myenglish-client/internal/domain"
)

// maxDuration is the longest answer time the backend accepts.
const maxDuration = 10 * time.Minute

// Answer submits grade for the current question. The question is popped only
// after the backend accepted the answer; on failure it stays at the front so
// the learner can retry. A refill for the low-water mark is started in the
// background after a successful pop.
//
// Answer waits for that prefetch before submitting: the study queue drops a
// reviewed card from its front, and a fetch counted against the old buffer
// would skip an unseen question.
func (s *Session) Answer(ctx context.Context, grade domain.ReviewGrade, took time.Duration) (*domain.ReviewResult, error) {
	q := s.queue.CurrentQuestion()
	if q == nil {
		return nil, fmt.Errorf("answer: %w", domain.ErrNotFound)
	}

	outcome := domain.ReviewOutcome{
		CardID: q.CardID,
		Grade:  grade,
	}
	if took > 0 {
		ms := int(min(took, maxDuration) / time.Millisecond)
		outcome.DurationMs = &ms
	}
	if err := outcome.Validate(); err != nil {
		return nil, err
	}

	s.prefetch.Wait()

	s.mu.Lock()
	s.pending = q
	s.committed = false
	s.mu.Unlock()

	result, err := s.submitter.SubmitReview(ctx, outcome)

	s.mu.Lock()
	s.pending = nil
	if err != nil {
		s.stats.Failed++
		s.mu.Unlock()

		s.log.WarnContext(ctx, "review not recorded, question kept",
			slog.String("question", q.Key.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("submit review: %w", err)
	}
	s.stats.Answered++
	s.committed = true
	s.mu.Unlock()

	// A refresh during the submit may have replaced the front question;
	// only the answered one is removed.
	if !s.queue.PopIf(q) {
		s.log.DebugContext(ctx, "answered question already discarded by refresh",
			slog.String("question", q.Key.String()),
		)
	}

	s.startPrefetch(context.WithoutCancel(ctx))

	return result, nil
}

func (s *Session) startPrefetch(ctx context.Context) {
	s.prefetch.Add(1)
	go func() {
		defer s.prefetch.Done()
		if err := s.queue.RefillIfLow(ctx); err != nil {
			s.log.WarnContext(ctx, "background prefetch failed", slog.String("error", err.Error()))
		}
	}()
}
