package review

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myenglish-client/internal/domain"
)

// Current returns the question to show. When nothing is buffered it waits for
// any background prefetch, then refills and blocks for that fetch. A nil
// question with a nil error means the queue is exhausted.
func (s *Session) Current(ctx context.Context) (*domain.Question, error) {
	s.mu.Lock()
	s.committed = false
	s.mu.Unlock()

	if q := s.queue.CurrentQuestion(); q != nil {
		return q, nil
	}

	// A prefetch started by the last answer may be about to fill the buffer.
	s.prefetch.Wait()
	if q := s.queue.CurrentQuestion(); q != nil {
		return q, nil
	}

	if err := s.queue.RefillIfNeeded(ctx); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return s.queue.CurrentQuestion(), nil
}

// Refresh discards everything buffered and loads the queue from the start.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.committed = false
	s.mu.Unlock()

	if err := s.queue.ForceRefresh(ctx); err != nil {
		return fmt.Errorf("refresh questions: %w", err)
	}
	return nil
}
