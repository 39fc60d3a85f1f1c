package api

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-client/internal/domain"
)

// FetchBatch loads the next page of the learner's study queue starting at
// cursor. HasMore is set when the page came back full.
func (c *Client) FetchBatch(ctx context.Context, cursor domain.Cursor, batchSize int, filter domain.FilterParams) (domain.Batch, error) {
	if batchSize < 1 {
		return domain.Batch{}, domain.NewValidationError("batch_size", "must be positive")
	}
	if cursor.Offset < 0 {
		return domain.Batch{}, domain.NewValidationError("offset", "must be non-negative")
	}

	var data studyQueueData
	err := c.execute(ctx, c.ops.studyQueue, map[string]any{
		"limit":            batchSize,
		"offset":           cursor.Offset,
		"learningLanguage": filter.LearningLang,
		"nativeLanguage":   filter.NativeLang,
	}, &data)
	if err != nil {
		return domain.Batch{}, err
	}

	questions := make([]*domain.Question, 0, len(data.StudyQueue))
	for _, e := range data.StudyQueue {
		q, err := toQuestion(e, filter)
		if err != nil {
			return domain.Batch{}, domain.NewRemoteError(c.ops.studyQueue.name, domain.ErrorKindDecode, 0, err)
		}
		questions = append(questions, q)
	}

	c.log.DebugContext(ctx, "study queue page",
		slog.String("learner_id", filter.LearnerID.String()),
		slog.Int("offset", cursor.Offset),
		slog.Int("requested", batchSize),
		slog.Int("received", len(questions)),
	)

	return domain.Batch{
		Questions: questions,
		HasMore:   len(questions) > 0 && len(questions) >= batchSize,
	}, nil
}

// toQuestion converts a study queue entry into a review question.
// Entries without a valid card cannot be answered and are rejected.
func toQuestion(e apiEntry, filter domain.FilterParams) (*domain.Question, error) {
	if strings.TrimSpace(e.Text) == "" {
		return nil, fmt.Errorf("entry %q: empty text", e.ID)
	}
	if e.Card == nil {
		return nil, fmt.Errorf("entry %q: missing card", e.ID)
	}
	cardID, err := uuid.Parse(e.Card.ID)
	if err != nil {
		return nil, fmt.Errorf("entry %q: card id: %w", e.ID, err)
	}
	state := domain.CardState(e.Card.State)
	if !state.IsValid() {
		return nil, fmt.Errorf("entry %q: unknown card state %q", e.ID, e.Card.State)
	}

	payload := domain.QuestionPayload{State: state}
	for _, s := range e.Senses {
		if s.Definition != nil && *s.Definition != "" {
			payload.Definitions = append(payload.Definitions, *s.Definition)
		}
		for _, ex := range s.Examples {
			if ex.Sentence != "" {
				payload.Examples = append(payload.Examples, ex.Sentence)
			}
		}
	}
	for _, p := range e.Pronunciations {
		if p.Transcription != nil && *p.Transcription != "" {
			t := *p.Transcription
			payload.Transcription = &t
			break
		}
	}

	return &domain.Question{
		Key:     domain.NewQuestionKey(e.Text, filter.LearningLang, filter.NativeLang),
		CardID:  cardID,
		Prompt:  strings.TrimSpace(e.Text),
		Payload: payload,
	}, nil
}
