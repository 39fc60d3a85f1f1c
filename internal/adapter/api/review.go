package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-client/internal/domain"
)

// SubmitReview records the learner's answer on the backend.
func (c *Client) SubmitReview(ctx context.Context, outcome domain.ReviewOutcome) (*domain.ReviewResult, error) {
	if err := outcome.Validate(); err != nil {
		return nil, err
	}

	input := map[string]any{
		"cardId": outcome.CardID.String(),
		"grade":  outcome.Grade.String(),
	}
	if outcome.DurationMs != nil {
		input["durationMs"] = *outcome.DurationMs
	}

	var data reviewCardData
	if err := c.execute(ctx, c.ops.reviewCard, map[string]any{"input": input}, &data); err != nil {
		return nil, err
	}
	if data.ReviewCard == nil {
		return nil, domain.NewRemoteError(c.ops.reviewCard.name, domain.ErrorKindDecode, 0, errors.New("empty reviewCard payload"))
	}

	card := data.ReviewCard.Card
	cardID, err := uuid.Parse(card.ID)
	if err != nil {
		return nil, domain.NewRemoteError(c.ops.reviewCard.name, domain.ErrorKindDecode, 0, fmt.Errorf("card id: %w", err))
	}

	result := &domain.ReviewResult{
		CardID:     cardID,
		State:      domain.CardState(card.State),
		ScoreDelta: data.ReviewCard.ScoreDelta,
		Milestone:  data.ReviewCard.Milestone,
	}
	if card.Due != nil {
		result.Due = *card.Due
	}

	c.log.InfoContext(ctx, "review submitted",
		slog.String("card_id", cardID.String()),
		slog.String("grade", outcome.Grade.String()),
		slog.String("new_state", result.State.String()),
	)

	return result, nil
}
