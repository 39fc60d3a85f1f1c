package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/myenglish-client/internal/adapter/api"
	"github.com/heartmarshall/myenglish-client/internal/auth"
	"github.com/heartmarshall/myenglish-client/internal/config"
	"github.com/heartmarshall/myenglish-client/internal/domain"
	"github.com/heartmarshall/myenglish-client/internal/queue"
	"github.com/heartmarshall/myenglish-client/internal/service/review"
)

// tokenExpiryWarning is how close to expiry a token must be to warn at startup.
const tokenExpiryWarning = 15 * time.Minute

// App holds the wired client. Create it once per process.
type App struct {
	Config  *config.Config
	Log     *slog.Logger
	Token   *auth.Token
	Queue   *queue.Queue
	Session *review.Session
}

// New wires the client from cfg. Log output goes to logOut (stderr when nil).
func New(cfg *config.Config, logOut io.Writer) (*App, error) {
	logger := NewLogger(cfg.Log, logOut)

	token, err := auth.ParseToken(cfg.API.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}
	now := time.Now()
	if token.Expired(now) {
		logger.Warn("access token has expired, requests will be rejected",
			slog.Time("expired_at", token.ExpiresAt),
		)
	} else if left := token.TimeLeft(now); left > 0 && left < tokenExpiryWarning {
		logger.Warn("access token expires soon",
			slog.Time("expires_at", token.ExpiresAt),
			slog.Duration("time_left", left.Round(time.Second)),
		)
	}

	client, err := api.NewClient(cfg.API, logger)
	if err != nil {
		return nil, err
	}

	q := queue.New(logger, client, queue.Options{
		BatchSize:        cfg.Queue.BatchSize,
		LowWaterMark:     cfg.Queue.LowWaterMark,
		SubscriberBuffer: cfg.Queue.SubscriberBuffer,
		Filter: domain.FilterParams{
			LearnerID:    token.LearnerID,
			LearningLang: cfg.Learner.LearningLang,
			NativeLang:   cfg.Learner.NativeLang,
		},
	})

	logger.Debug("client ready",
		slog.String("version", BuildVersion()),
		slog.String("endpoint", cfg.API.BaseURL),
		slog.String("learner_id", token.LearnerID.String()),
		slog.Int("batch_size", cfg.Queue.BatchSize),
	)

	return &App{
		Config:  cfg,
		Log:     logger,
		Token:   token,
		Queue:   q,
		Session: review.NewSession(logger, q, client),
	}, nil
}

// Close waits for background prefetches and ends queue subscriptions.
func (a *App) Close() {
	a.Session.Wait()
	a.Queue.Close()
}
