// Package api talks to the review backend's GraphQL endpoint. It implements
// the question source consumed by the prefetch queue and the review
// submission collaborator.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/myenglish-client/internal/config"
	"github.com/heartmarshall/myenglish-client/internal/domain"
	"github.com/heartmarshall/myenglish-client/pkg/ctxutil"
)

const (
	maxErrorBody     = 512
	codeUnauthorized = "UNAUTHENTICATED"
	codeNotFound     = "NOT_FOUND"
)

// Client is a GraphQL client for the review backend.
// It never retries; failures are classified and returned.
type Client struct {
	endpoint   string
	httpClient *http.Client
	ops        operations
	log        *slog.Logger
}

// NewClient creates a Client from the API configuration.
func NewClient(cfg config.APIConfig, logger *slog.Logger) (*Client, error) {
	ops, err := loadOperations()
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	log := logger.With("adapter", "graphql_api")

	return &Client{
		endpoint: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: chain(http.DefaultTransport,
				withRequestID(),
				withAuth(cfg.AccessToken, cfg.UserAgent),
				withLogging(log),
			),
		},
		ops: ops,
		log: log,
	}, nil
}

// execute sends op and decodes its data payload into out.
// Errors are *domain.RemoteError classified as transport, server or decode.
func (c *Client) execute(ctx context.Context, op operation, vars map[string]any, out any) error {
	ctx, requestID := ctxutil.EnsureRequestID(ctx)

	body, err := json.Marshal(gqlRequest{
		Query:         op.query,
		OperationName: op.name,
		Variables:     vars,
	})
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", op.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewRemoteError(op.name, domain.ErrorKindTransport, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		cause := fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(snippet)))
		if resp.StatusCode == http.StatusUnauthorized {
			cause = fmt.Errorf("%w: %s", domain.ErrUnauthorized, strings.TrimSpace(string(snippet)))
		}
		return domain.NewRemoteError(op.name, domain.ErrorKindServer, resp.StatusCode, cause)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewRemoteError(op.name, domain.ErrorKindTransport, resp.StatusCode, fmt.Errorf("read body: %w", err))
	}

	var envelope gqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return domain.NewRemoteError(op.name, domain.ErrorKindDecode, resp.StatusCode, fmt.Errorf("decode json: %w", err))
	}

	if len(envelope.Errors) > 0 {
		return domain.NewRemoteError(op.name, domain.ErrorKindServer, resp.StatusCode, graphQLErrors(envelope.Errors))
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return domain.NewRemoteError(op.name, domain.ErrorKindDecode, resp.StatusCode, errors.New("response has no data"))
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return domain.NewRemoteError(op.name, domain.ErrorKindDecode, resp.StatusCode, fmt.Errorf("decode data: %w", err))
	}

	c.log.DebugContext(ctx, "graphql operation done",
		slog.String("operation", op.name),
		slog.String("request_id", requestID),
	)

	return nil
}

// graphQLErrors folds the errors array into one error. Well-known codes are
// mapped onto domain sentinels.
func graphQLErrors(errs []gqlError) error {
	msgs := make([]string, len(errs))
	var sentinel error
	for i, e := range errs {
		msgs[i] = e.Message
		switch e.code() {
		case codeUnauthorized:
			sentinel = domain.ErrUnauthorized
		case codeNotFound:
			if sentinel == nil {
				sentinel = domain.ErrNotFound
			}
		}
	}
	joined := strings.Join(msgs, "; ")
	if sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, joined)
	}
	return errors.New(joined)
}
