package config

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxBatchSize is the largest study queue page the backend serves.
const MaxBatchSize = 200

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Queue.validate(); err != nil {
		return fmt.Errorf("queue: %w", err)
	}
	if err := c.Learner.validate(); err != nil {
		return fmt.Errorf("learner: %w", err)
	}
	return nil
}

func (a *APIConfig) validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", a.BaseURL)
	}
	if strings.TrimSpace(a.AccessToken) == "" {
		return fmt.Errorf("access_token is required")
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	return nil
}

func (q *QueueConfig) validate() error {
	if q.BatchSize < 1 || q.BatchSize > MaxBatchSize {
		return fmt.Errorf("batch_size must be between 1 and %d (got %d)", MaxBatchSize, q.BatchSize)
	}
	if q.LowWaterMark < 0 || q.LowWaterMark >= q.BatchSize {
		return fmt.Errorf("low_water_mark must be >= 0 and < batch_size (got %d)", q.LowWaterMark)
	}
	if q.SubscriberBuffer < 1 {
		return fmt.Errorf("subscriber_buffer must be > 0 (got %d)", q.SubscriberBuffer)
	}
	return nil
}

func (l *LearnerConfig) validate() error {
	learning := strings.ToLower(strings.TrimSpace(l.LearningLang))
	native := strings.ToLower(strings.TrimSpace(l.NativeLang))
	if learning == "" || native == "" {
		return fmt.Errorf("learning_lang and native_lang are required")
	}
	if learning == native {
		return fmt.Errorf("learning_lang and native_lang must differ (both %q)", learning)
	}
	return nil
}
