package discord

import (
	"errors"
	"net/http"
	"time"

	"autoexport-srv/pkg/log"
)

const (
	defaultRetryCount = 2
	defaultRetryDelay = 2 * time.Second
	defaultTimeout    = 10 * time.Second
)

// New creates a Discord webhook client. An empty webhook ID/token yields a
// client whose ReportBug is a no-op, so callers never need to nil-check.
func New(l log.Logger, webhook *DiscordWebhook) (*Discord, error) {
	if webhook == nil {
		return nil, errors.New("webhook is required")
	}

	return &Discord{
		l:       l,
		webhook: webhook,
		config: Config{
			RetryCount: defaultRetryCount,
			RetryDelay: defaultRetryDelay,
			Timeout:    defaultTimeout,
		},
		client: &http.Client{Timeout: defaultTimeout},
	}, nil
}
