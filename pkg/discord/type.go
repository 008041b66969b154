package discord

import (
	"net/http"
	"time"

	"autoexport-srv/pkg/log"
)

// DiscordWebhook identifies the target webhook.
type DiscordWebhook struct {
	ID    string
	Token string
}

// Config controls delivery behaviour.
type Config struct {
	RetryCount int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// Discord implements IDiscord.
type Discord struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
}

// WebhookPayload is the JSON body Discord expects.
type WebhookPayload struct {
	Content string `json:"content"`
}
