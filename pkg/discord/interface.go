package discord

import "context"

// IDiscord reports service errors to a Discord channel through a webhook.
//
//go:generate mockery --name IDiscord
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
}
