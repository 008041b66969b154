package mailer

import "context"

//go:generate mockery --name Mailer
type Mailer interface {
	// Send delivers a multipart email message.
	Send(ctx context.Context, msg Message) error
}
