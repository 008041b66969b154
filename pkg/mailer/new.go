package mailer

import (
	"context"

	pkgLog "autoexport-srv/pkg/log"
)

// New creates an SMTP mailer. When no host is configured it returns a
// no-op mailer so environments without SMTP still boot.
func New(l pkgLog.Logger, cfg Config) Mailer {
	if cfg.Host == "" {
		l.Warn(context.Background(), "pkg.mailer.New: SMTP not configured, email delivery disabled")
		return &noopMailer{l: l}
	}

	return &implMailer{
		l:   l,
		cfg: cfg,
	}
}

type noopMailer struct {
	l pkgLog.Logger
}

func (m *noopMailer) Send(ctx context.Context, msg Message) error {
	m.l.Debugf(ctx, "pkg.mailer.Send: skipping email %q, SMTP not configured", msg.Subject)
	return nil
}
