package mailer

import (
	"context"
	"strings"

	"github.com/friendsofgo/errors"
	"github.com/wneessen/go-mail"

	pkgLog "autoexport-srv/pkg/log"
)

type implMailer struct {
	l   pkgLog.Logger
	cfg Config
}

var _ Mailer = &implMailer{}

// Send delivers an HTML+plaintext multipart email.
// Uses DialAndSend per message, no persistent SMTP connection.
func (m *implMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}

	// Strip CR/LF from subject to prevent header injection.
	subject := strings.NewReplacer("\r", "", "\n", "").Replace(msg.Subject)

	mm := mail.NewMsg()
	if err := mm.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		m.l.Errorf(ctx, "pkg.mailer.Send.FromFormat: %v", err)
		return errors.Wrap(err, "set from")
	}
	if err := mm.To(msg.To...); err != nil {
		m.l.Errorf(ctx, "pkg.mailer.Send.To: %v", err)
		return errors.Wrap(err, "set recipients")
	}
	mm.Subject(subject)
	if msg.TextBody != "" {
		mm.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	}
	if msg.HTMLBody != "" {
		if msg.TextBody == "" {
			mm.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
		} else {
			mm.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
		}
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	if m.cfg.TLS {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	}

	c, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		m.l.Errorf(ctx, "pkg.mailer.Send.NewClient: %v", err)
		return errors.Wrap(err, "create smtp client")
	}
	if err := c.DialAndSendWithContext(ctx, mm); err != nil {
		m.l.Errorf(ctx, "pkg.mailer.Send.DialAndSend: %v", err)
		return errors.Wrap(err, "send email")
	}
	return nil
}
