package mailer

import (
	"context"
	"fmt"

	"fogexplore/pkg/config"

	"github.com/wneessen/go-mail"
)

// Mailer sends the transactional mails the game produces. Delivery is
// always best-effort: callers log failures and move on.
type Mailer struct {
	settings config.SMTPSettings
}

// New creates a mailer from the environment SMTP settings. Returns nil
// when no SMTP host is configured, which disables delivery entirely.
func New() *Mailer {
	settings := config.GetSMTPSettings()
	if settings.Host == "" {
		return nil
	}
	return &Mailer{settings: settings}
}

// SendWelcome delivers the post-registration greeting
func (m *Mailer) SendWelcome(ctx context.Context, to, username string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.settings.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject("Welcome to Fog of War")
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(
		`<h2>Welcome, %s!</h2>
<p>Thanks for joining <b>Fog of War</b>. Your adventure begins now!</p>
<p>Login to start exploring the world.</p>`, username))

	client, err := mail.NewClient(m.settings.Host,
		mail.WithPort(m.settings.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.settings.User),
		mail.WithPassword(m.settings.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}
