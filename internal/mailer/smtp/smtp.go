package smtp

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"authors-api/internal/mailer"
)

type sendFunc func(ctx context.Context, msgs ...*mail.Msg) error

// Transport delivers messages through an SMTP relay.
type Transport struct {
	send sendFunc
}

// New configures a client for the relay at host:port. Authentication is
// used only when username is set; STARTTLS is used when the relay offers it.
func New(host string, port int, username, password string) (*Transport, error) {
	const op = "mailer.smtp.New"

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Transport{send: client.DialAndSendWithContext}, nil
}

func (t *Transport) Send(ctx context.Context, msg mailer.Message) error {
	const op = "mailer.smtp.Send"

	m, err := build(msg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := t.send(ctx, m); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// build renders msg as multipart/alternative with the plain text part first.
func build(msg mailer.Message) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	m.Subject(msg.Subject)
	m.SetDate()
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	return m, nil
}
