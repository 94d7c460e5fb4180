// Package mailer renders account emails and hands them to a Transport.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	texttemplate "text/template"

	"authors-api/internal/domain/models"
)

type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

type Transport interface {
	Send(ctx context.Context, msg Message) error
}

type Mailer struct {
	from      string
	transport Transport
}

func New(from string, transport Transport) *Mailer {
	return &Mailer{
		from:      from,
		transport: transport,
	}
}

type templateData struct {
	Username string
	Link     string
}

var (
	verifyText = texttemplate.Must(texttemplate.New("verify").Parse(
		"Hi {{.Username}},\n\nPlease confirm your email address by opening the link below:\n\n{{.Link}}\n\nThe link is valid for a limited time.\n"))
	verifyHTML = htmltemplate.Must(htmltemplate.New("verify").Parse(
		`<p>Hi {{.Username}},</p><p>Please confirm your email address:</p><p><a href="{{.Link}}">Verify my account</a></p>`))

	resetText = texttemplate.Must(texttemplate.New("reset").Parse(
		"Hi {{.Username}},\n\nSomeone asked to reset the password of your account. If it was you, open the link below:\n\n{{.Link}}\n\nOtherwise ignore this email.\n"))
	resetHTML = htmltemplate.Must(htmltemplate.New("reset").Parse(
		`<p>Hi {{.Username}},</p><p>Someone asked to reset the password of your account. If it was you:</p><p><a href="{{.Link}}">Reset my password</a></p><p>Otherwise ignore this email.</p>`))
)

func (m *Mailer) SendVerification(ctx context.Context, to models.User, link string) error {
	const op = "mailer.SendVerification"

	msg, err := m.render(to, "Verify your email address", link, verifyText, verifyHTML)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := m.transport.Send(ctx, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to models.User, link string) error {
	const op = "mailer.SendPasswordReset"

	msg, err := m.render(to, "Reset your password", link, resetText, resetHTML)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := m.transport.Send(ctx, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *Mailer) render(to models.User, subject, link string, text *texttemplate.Template, html *htmltemplate.Template) (Message, error) {
	data := templateData{Username: to.Username, Link: link}

	var textBuf, htmlBuf bytes.Buffer
	if err := text.Execute(&textBuf, data); err != nil {
		return Message{}, err
	}
	if err := html.Execute(&htmlBuf, data); err != nil {
		return Message{}, err
	}

	return Message{
		From:    m.from,
		To:      to.Email,
		Subject: subject,
		Text:    textBuf.String(),
		HTML:    htmlBuf.String(),
	}, nil
}

// LogTransport writes messages to the logger instead of delivering them.
type LogTransport struct {
	log *slog.Logger
}

func NewLogTransport(log *slog.Logger) *LogTransport {
	return &LogTransport{log: log}
}

func (t *LogTransport) Send(_ context.Context, msg Message) error {
	t.log.Info("email",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
	)

	return nil
}
