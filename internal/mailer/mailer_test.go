package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authors-api/internal/domain/models"
	"authors-api/internal/lib/logger/handlers/slogdiscard"
)

type recorder struct {
	sent []Message
	err  error
}

func (r *recorder) Send(_ context.Context, msg Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func TestSendVerification(t *testing.T) {
	rec := &recorder{}
	m := New("no-reply@authors.local", rec)

	err := m.SendVerification(context.Background(),
		models.User{Username: "alice", Email: "alice@example.com"},
		"http://localhost/users/verify/tok?a=1&b=2")
	require.NoError(t, err)

	require.Len(t, rec.sent, 1)
	msg := rec.sent[0]
	assert.Equal(t, "no-reply@authors.local", msg.From)
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "Verify your email address", msg.Subject)
	assert.Contains(t, msg.Text, "http://localhost/users/verify/tok?a=1&b=2")
	assert.Contains(t, msg.HTML, `href="http://localhost/users/verify/tok?a=1&amp;b=2"`)
}

func TestSendPasswordReset_TransportError(t *testing.T) {
	boom := errors.New("boom")
	m := New("no-reply@authors.local", &recorder{err: boom})

	err := m.SendPasswordReset(context.Background(), models.User{Email: "a@x.com"}, "link")
	assert.ErrorIs(t, err, boom)
}

func TestLogTransport(t *testing.T) {
	tr := NewLogTransport(slogdiscard.NewDiscardLogger())

	assert.NoError(t, tr.Send(context.Background(), Message{To: "a@x.com"}))
}
