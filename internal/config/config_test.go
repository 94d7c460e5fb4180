package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: dev
storage_path: ./authors.db
secret: s3cret
tokens:
  verify_ttl: 2h
http_server:
  address: 0.0.0.0:9000
mailer:
  transport: smtp
  smtp:
    host: mail.local
    port: 2525
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "./authors.db", cfg.StoragePath)
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Tokens.VerifyTTL)
	assert.Equal(t, 24*time.Hour, cfg.Tokens.AuthTTL)
	assert.Equal(t, time.Hour, cfg.Tokens.ResetTTL)
	assert.Equal(t, "0.0.0.0:9000", cfg.HTTPServer.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, "smtp", cfg.Mailer.Transport)
	assert.Equal(t, "mail.local", cfg.Mailer.SMTP.Host)
	assert.Equal(t, 2525, cfg.Mailer.SMTP.Port)
	assert.Equal(t, "mail.outbox", cfg.Mailer.AMQP.Queue)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MissingSecret(t *testing.T) {
	path := writeConfig(t, "storage_path: ./authors.db\n")

	_, err := Load(path)
	require.Error(t, err)
}
