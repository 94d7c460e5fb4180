package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authors-api/internal/config"
	"authors-api/internal/lib/logger/handlers/slogdiscard"
	"authors-api/internal/mailer"
	"authors-api/internal/mailer/smtp"
)

func TestNewTransport(t *testing.T) {
	log := slogdiscard.NewDiscardLogger()

	tr, closeFn, err := newTransport(log, config.Mailer{Transport: "log"})
	require.NoError(t, err)
	assert.IsType(t, &mailer.LogTransport{}, tr)
	closeFn()

	tr, closeFn, err = newTransport(log, config.Mailer{
		Transport: "smtp",
		SMTP:      config.SMTP{Host: "localhost", Port: 1025},
	})
	require.NoError(t, err)
	assert.IsType(t, &smtp.Transport{}, tr)
	closeFn()
}

func TestNewTransport_Errors(t *testing.T) {
	log := slogdiscard.NewDiscardLogger()

	_, _, err := newTransport(log, config.Mailer{Transport: "pigeon"})
	assert.Error(t, err)

	_, _, err = newTransport(log, config.Mailer{Transport: "smtp"})
	assert.Error(t, err)
}
