package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user":{"email":"a@x.com"}}`))

	var payload Email
	assert.Nil(t, Bind(r, &payload))
	require.NotNil(t, payload.User.Email)
	assert.Equal(t, "a@x.com", *payload.User.Email)
}

func TestBind_EmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)

	var payload Email
	errs := Bind(r, &payload)
	assert.Equal(t, []string{"This field is required."}, errs["email"])
}

func TestBind_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user":`))

	var payload Email
	errs := Bind(r, &payload)
	assert.Equal(t, []string{msgMalformed}, errs["error"])
}
