package auth

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authors-api/internal/lib/jwt"
	"authors-api/internal/lib/logger/handlers/slogdiscard"
)

const secret = "test-secret"

func tokens() *jwt.Manager {
	return jwt.New(secret, map[jwt.Purpose]time.Duration{
		jwt.PurposeAuth:   time.Hour,
		jwt.PurposeVerify: time.Hour,
	})
}

func echoUserID(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(strconv.FormatInt(UserID(r.Context()), 10)))
}

func TestTokenFromHeader(t *testing.T) {
	cases := map[string]string{
		"Bearer abc": "abc",
		"Token abc":  "abc",
		"token abc":  "abc",
		"Basic abc":  "",
		"Bearer":     "",
		"":           "",
	}

	for header, want := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		assert.Equal(t, want, TokenFromHeader(r), header)
	}
}

func TestRequired(t *testing.T) {
	a := New(slogdiscard.NewDiscardLogger(), secret)
	h := a.Required(http.HandlerFunc(echoUserID))

	authToken, err := tokens().Issue(7, jwt.PurposeAuth)
	require.NoError(t, err)
	verifyToken, err := tokens().Issue(7, jwt.PurposeVerify)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "bearer", header: "Bearer " + authToken, status: http.StatusOK, body: "7"},
		{name: "token scheme", header: "Token " + authToken, status: http.StatusOK, body: "7"},
		{name: "missing", status: http.StatusUnauthorized, body: msgNoCredentials},
		{name: "garbage", header: "Bearer nope", status: http.StatusUnauthorized, body: msgInvalidToken},
		{name: "wrong purpose", header: "Bearer " + verifyToken, status: http.StatusUnauthorized, body: msgInvalidToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, r)

			require.Equal(t, tc.status, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.body)
		})
	}
}

func TestOptional(t *testing.T) {
	a := New(slogdiscard.NewDiscardLogger(), secret)
	h := a.Optional(http.HandlerFunc(echoUserID))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "0", rr.Body.String())

	token, err := tokens().Issue(3, jwt.PurposeAuth)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Token "+token)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "3", rr.Body.String())

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer broken")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
