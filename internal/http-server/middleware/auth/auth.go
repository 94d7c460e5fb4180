// Package auth authenticates requests carrying an auth token in the
// Authorization header, either as "Bearer <jwt>" or "Token <jwt>".
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"authors-api/internal/lib/api/response"
	"authors-api/internal/lib/jwt"
	"authors-api/internal/lib/logger/sl"
)

const (
	msgNoCredentials = "Authentication credentials were not provided."
	msgInvalidToken  = "Given token not valid for any token type."
)

var schemes = []string{"Bearer ", "Token "}

type ctxKey struct{}

type Auth struct {
	log *slog.Logger
	ja  *jwtauth.JWTAuth
}

func New(log *slog.Logger, secret string) *Auth {
	return &Auth{
		log: log,
		ja:  jwtauth.New("HS256", []byte(secret), nil),
	}
}

// Required rejects requests without a valid auth token with 401.
func (a *Auth) Required(next http.Handler) http.Handler {
	return jwtauth.Verify(a.ja, TokenFromHeader)(a.authenticate(next, true))
}

// Optional lets anonymous requests through; a token, when present, must be valid.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return jwtauth.Verify(a.ja, TokenFromHeader)(a.authenticate(next, false))
}

func (a *Auth) authenticate(next http.Handler, required bool) http.Handler {
	const op = "middleware.auth.authenticate"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := a.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if TokenFromHeader(r) == "" {
			if required {
				response.Error(w, r, http.StatusUnauthorized, response.Err(msgNoCredentials))
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		uid, err := jwt.UserIDFromContext(r.Context())
		if err != nil {
			log.Info("rejected token", sl.Error(err))
			response.Error(w, r, http.StatusUnauthorized, response.Err(msgInvalidToken))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
	})
}

// TokenFromHeader extracts the raw token from the Authorization header.
func TokenFromHeader(r *http.Request) string {
	h := r.Header.Get("Authorization")
	for _, scheme := range schemes {
		if len(h) > len(scheme) && strings.EqualFold(h[:len(scheme)], scheme) {
			return strings.TrimSpace(h[len(scheme):])
		}
	}
	return ""
}

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserID returns the authenticated user, or 0 for anonymous requests.
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(ctxKey{}).(int64)
	return id
}
