package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Purpose scopes a token to the single flow it was issued for.
type Purpose string

const (
	PurposeAuth   Purpose = "auth"
	PurposeVerify Purpose = "verify"
	PurposeReset  Purpose = "reset"
)

const (
	ClaimUserID  = "uid"
	ClaimPurpose = "purpose"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID  int64   `json:"uid"`
	Purpose Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

// Manager issues and validates stateless HS256 tokens. A token is valid
// while iat + ttl(purpose) has not passed; rotating the secret revokes all.
type Manager struct {
	secret []byte
	ttl    map[Purpose]time.Duration
	now    func() time.Time
}

func New(secret string, ttl map[Purpose]time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source. Tests only.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) Issue(userID int64, purpose Purpose) (string, error) {
	const op = "lib.jwt.Issue"

	ttl, ok := m.ttl[purpose]
	if !ok {
		return "", fmt.Errorf("%s: no ttl configured for purpose %q", op, purpose)
	}

	issued := m.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
		},
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return tokenString, nil
}

func (m *Manager) Validate(tokenString string, purpose Purpose) (int64, error) {
	const op = "lib.jwt.Validate"

	var claims Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}

	if claims.Purpose != purpose {
		return 0, fmt.Errorf("%s: %w: purpose %q, want %q", op, ErrInvalidToken, claims.Purpose, purpose)
	}

	if claims.ExpiresAt == nil || claims.IssuedAt == nil || claims.UserID == 0 {
		return 0, fmt.Errorf("%s: %w: missing claims", op, ErrInvalidToken)
	}

	return claims.UserID, nil
}
