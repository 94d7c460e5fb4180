package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(at *time.Time) *Manager {
	return New("test-secret", map[Purpose]time.Duration{
		PurposeAuth:   time.Hour,
		PurposeVerify: 24 * time.Hour,
		PurposeReset:  time.Hour,
	}).WithClock(func() time.Time { return *at })
}

func TestIssueValidate(t *testing.T) {
	now := time.Now()
	m := newManager(&now)

	token, err := m.Issue(42, PurposeVerify)
	require.NoError(t, err)

	uid, err := m.Validate(token, PurposeVerify)
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
}

func TestValidate_PurposeMismatch(t *testing.T) {
	now := time.Now()
	m := newManager(&now)

	token, err := m.Issue(42, PurposeReset)
	require.NoError(t, err)

	_, err = m.Validate(token, PurposeVerify)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	now := time.Now()
	m := newManager(&now)

	token, err := m.Issue(42, PurposeVerify)
	require.NoError(t, err)

	now = now.Add(23 * time.Hour)
	_, err = m.Validate(token, PurposeVerify)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = m.Validate(token, PurposeVerify)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Tampered(t *testing.T) {
	now := time.Now()
	m := newManager(&now)

	token, err := m.Issue(42, PurposeAuth)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:  1,
		Purpose: PurposeAuth,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	forgedString, err := forged.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	forgedParts := strings.Split(forgedString, ".")

	// Swap in another payload while keeping the original signature.
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]
	_, err = m.Validate(tampered, PurposeAuth)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Validate("garbage", PurposeAuth)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_OtherSecret(t *testing.T) {
	now := time.Now()
	m := newManager(&now)

	token, err := m.Issue(42, PurposeAuth)
	require.NoError(t, err)

	rotated := New("rotated", map[Purpose]time.Duration{PurposeAuth: time.Hour})
	_, err = rotated.Validate(token, PurposeAuth)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsNone(t *testing.T) {
	now := time.Now()
	m := newManager(&now)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:  42,
		Purpose: PurposeAuth,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Validate(s, PurposeAuth)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_UnknownPurpose(t *testing.T) {
	m := New("s", map[Purpose]time.Duration{})

	_, err := m.Issue(1, PurposeAuth)
	require.Error(t, err)
}
