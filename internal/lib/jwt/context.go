package jwt

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// UserIDFromContext returns the uid claim of the auth token verified by
// jwtauth.Verify earlier in the chain.
func UserIDFromContext(ctx context.Context) (int64, error) {
	const op = "lib.jwt.UserIDFromContext"

	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}
	if token == nil {
		return 0, fmt.Errorf("%s: %w: no token", op, ErrInvalidToken)
	}

	if p, _ := claims[ClaimPurpose].(string); Purpose(p) != PurposeAuth {
		return 0, fmt.Errorf("%s: %w: purpose %q", op, ErrInvalidToken, p)
	}

	switch uid := claims[ClaimUserID].(type) {
	case float64:
		if uid <= 0 || uid != float64(int64(uid)) {
			return 0, fmt.Errorf("%s: %w: bad uid", op, ErrInvalidToken)
		}
		return int64(uid), nil
	case int64:
		if uid <= 0 {
			return 0, fmt.Errorf("%s: %w: bad uid", op, ErrInvalidToken)
		}
		return uid, nil
	default:
		return 0, fmt.Errorf("%s: %w: uid claim is %T", op, ErrInvalidToken, uid)
	}
}
