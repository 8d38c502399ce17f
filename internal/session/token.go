package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the backend's JWT without verifying it and
// returns the expiry claim. Verification belongs to the backend; this
// exists only so `auth status` can warn about a dead token before
// making a network call. Returns false for opaque or claimless tokens.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpired reports whether the token carries an expiry claim that
// has already passed. Opaque tokens are never reported expired here;
// the backend gets the final word via 401.
func TokenExpired(token string, now time.Time) bool {
	exp, ok := TokenExpiry(token)
	return ok && exp.Before(now)
}
